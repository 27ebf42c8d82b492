// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Anchor table: an append-only list of (name, node, depth) bindings plus a
// rewind primitive, per spec.md §3.3/§4.3. Rewinding a speculative
// production that defined an anchor must make that anchor vanish again —
// this is why lookups always need the most recent binding and rewinds are
// a depth-based truncation rather than a map delete.

package core

type anchorBinding struct {
	name  string
	node  *Node
	depth int
}

type anchorTable struct {
	bindings []anchorBinding
	depth    int
}

func newAnchorTable() *anchorTable {
	return &anchorTable{}
}

// add records name -> node at the current depth and advances the depth
// counter, so that a later rewind to a depth at or below this one drops
// the binding again.
func (t *anchorTable) add(name string, node *Node) {
	t.bindings = append(t.bindings, anchorBinding{name: name, node: node, depth: t.depth})
	t.depth++
}

// lookup returns the most recently added binding for name.
func (t *anchorTable) lookup(name string) (*Node, bool) {
	for i := len(t.bindings) - 1; i >= 0; i-- {
		if t.bindings[i].name == name {
			return t.bindings[i].node, true
		}
	}
	return nil, false
}

// mark returns the current depth, to be passed back to rewind later.
func (t *anchorTable) mark() int { return t.depth }

// rewind drops every binding whose depth is >= mark, and resets the depth
// counter to mark.
func (t *anchorTable) rewind(mark int) {
	if mark >= t.depth {
		return
	}
	keep := 0
	for _, b := range t.bindings {
		if b.depth < mark {
			t.bindings[keep] = b
			keep++
		}
	}
	t.bindings = t.bindings[:keep]
	t.depth = mark
}
