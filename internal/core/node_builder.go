// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node construction hooks: the only place Node values are created, at the
// moment a grammar production commits to one (spec.md §3.4, §4.5.6).

package core

// resolveTag returns the tag a node should receive, given an explicit
// styleHint ("" for plain scalars, "tag:yaml.org,2002:str" for quoted or
// block scalars) and the value being resolved (used only when no tag was
// set and the style was plain).
func (e *Engine) resolveTag(styleHint string, value string, defaultTag string) string {
	if e.state.tag != nil {
		if *e.state.tag == "" {
			// Non-specific tag: forces the structural default, no
			// auto-detection (spec.md §3.1).
			return defaultTag
		}
		return *e.state.tag
	}
	if styleHint != "" {
		return styleHint
	}
	if e.resolver != nil {
		if tag, ok := e.resolver.Resolve(value); ok {
			return tag
		}
	}
	return defaultTag
}

// attachAnchor records the pending anchor (if any) on node and binds it
// in the anchor table.
func (e *Engine) attachAnchor(node *Node) {
	if e.state.anchor != nil {
		node.Anchor = *e.state.anchor
		e.anchors.add(*e.state.anchor, node)
	}
}

func (e *Engine) clearPendingProperties() {
	e.state.tag = nil
	e.state.anchor = nil
}

// createScalar runs the construction algorithm of spec.md §4.5.6: resolve
// the tag, attach the pending anchor, clear pending state.
func (e *Engine) createScalar(value, styleHint string, mark Mark) *Node {
	tag := e.resolveTag(styleHint, value, DefaultScalarTag)
	node := newScalar(tag, value, mark)
	e.attachAnchor(node)
	e.clearPendingProperties()
	e.state.value = node
	return node
}

func (e *Engine) createSequence(mark Mark) *Node {
	tag := e.resolveTag(DefaultSequenceTag, "", DefaultSequenceTag)
	node := newSequence(tag, mark)
	e.attachAnchor(node)
	e.clearPendingProperties()
	e.state.value = node
	return node
}

func (e *Engine) createMapping(mark Mark) *Node {
	tag := e.resolveTag(DefaultMappingTag, "", DefaultMappingTag)
	node := newMapping(tag, mark)
	e.attachAnchor(node)
	e.clearPendingProperties()
	e.state.value = node
	return node
}

// emptyNode builds the eNode used when node properties (tag/anchor) have
// no following content (spec.md §4.5.5).
func (e *Engine) emptyNode(mark Mark) *Node {
	return e.createScalar("", "", mark)
}

// resolveAlias looks up name in the anchor table; an unknown anchor is
// fatal (spec.md §4.3).
func (e *Engine) resolveAlias(name string, mark Mark) *Node {
	node, ok := e.anchors.lookup(name)
	if !ok {
		e.failCompose(mark, "unknown anchor '"+name+"'")
	}
	return node
}
