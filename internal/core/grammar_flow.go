// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow collections: sequences, mappings, and flow pairs (spec.md §4.5.4).

package core

// cFlowSequence parses c-flow-sequence(n,c): "[" entries "]".
func (e *Engine) cFlowSequence(n int, c Context) (*Node, bool) {
	if e.text[e.pos] != '[' {
		return nil, false
	}
	mark := e.mark()
	e.pos++
	node := e.createSequence(mark)
	inner := inFlowContext(c)
	e.optional(func() bool { return e.sSeparate(n, c) })
	e.flowSeqEntries(n, inner, node)
	e.optional(func() bool { return e.sSeparate(n, c) })
	if e.text[e.pos] != ']' {
		e.fail(e.mark(), "expected ']' to close flow sequence")
	}
	e.pos++
	return node, true
}

func (e *Engine) flowSeqEntries(n int, c Context, node *Node) {
	first := true
	for {
		if e.text[e.pos] == ']' {
			return
		}
		if !first {
			if e.text[e.pos] != ',' {
				return
			}
			e.pos++
			e.optional(func() bool { return e.sSeparate(n, c) })
			if e.text[e.pos] == ']' {
				return
			}
		}
		entry := e.flowSeqEntry(n, c)
		if entry == nil {
			if first {
				return
			}
			e.fail(e.mark(), "expected a flow sequence entry after ','")
		}
		node.Items = append(node.Items, entry)
		first = false
		e.optional(func() bool { return e.sSeparate(n, c) })
	}
}

// flowSeqEntry parses ns-flow-seq-entry(n,c): either an ordinary flow node,
// or an implicit single-pair mapping compacted into one sequence entry
// (e.g. "[a: b, c: d]").
func (e *Engine) flowSeqEntry(n int, c Context) *Node {
	if pair, ok := e.tryFlowPairAsEntry(n, c); ok {
		return pair
	}
	node, ok := e.flowNode(n, c)
	if !ok {
		return nil
	}
	return node
}

// tryFlowPairAsEntry speculatively parses one "key: value" pair and wraps
// it as a single-entry mapping node, matching ns-flow-pair's compacting
// behavior when it appears directly inside a flow sequence. Unlike a pair
// inside a flow mapping, a bare key with no ':' does not count as a pair
// here — it falls through to an ordinary sequence entry instead.
func (e *Engine) tryFlowPairAsEntry(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		mark := e.mark()
		key, value, matched := e.flowPairContent(n, c, true)
		if !matched {
			return false
		}
		m := e.createMapping(mark)
		m.Entries = append(m.Entries, MapEntry{Key: key, Value: value})
		result = m
		return true
	})
	return result, ok
}

// cFlowMapping parses c-flow-mapping(n,c): "{" entries "}".
func (e *Engine) cFlowMapping(n int, c Context) (*Node, bool) {
	if e.text[e.pos] != '{' {
		return nil, false
	}
	mark := e.mark()
	e.pos++
	node := e.createMapping(mark)
	inner := inFlowContext(c)
	e.optional(func() bool { return e.sSeparate(n, c) })
	e.flowMapEntries(n, inner, node)
	e.optional(func() bool { return e.sSeparate(n, c) })
	if e.text[e.pos] != '}' {
		e.fail(e.mark(), "expected '}' to close flow mapping")
	}
	e.pos++
	return node, true
}

func (e *Engine) flowMapEntries(n int, c Context, node *Node) {
	first := true
	for {
		if e.text[e.pos] == '}' {
			return
		}
		if !first {
			if e.text[e.pos] != ',' {
				return
			}
			e.pos++
			e.optional(func() bool { return e.sSeparate(n, c) })
			if e.text[e.pos] == '}' {
				return
			}
		}
		key, value, ok := e.flowPairContent(n, c, false)
		if !ok {
			if first {
				return
			}
			e.fail(e.mark(), "expected a flow mapping entry after ','")
		}
		node.Entries = append(node.Entries, MapEntry{Key: key, Value: value})
		first = false
		e.optional(func() bool { return e.sSeparate(n, c) })
	}
}

// flowPairContent parses ns-flow-map-entry(n,c): either an explicit "?
// key : value" pair, or an implicit "key: value" / "key" shorthand pair.
// requireColon is set by a flow sequence entry, where a bare key with no
// ':' is not a pair at all (spec.md §4.5.4).
func (e *Engine) flowPairContent(n int, c Context, requireColon bool) (key, value *Node, ok bool) {
	if e.text[e.pos] == '?' {
		e.pos++
		if !e.sSeparate(n, c) {
			e.fail(e.mark(), "expected separation after '?' in flow mapping")
		}
		return e.flowExplicitPair(n, c)
	}
	return e.flowImplicitPair(n, c, requireColon)
}

func (e *Engine) flowExplicitPair(n int, c Context) (key, value *Node, ok bool) {
	keyMark := e.mark()
	k, kok := e.flowNode(n, c.asMapKeyContext())
	if !kok {
		k = e.emptyNode(keyMark)
	}
	if e.withRewind(func() bool {
		return e.sSeparate(n, c) && e.acceptUnit(':')
	}) {
		e.optional(func() bool {
			return e.withRewind(func() bool { return e.sSeparate(n, c) })
		})
		v, vok := e.flowNode(n, c)
		if !vok {
			v = e.emptyNode(e.mark())
		}
		return k, v, true
	}
	return k, e.emptyNode(e.mark()), true
}

// flowImplicitPair parses ns-flow-map-implicit-entry: a plain/quoted/flow
// key optionally followed by ": value". A bare key with no ':' produces a
// mapping entry whose value is the empty scalar, unless requireColon says
// a missing ':' should fail the whole production instead.
func (e *Engine) flowImplicitPair(n int, c Context, requireColon bool) (key, value *Node, ok bool) {
	k, kok := e.flowNode(n, c.asMapKeyContext())
	if !kok {
		return nil, nil, false
	}
	if e.withRewind(func() bool {
		return e.acceptUnit(':') && (e.sSeparate(n, c) || e.lookaheadFlowStop())
	}) {
		v, vok := e.flowNode(n, c)
		if !vok {
			v = e.emptyNode(e.mark())
		}
		return k, v, true
	}
	if requireColon {
		return nil, nil, false
	}
	return k, e.emptyNode(e.mark()), true
}

// lookaheadFlowStop reports whether the cursor sits right at a flow
// terminator, which lets "key:" (no value, no separating space) count as
// a valid implicit pair at the end of a flow collection.
func (e *Engine) lookaheadFlowStop() bool {
	switch e.text[e.pos] {
	case ',', ']', '}':
		return true
	default:
		return e.atEnd()
	}
}

// flowNode parses ns-flow-node(n,c): an alias, a flow collection, or any
// flow scalar, each optionally preceded by tag/anchor properties.
func (e *Engine) flowNode(n int, c Context) (*Node, bool) {
	if node, ok := e.cNsAliasNode(); ok {
		return node, true
	}
	hasProps := e.withRewind(func() bool { return e.cNsProperties(n, c) })
	if hasProps {
		if !e.withRewind(func() bool { return e.sSeparate(n, c) }) {
			return e.emptyNode(e.mark()), true
		}
	}
	if node, ok := e.cFlowSequence(n, c); ok {
		return node, true
	}
	if node, ok := e.cFlowMapping(n, c); ok {
		return node, true
	}
	if node, ok := e.parseDoubleQuoted(n, c); ok {
		return node, true
	}
	if node, ok := e.parseSingleQuoted(n, c); ok {
		return node, true
	}
	if node, ok := e.parsePlain(n, c); ok {
		return node, true
	}
	if hasProps {
		return e.emptyNode(e.mark()), true
	}
	return nil, false
}
