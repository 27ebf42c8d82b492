// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Block collections: sequences, mappings, and their compact-nested forms
// (spec.md §4.5.4).

package core

// blockNode parses s-l+block-node(n,c): a block collection, a flow
// collection/scalar reachable via c-flow-node, or a node made entirely of
// tag/anchor properties with no content (spec.md §4.5).
func (e *Engine) blockNode(n int, c Context) (*Node, bool) {
	if node, ok := e.blockScalarWithProps(n, c); ok {
		return node, true
	}
	if node, ok := e.blockCollectionWithProps(n, c); ok {
		return node, true
	}
	return e.flowInBlock(n, c)
}

// flowInBlock parses s-l+flow-in-block(n): a flow node used in block
// context, either on the same line after in-line separation or on a later
// line indented past n. Per the
// grammar this always uses the flow-out context, regardless of the
// enclosing block context — flow-in's narrower, flow-indicator-excluding
// character set only applies inside an actual flow collection.
func (e *Engine) flowInBlock(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		e.sSeparateLines(n + 1)
		node, ok := e.flowNode(n+1, FlowOut)
		if !ok {
			return false
		}
		e.optional(func() bool { return e.sLComments() })
		result = node
		return true
	})
	return result, ok
}

// blockScalarWithProps handles the s-l+block-scalar(n,c) form: optional
// properties on their own indented line, then a literal or folded scalar.
func (e *Engine) blockScalarWithProps(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		if !e.sSeparateLines(n + 1) {
			return false
		}
		hasProps := e.withRewind(func() bool { return e.cNsProperties(n+1, c) })
		if hasProps {
			if !e.sSeparateLines(n + 1) {
				return false
			}
		}
		node, ok := e.parseBlockScalar(n, c)
		if !ok {
			return false
		}
		result = node
		return true
	})
	return result, ok
}

// blockCollectionWithProps handles s-l+block-collection(n,c): optional
// properties, then a block sequence or mapping whose entries are indented
// past n. There is no seq-spaces rule: a sequence under a mapping value is
// not accepted at the key's own column.
func (e *Engine) blockCollectionWithProps(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		e.optional(func() bool {
			return e.withRewind(func() bool {
				return e.sSeparateLines(n+1) && e.cNsProperties(n+1, c)
			})
		})
		e.optional(func() bool { return e.sLComments() })
		node, ok := e.blockCollection(n, c)
		if !ok {
			return false
		}
		result = node
		return true
	})
	return result, ok
}

func (e *Engine) blockCollection(n int, c Context) (*Node, bool) {
	if node, ok := e.blockSequence(n, c); ok {
		return node, true
	}
	if node, ok := e.blockMapping(n, c); ok {
		return node, true
	}
	return nil, false
}

// --- block sequence ---

// blockSequence parses l+block-sequence(n): a run of "- entry" lines
// indented one or more columns past n, each entry itself indented by the
// sequence's own column (m >= n+1, auto-detected from the first entry).
func (e *Engine) blockSequence(n int, c Context) (*Node, bool) {
	seqMark := e.mark()
	m := -1
	var node *Node
	ok := e.withRewind(func() bool {
		for {
			savedPos := e.pos
			if !e.withRewind(func() bool {
				if m < 0 {
					if !e.sIndentGreaterThan(n) {
						return false
					}
					m = e.column()
				} else if !e.sIndent(m) {
					return false
				}
				return e.text[e.pos] == '-' && !e.followedByPlainSafe(e.pos + 1)
			}) {
				e.pos = savedPos
				break
			}
			e.pos++ // '-'
			entry, ok := e.blockSeqEntry(m, c)
			if !ok {
				e.fail(e.mark(), "expected a block sequence entry after '-'")
			}
			if node == nil {
				node = e.createSequence(seqMark)
			}
			node.Items = append(node.Items, entry)
		}
		return node != nil
	})
	return node, ok
}

// followedByPlainSafe reports whether the character at pos would be a
// valid continuation of a plain scalar, which is how "-" is told apart
// from a block sequence indicator that happens to be followed by content
// on the same line (e.g. "-1" is the scalar -1, not an empty sequence
// entry followed by "1").
func (e *Engine) followedByPlainSafe(pos int) bool {
	if e.isBreakAt(pos) || isWhite(e.text, pos) || e.atEndAt(pos) {
		return false
	}
	ok, _ := isNSChar(e.text, pos)
	return ok
}

func (e *Engine) atEndAt(pos int) bool { return e.text[pos] == sentinel && pos == len(e.text)-1 }

// sIndentGreaterThan consumes one or more leading spaces and reports
// success if at least n+1 were consumed.
func (e *Engine) sIndentGreaterThan(n int) bool {
	count := 0
	for isSpace(e.text, e.pos) {
		e.pos++
		count++
	}
	return count > n
}

// blockSeqEntry parses s-l+block-indented(n,c): the content following
// "- ", which may compact directly into a nested sequence or mapping
// entry, or may simply be an ordinary indented block node.
func (e *Engine) blockSeqEntry(n int, c Context) (*Node, bool) {
	if node, ok := e.compactSequence(n, c); ok {
		return node, true
	}
	if node, ok := e.compactMapping(n, c); ok {
		return node, true
	}
	if node, ok := e.blockNode(n, c); ok {
		return node, true
	}
	// e-node: no content at all on this entry's line(s), but the line's
	// own trailing comment and break still need consuming so the next
	// entry's indentation check starts at a real line beginning.
	node := e.emptyNode(e.mark())
	e.sLComments()
	return node, true
}

// compactSequence handles "- - a": a nested sequence entry
// that starts right after the dash with no intervening line break,
// itself indented one level deeper (ns-l-compact-sequence). Its own
// indentation column — where the nested "-" itself sits — is auto-detected
// from the first entry, the same way l+block-sequence detects its own m;
// it is not n, the outer block's indentation.
func (e *Engine) compactSequence(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		if !e.sSeparateInLine() {
			return false
		}
		if e.text[e.pos] != '-' || e.followedByPlainSafe(e.pos+1) {
			return false
		}
		m := e.column()
		seqMark := e.mark()
		node := e.createSequence(seqMark)
		e.pos++
		entry, ok := e.blockSeqEntry(m, c)
		if !ok {
			return false
		}
		node.Items = append(node.Items, entry)
		for e.withRewind(func() bool {
			if !e.sIndent(m) {
				return false
			}
			if e.text[e.pos] != '-' || e.followedByPlainSafe(e.pos+1) {
				return false
			}
			e.pos++
			next, ok := e.blockSeqEntry(m, c)
			if !ok {
				return false
			}
			node.Items = append(node.Items, next)
			return true
		}) {
		}
		result = node
		return true
	})
	return result, ok
}

// --- block mapping ---

// blockMapping parses l+block-mapping(n): a run of "key: value" or
// "? key" entries indented to a common column m >= n+1, auto-detected
// from the first entry.
func (e *Engine) blockMapping(n int, c Context) (*Node, bool) {
	mapMark := e.mark()
	m := -1
	var node *Node
	ok := e.withRewind(func() bool {
		for {
			savedPos := e.pos
			if !e.withRewind(func() bool {
				if m < 0 {
					if !e.sIndentGreaterThan(n) {
						return false
					}
					m = e.column()
				} else if !e.sIndent(m) {
					return false
				}
				return e.startsMapEntry(m, c)
			}) {
				e.pos = savedPos
				break
			}
			key, value, ok := e.blockMapEntry(m, c)
			if !ok {
				e.fail(e.mark(), "malformed block mapping entry")
			}
			if node == nil {
				node = e.createMapping(mapMark)
			}
			node.Entries = append(node.Entries, MapEntry{Key: key, Value: value})
		}
		return node != nil
	})
	return node, ok
}

// startsMapEntry looks ahead, without consuming, to tell whether the
// cursor is positioned at the start of a block mapping entry: either an
// explicit "? " key, or anything that can be an implicit key followed
// eventually by ':'.
func (e *Engine) startsMapEntry(n int, c Context) bool {
	if e.text[e.pos] == '?' && !e.followedByPlainSafe(e.pos+1) {
		return true
	}
	return e.peek(func() bool { return e.probeImplicitKey(n, c) })
}

// probeImplicitKey speculatively parses an implicit key and confirms it is
// followed by ':', without keeping any of it (the real parse happens in
// blockMapEntry — this exists purely so startsMapEntry can decide whether
// a mapping entry starts here at all, letting blockSequence/blockMapping
// fail over to "this isn't a mapping" cleanly).
func (e *Engine) probeImplicitKey(n int, c Context) bool {
	if _, ok := e.implicitKeyNode(n, c); !ok {
		return false
	}
	e.skipWhite()
	return e.text[e.pos] == ':' && !e.followedByPlainSafe(e.pos+1)
}

// implicitKeyNode parses ns-s-implicit-key(c): a single-line flow scalar
// or flow collection acting as a mapping key, restricted to 1024 code
// units (spec.md §4.5.3, §8.2).
func (e *Engine) implicitKeyNode(n int, c Context) (*Node, bool) {
	start := e.pos
	node, ok := e.flowNode(n, c.asMapKeyContext())
	if !ok {
		return nil, false
	}
	if e.pos-start > 1024 {
		e.fail(e.markAt(start), "implicit mapping key is longer than 1024 characters")
	}
	return node, true
}

// blockMapEntry parses ns-l-block-map-entry(n,c): either the explicit "?
// key" / (optional) ": value" form, or the implicit "key: value" form,
// including its compact nested collection shorthand.
func (e *Engine) blockMapEntry(n int, c Context) (key, value *Node, ok bool) {
	if e.text[e.pos] == '?' && !e.followedByPlainSafe(e.pos+1) {
		return e.blockExplicitEntry(n, c)
	}
	return e.blockImplicitEntry(n, c)
}

func (e *Engine) blockExplicitEntry(n int, c Context) (key, value *Node, ok bool) {
	e.pos++ // '?'
	if !e.sSeparate(n, c) {
		e.fail(e.mark(), "expected separation after '?'")
	}
	k, kok := e.blockNode(n, c.asMapKeyContext())
	if !kok {
		k = e.emptyNode(e.mark())
	}
	v, vok := e.blockExplicitValue(n, c)
	if !vok {
		v = e.emptyNode(e.mark())
	}
	return k, v, true
}

func (e *Engine) blockExplicitValue(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		if !e.sIndent(n) {
			return false
		}
		if e.text[e.pos] != ':' {
			return false
		}
		e.pos++
		node, ok := e.blockMapValue(n, c)
		if !ok {
			return false
		}
		result = node
		return true
	})
	return result, ok
}

// blockImplicitEntry parses ns-l-block-map-implicit-entry(n,c): either an
// implicit key followed by ':', or a bare ':' standing for an empty key
// (the "null key" shorthand, e.g. ": value").
func (e *Engine) blockImplicitEntry(n int, c Context) (key, value *Node, ok bool) {
	var k *Node
	if e.text[e.pos] == ':' {
		k = e.emptyNode(e.mark())
	} else {
		var kok bool
		k, kok = e.implicitKeyNode(n, c)
		if !kok {
			return nil, nil, false
		}
		e.skipWhite()
	}
	if e.text[e.pos] != ':' || e.followedByPlainSafe(e.pos+1) {
		return nil, nil, false
	}
	e.pos++
	v, vok := e.blockMapValue(n, c)
	if !vok {
		v = e.emptyNode(e.mark())
	}
	return k, v, true
}

// blockMapValue parses the ": value" side of a mapping entry, which may
// compact directly into a nested sequence/mapping, or be an ordinary
// block node on the next line.
func (e *Engine) blockMapValue(n int, c Context) (*Node, bool) {
	if node, ok := e.compactSequence(n, c); ok {
		return node, true
	}
	if node, ok := e.compactMapping(n, c); ok {
		return node, true
	}
	if node, ok := e.blockNode(n, c); ok {
		return node, true
	}
	node := e.emptyNode(e.mark())
	e.sLComments()
	return node, true
}

// compactMapping handles "key: a: b": a nested mapping entry starting
// right after the ':' with no intervening line break, itself indented one
// level deeper than the outer key (ns-l-compact-mapping). Its own
// indentation column is auto-detected from where its first key starts,
// the same way l+block-mapping detects its own m; it is not n, the outer
// block's indentation.
func (e *Engine) compactMapping(n int, c Context) (*Node, bool) {
	var result *Node
	ok := e.withRewind(func() bool {
		if !e.sSeparateInLine() {
			return false
		}
		m := e.column()
		if !e.startsMapEntry(m, c) {
			return false
		}
		mapMark := e.mark()
		node := e.createMapping(mapMark)
		key, value, ok := e.blockMapEntry(m, c)
		if !ok {
			return false
		}
		node.Entries = append(node.Entries, MapEntry{Key: key, Value: value})
		for e.withRewind(func() bool {
			if !e.sIndent(m) {
				return false
			}
			if !e.startsMapEntry(m, c) {
				return false
			}
			k, v, ok := e.blockMapEntry(m, c)
			if !ok {
				return false
			}
			node.Entries = append(node.Entries, MapEntry{Key: k, Value: v})
			return true
		}) {
		}
		result = node
		return true
	})
	return result, ok
}
