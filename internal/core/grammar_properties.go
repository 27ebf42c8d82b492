// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node properties: tags and anchors (spec.md §4.5.5), plus alias nodes.

package core

import "strconv"

// cNsProperties parses an optional tag and/or anchor, in either order,
// storing them as pending state consumed by the next node-creation hook.
// Returns true even if neither was present (both are optional).
func (e *Engine) cNsProperties(n int, c Context) bool {
	if e.withRewind(func() bool { return e.cNsTagProperty() }) {
		e.optional(func() bool { return e.sSeparate(n, c) && e.cNsAnchorProperty() })
		return true
	}
	if e.withRewind(func() bool { return e.cNsAnchorProperty() }) {
		e.optional(func() bool { return e.sSeparate(n, c) && e.cNsTagProperty() })
		return true
	}
	return false
}

func (e *Engine) cNsTagProperty() bool {
	if e.text[e.pos] != '!' {
		return false
	}
	mark := e.mark()
	if e.text[e.pos+1] == '<' {
		return e.verbatimTag(mark)
	}
	handle := e.tagHandle()
	suffix, _ := e.save(func() bool {
		for e.acceptTagSuffixUnit() {
		}
		return true
	})
	if handle == "!" && suffix == "" {
		empty := ""
		e.state.tag = &empty
		return true
	}
	resolved, err := e.tagTbl.resolve(handle, percentDecode(suffix))
	if err != nil {
		e.failCompose(mark, err.Error())
	}
	e.state.tag = &resolved
	return true
}

func (e *Engine) verbatimTag(mark Mark) bool {
	e.pos += 2 // "!<"
	content, _ := e.save(func() bool {
		for e.text[e.pos] != '>' && isURIContentUnit(e.text, e.pos) {
			e.pos++
		}
		return true
	})
	if e.text[e.pos] != '>' {
		e.failCompose(e.mark(), "unterminated verbatim tag")
	}
	e.pos++
	if content == "" {
		e.failCompose(mark, "the bare !<> verbatim tag is illegal")
	}
	decoded := percentDecode(content)
	e.state.tag = &decoded
	return true
}

func isURIContentUnit(u units, pos int) bool {
	return u[pos] == '%' || isURICharSub(u, pos) || u[pos] == '!'
}

// tagHandle parses "!", "!!" or "!word+!"; it always succeeds (every tag
// starts with at least "!") and assumes the caller already checked
// text[pos] == '!'.
func (e *Engine) tagHandle() string {
	start := e.pos
	e.pos++ // leading '!'
	if e.text[e.pos] == '!' {
		e.pos++
		return decodeUnits(e.text[start:e.pos])
	}
	wordStart := e.pos
	for isWordChar(e.text, e.pos) {
		e.pos++
	}
	if e.pos > wordStart && e.text[e.pos] == '!' {
		e.pos++
		return decodeUnits(e.text[start:e.pos])
	}
	// no secondary handle: rewind the speculative word scan, handle is "!"
	e.pos = start + 1
	return "!"
}

func (e *Engine) acceptTagSuffixUnit() bool {
	if e.text[e.pos] == '%' && isHexDigit(e.text, e.pos+1) && isHexDigit(e.text, e.pos+2) {
		e.pos += 3
		return true
	}
	return e.acceptClass16(isTagCharSub)
}

func percentDecode(s string) string {
	if s == "" {
		return s
	}
	raw := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		if s[i] == '%' && i+2 < len(s) {
			v, err := strconv.ParseUint(s[i+1:i+3], 16, 8)
			if err == nil {
				raw = append(raw, byte(v))
				i += 3
				continue
			}
		}
		raw = append(raw, s[i])
		i++
	}
	return string(raw)
}

func (e *Engine) cNsAnchorProperty() bool {
	if e.text[e.pos] != '&' {
		return false
	}
	e.pos++
	name, ok := e.save(func() bool { return e.oneAndRepeat(func() bool { return e.acceptClassCP(isAnchorChar) }) })
	if !ok || name == "" {
		return false
	}
	e.state.anchor = &name
	return true
}

// cNsAliasNode parses "*" ns-anchor-name and resolves it immediately
// against the anchor table (spec.md §4.3).
func (e *Engine) cNsAliasNode() (*Node, bool) {
	if e.text[e.pos] != '*' {
		return nil, false
	}
	mark := e.mark()
	e.pos++
	name, ok := e.save(func() bool { return e.oneAndRepeat(func() bool { return e.acceptClassCP(isAnchorChar) }) })
	if !ok || name == "" {
		e.failCompose(mark, "expected an anchor name after '*'")
	}
	return e.resolveAlias(name, mark), true
}
