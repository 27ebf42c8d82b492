// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Low-level grammar helpers shared by every production family: line
// breaks, comments, separation, and indentation (spec.md §4.5).

package core

// readBreak consumes one line break (CR, LF or CRLF counts as one) at the
// cursor, appending its normalized or literal form to the scratch buffer
// per the NormalizeLineBreaks config (spec.md §6.2).
func (e *Engine) readBreak() bool {
	start := e.pos
	switch {
	case e.text[e.pos] == '\r' && e.text[e.pos+1] == '\n':
		e.pos += 2
	case e.text[e.pos] == '\r' || e.text[e.pos] == '\n':
		e.pos++
	default:
		if r, n := e.text.codePointAt(e.pos); legacyBreakRune(r) {
			e.warn(e.markAt(start), "found character that was a line break in YAML 1.1 but is not in YAML 1.2")
			e.pos += n
			e.appendScratchString(e.lineBreakText())
			return true
		}
		return false
	}
	if e.cfg.NormalizeLineBreaks {
		e.appendScratchString(e.lineBreakText())
	} else {
		e.appendScratchString(decodeUnits(e.text[start:e.pos]))
	}
	return true
}

func (e *Engine) lineBreakText() string {
	if e.cfg.LineBreakForInput != "" {
		return e.cfg.LineBreakForInput
	}
	return "\n"
}

// isBreakAt reports whether text[pos] starts a line break, without
// consuming it.
func (e *Engine) isBreakAt(pos int) bool {
	return e.text[pos] == '\r' || e.text[pos] == '\n'
}

// skipWhite consumes s-white* (spaces and tabs).
func (e *Engine) skipWhite() {
	for isWhite(e.text, e.pos) {
		e.pos++
	}
}

// skipComment consumes a '#' comment through (not including) the line
// break, if one starts here. Comments are recognized so they do not
// corrupt scalar productions, but are not attached to nodes (spec.md
// §3.1 carries no comment field — see SPEC_FULL.md §12).
func (e *Engine) skipComment() {
	if e.text[e.pos] != '#' {
		return
	}
	for {
		ok, n := isNBChar(e.text, e.pos)
		if !ok {
			return
		}
		e.pos += n
	}
}

// lComment consumes s-separate-in-line comment? break, the common "rest
// of the line" tail used after most productions. It succeeds on EOF too.
func (e *Engine) lComment() bool {
	e.skipWhite()
	e.skipComment()
	if e.atEnd() {
		return true
	}
	return e.readBreak()
}

// sSeparateInLine consumes required inline separation: one or more
// s-white, or being at the start of a line.
func (e *Engine) sSeparateInLine() bool {
	if isWhite(e.text, e.pos) {
		for isWhite(e.text, e.pos) {
			e.pos++
		}
		return true
	}
	return e.atLineStart()
}

func (e *Engine) atLineStart() bool { return e.mark().Column == 0 }

// sLComments consumes any number of blank/comment lines: (s-b-comment |
// l-comment)*.
func (e *Engine) sLComments() bool {
	if !(isWhite(e.text, e.pos) || e.text[e.pos] == '#' || e.isBreakAt(e.pos) || e.atLineStart()) {
		return true
	}
	crossedBreak := false
	for {
		before := e.pos
		e.skipWhite()
		e.skipComment()
		if e.isBreakAt(e.pos) {
			e.readBreak()
			crossedBreak = true
			continue
		}
		// A line with content after a consumed break is not a blank or
		// comment line: leave its indentation for the caller.
		if crossedBreak && !e.atEnd() {
			e.pos = before
		}
		break
	}
	return true
}

// sSeparate dispatches to the in-line or multi-line separation production
// depending on context, per spec.md §4.5: only the *-key contexts are
// restricted to a single line — flow-out and flow-in still allow a node's
// separation from its properties/indicator to span lines.
func (e *Engine) sSeparate(n int, c Context) bool {
	if c.inKey() {
		return e.sSeparateInLine()
	}
	return e.sSeparateLines(n)
}

// sSeparateLines allows a run of blank/comment lines followed by
// indentation to n plus any further in-line whitespace, or a same-line
// separation.
func (e *Engine) sSeparateLines(n int) bool {
	if e.withRewind(func() bool {
		e.sLComments()
		if !e.sIndent(n) {
			return false
		}
		e.skipWhite()
		return true
	}) {
		return true
	}
	return e.sSeparateInLine()
}

// --- indentation ---

func (e *Engine) column() int { return e.mark().Column }

// sIndent consumes exactly n spaces.
func (e *Engine) sIndent(n int) bool {
	if n < 0 {
		return true
	}
	for i := 0; i < n; i++ {
		if !isSpace(e.text, e.pos) {
			return false
		}
		e.pos++
	}
	return true
}

// sIndentLE consumes at most n leading spaces.
func (e *Engine) sIndentLE(n int) bool {
	count := 0
	for count < n && isSpace(e.text, e.pos) {
		e.pos++
		count++
	}
	return true
}
