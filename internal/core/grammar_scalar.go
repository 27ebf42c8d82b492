// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Flow scalar productions: plain, single-quoted and double-quoted
// (spec.md §4.5.3/§4.5.6).

package core

import "strconv"

// --- plain scalars ---

// plainFirstOK reports whether the character at the cursor may start a
// plain scalar under context c, without consuming it.
//
// Deviation from the letter of the spec, preserved deliberately (spec.md
// §4.5.3/§9): a ':' cannot start a plain scalar when immediately followed
// by a plain-safe character, to avoid ambiguity with explicit mapping
// constructs in the wild. '?' and '-' follow the ordinary spec rule:
// allowed as first char only when followed by a plain-safe character.
func (e *Engine) plainFirstOK(c Context) bool {
	ch := e.text[e.pos]
	if ch == '?' || ch == '-' {
		ok, _ := isPlainSafe(e.text, e.pos+1, c)
		return ok
	}
	if ch == ':' {
		ok, _ := isPlainSafe(e.text, e.pos+1, c)
		return !ok
	}
	ok, _ := isPlainFirstSub(e.text, e.pos)
	return ok
}

// plainContinuationUnits reports whether the character at pos may
// continue an already-started plain scalar, and how many code units it
// consumes. precededBySpace distinguishes "#" starting a trailing
// comment (only true right after whitespace) from "#" as content.
func (e *Engine) plainContinuationUnits(pos int, c Context, precededBySpace bool) int {
	if precededBySpace && e.text[pos] == '#' {
		return 0
	}
	if e.text[pos] == ':' {
		if ok, _ := isPlainSafe(e.text, pos+1, c); ok {
			return 1
		}
		return 0
	}
	ok, n := isPlainSafe(e.text, pos, c)
	if !ok {
		return 0
	}
	return n
}

// parsePlain parses ns-plain(n,c): a plain scalar, single-line in a *-key
// context, possibly folded across lines otherwise.
func (e *Engine) parsePlain(n int, c Context) (*Node, bool) {
	if !e.plainFirstOK(c) {
		return nil, false
	}
	mark := e.mark()
	e.clearScratch()

	// first character
	_, first := isNSChar(e.text, e.pos)
	e.appendScratchString(decodeUnits(e.text[e.pos : e.pos+first]))
	e.pos += first

	multiline := !c.inKey()
	for {
		savedPos := e.pos
		spaceRun := 0
		for isWhite(e.text, e.pos) {
			e.pos++
			spaceRun++
		}
		if e.isBreakAt(e.pos) || e.atEnd() {
			if !multiline {
				e.pos = savedPos
				break
			}
			if !e.plainFoldContinue(n, c) {
				e.pos = savedPos
				break
			}
			continue
		}
		width := e.plainContinuationUnits(e.pos, c, spaceRun > 0)
		if width == 0 {
			e.pos = savedPos
			break
		}
		for i := 0; i < spaceRun; i++ {
			e.appendScratch(' ')
		}
		e.appendScratchString(decodeUnits(e.text[e.pos : e.pos+width]))
		e.pos += width
	}

	return e.createScalar(e.scratchString(), "", mark), true
}

// plainFoldContinue implements s-ns-plain-next-line(n,c): consume a line
// break plus any blank lines, require indentation >= n+1, and confirm the
// next line actually continues the scalar before folding the break into a
// single space.
func (e *Engine) plainFoldContinue(n int, c Context) bool {
	return e.withRewind(func() bool {
		blankLines := 0
		for e.isBreakAt(e.pos) {
			e.consumeRawBreak()
			blankLines++
			e.sIndentLE(n + 1)
			if !isWhite(e.text, e.pos) && e.isBreakAt(e.pos) {
				continue
			}
			break
		}
		if blankLines == 0 {
			return false
		}
		if !e.sIndent(n + 1) {
			e.sIndentLE(n + 1)
		}
		if e.column() < n+1 {
			return false
		}
		width := e.plainContinuationUnits(e.pos, c, false)
		if width == 0 {
			return false
		}
		if blankLines == 1 {
			e.appendScratch(' ')
		} else {
			for i := 0; i < blankLines-1; i++ {
				e.appendScratchString(e.lineBreakText())
			}
		}
		return true
	})
}

// consumeRawBreak advances past one line break without touching the
// scratch buffer (used where folding decides separately what to append).
func (e *Engine) consumeRawBreak() {
	if e.text[e.pos] == '\r' && e.text[e.pos+1] == '\n' {
		e.pos += 2
	} else {
		e.pos++
	}
}

// --- single-quoted scalars ---

func (e *Engine) parseSingleQuoted(n int, c Context) (*Node, bool) {
	if e.text[e.pos] != '\'' {
		return nil, false
	}
	mark := e.mark()
	e.pos++
	e.clearScratch()
	multiline := !c.inKey()
	for {
		if e.atEnd() {
			e.failScanner(e.mark(), "unexpected end of input in single-quoted scalar")
		}
		if e.text[e.pos] == '\'' {
			if e.text[e.pos+1] == '\'' {
				e.appendScratch('\'')
				e.pos += 2
				continue
			}
			e.pos++
			return e.createScalar(e.scratchString(), StrTag, mark), true
		}
		if e.isBreakAt(e.pos) {
			if !multiline {
				e.failScanner(e.mark(), "unexpected line break in single-quoted scalar")
			}
			e.foldQuotedBreak(n)
			continue
		}
		ok, width := isNBJSON(e.text, e.pos)
		if !ok {
			e.failScanner(e.mark(), "invalid character in single-quoted scalar")
		}
		e.appendScratchString(decodeUnits(e.text[e.pos : e.pos+width]))
		e.pos += width
	}
}

// --- double-quoted scalars ---

func (e *Engine) parseDoubleQuoted(n int, c Context) (*Node, bool) {
	if e.text[e.pos] != '"' {
		return nil, false
	}
	mark := e.mark()
	e.pos++
	e.clearScratch()
	multiline := !c.inKey()
	for {
		if e.atEnd() {
			e.failScanner(e.mark(), "unexpected end of input in double-quoted scalar")
		}
		switch {
		case e.text[e.pos] == '"':
			e.pos++
			return e.createScalar(e.scratchString(), StrTag, mark), true
		case e.text[e.pos] == '\\':
			e.decodeEscape(n)
		case e.isBreakAt(e.pos):
			if !multiline {
				e.failScanner(e.mark(), "unexpected line break in double-quoted scalar")
			}
			e.foldQuotedBreak(n)
		default:
			ok, width := isNBJSON(e.text, e.pos)
			if !ok {
				e.failScanner(e.mark(), "invalid character in double-quoted scalar")
			}
			e.appendScratchString(decodeUnits(e.text[e.pos : e.pos+width]))
			e.pos += width
		}
	}
}

// foldQuotedBreak implements s-flow-folded for quoted scalars: a run of
// line breaks folds to a single space, unless it crosses a blank line, in
// which case each extra break becomes one configured line break.
func (e *Engine) foldQuotedBreak(n int) {
	breaks := 0
	for e.isBreakAt(e.pos) {
		e.consumeRawBreak()
		breaks++
		e.sIndentLE(n)
	}
	e.skipWhite()
	switch {
	case breaks == 1:
		e.appendScratch(' ')
	default:
		for i := 0; i < breaks-1; i++ {
			e.appendScratchString(e.lineBreakText())
		}
	}
}

var singleCharEscapes = map[rune]rune{
	'0': 0x00, 'a': 0x07, 'b': 0x08, 't': 0x09, '\t': 0x09,
	'n': 0x0A, 'v': 0x0B, 'f': 0x0C, 'r': 0x0D, 'e': 0x1B,
	' ': 0x20, '"': 0x22, '/': 0x2F, '\\': 0x5C,
	'N': 0x85, '_': 0xA0, 'L': 0x2028, 'P': 0x2029,
}

// decodeEscape handles one `\...` escape sequence in a double-quoted
// scalar, including \xXX, \uXXXX (with surrogate-pair combination per
// spec.md §8.2) and \UXXXXXXXX.
func (e *Engine) decodeEscape(n int) {
	start := e.pos
	e.pos++ // backslash
	if e.atEnd() {
		e.failScanner(e.markAt(start), "unexpected end of input after escape")
	}
	code := rune(e.text[e.pos])
	if code == '\n' || code == '\r' {
		// escaped line break: a pure line continuation, contributing no
		// break and no space, unlike an ordinary (unescaped) folded break.
		// Any further blank lines and the next line's indentation are
		// swallowed the same way.
		e.consumeRawBreak()
		for e.isBreakAt(e.pos) {
			e.consumeRawBreak()
		}
		e.sIndentLE(n)
		e.skipWhite()
		return
	}
	if hexLen, ok := hexEscapeLength(code); ok {
		e.pos++
		val, width := e.readHexDigits(start, hexLen)
		e.pos += width
		e.appendScratch(val)
		return
	}
	if mapped, ok := singleCharEscapes[code]; ok {
		e.pos++
		e.appendScratch(mapped)
		return
	}
	e.failScanner(e.markAt(start), "unknown escape sequence")
}

func hexEscapeLength(code rune) (int, bool) {
	switch code {
	case 'x':
		return 2, true
	case 'u':
		return 4, true
	case 'U':
		return 8, true
	default:
		return 0, false
	}
}

// readHexDigits reads exactly n hex digits starting at e.pos and returns
// the decoded rune plus how many code units were consumed. \u escapes
// that decode to a high surrogate are combined with an immediately
// following \uXXXX low-surrogate escape, reconstructing the supplementary
// code point (spec.md §8.2).
func (e *Engine) readHexDigits(escapeStart, n int) (rune, int) {
	if e.pos+n > len(e.text) {
		e.failScanner(e.markAt(escapeStart), "truncated escape sequence")
	}
	digits := decodeUnits(e.text[e.pos : e.pos+n])
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		e.failScanner(e.markAt(escapeStart), "invalid hex digits in escape sequence")
	}
	r := rune(v)
	if n == 4 && isHighSurrogate(uint16(v)) {
		if e.pos+n+2 <= len(e.text) && e.text[e.pos+n] == '\\' && e.text[e.pos+n+1] == 'u' {
			lowDigits := decodeUnits(e.text[e.pos+n+2 : e.pos+n+6])
			if lv, err := strconv.ParseUint(lowDigits, 16, 32); err == nil && isLowSurrogate(uint16(lv)) {
				combined := utf16PairToRune(uint16(v), uint16(lv))
				return combined, n + 6
			}
		}
	}
	return r, n
}

func utf16PairToRune(hi, lo uint16) rune {
	return (rune(hi)-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000
}
