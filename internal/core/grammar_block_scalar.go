// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Block scalars: literal (|) and folded (>) styles, their header,
// indentation auto-detection, and chomping/folding (spec.md §4.5.1,
// §4.5.2).

package core

type blockLine struct {
	content string
	blank   bool
	more    bool // indented beyond the block's base indentation
}

// parseBlockScalar parses c-l+literal(n) or c-l+folded(n).
func (e *Engine) parseBlockScalar(n int, c Context) (*Node, bool) {
	style := e.text[e.pos]
	if style != '|' && style != '>' {
		return nil, false
	}
	mark := e.mark()
	e.pos++
	folded := style == '>'

	indicatorWidth, hasIndicator, chomp := e.blockHeader()
	e.sLComments0()

	var baseIndent int
	if hasIndicator {
		baseIndent = n + indicatorWidth
		if baseIndent < 1 {
			baseIndent = 1
		}
	} else {
		baseIndent = n + e.autoDetectIndentation(n)
	}

	lines, lastHadBreak := e.scanBlockLines(baseIndent, !hasIndicator)

	body, trailingBlank := e.joinBlockLines(lines, !folded)
	trailing := trailingBlank
	if lastHadBreak {
		trailing++
	}

	value := body + chompTail(chomp, trailing, e.lineBreakText())
	if folded && chomp == ChompKeep {
		e.warn(mark, "folded scalar with keep chomping ('>+') combines two unusual styles")
	}
	return e.createScalar(value, StrTag, mark), true
}

// blockHeader parses c-b-block-header(t,m): an optional indentation
// indicator and an optional chomping indicator, in either order.
func (e *Engine) blockHeader() (indentWidth int, hasIndent bool, chomp Chomping) {
	chomp = ChompClip
	for i := 0; i < 2; i++ {
		switch {
		case isDecDigit(e.text, e.pos) && e.text[e.pos] != '0':
			indentWidth = int(e.text[e.pos] - '0')
			hasIndent = true
			e.pos++
		case e.text[e.pos] == '-':
			chomp = ChompStrip
			e.pos++
		case e.text[e.pos] == '+':
			chomp = ChompKeep
			e.pos++
		}
	}
	return
}

// sLComments0 consumes the rest of the header line (s-b-comment).
func (e *Engine) sLComments0() {
	e.skipWhite()
	e.skipComment()
	if !e.atEnd() {
		e.readBreak()
	}
}

// autoDetectIndentation implements spec.md §4.5.1: scan forward through
// blank lines, find the widest leading-space run, rewind, and return that
// width minus n (clamped to at least 1). A TAB used for indentation with
// no explicit indicator is fatal.
func (e *Engine) autoDetectIndentation(n int) int {
	start := e.pos
	widestBlank := 0
	contentIndent := -1
	pos := e.pos
	for pos < len(e.text) {
		lineStart := pos
		spaces := 0
		for e.text[pos] == ' ' {
			pos++
			spaces++
		}
		if e.text[pos] == '\t' {
			e.failScanner(e.markAt(lineStart), "TAB character used for block scalar indentation")
		}
		if e.isBreakAt(pos) {
			// blank line: doesn't set the detected indentation itself, but
			// its leading-space run still has to be checked against the
			// first content line's indentation once that's known.
			if pos == lineStart+spaces {
				if spaces > widestBlank {
					widestBlank = spaces
				}
				if e.text[pos] == '\r' && e.text[pos+1] == '\n' {
					pos += 2
				} else {
					pos++
				}
				continue
			}
		}
		contentIndent = spaces
		break
	}
	e.pos = start
	if contentIndent < 0 {
		contentIndent = 0
	}
	if widestBlank > contentIndent {
		e.failScanner(e.markAt(start), "a blank line in a block scalar is more indented than its content")
	}
	detected := contentIndent - n
	if detected < 1 {
		detected = 1
	}
	return detected
}

// scanBlockLines reads content lines at or more-indented than baseIndent
// until a less-indented (and non-blank) line or EOF ends the block.
func (e *Engine) scanBlockLines(baseIndent int, checkTab bool) (lines []blockLine, lastHadBreak bool) {
	for !e.atEnd() {
		lineStart := e.pos
		spaces := 0
		p := e.pos
		for e.text[p] == ' ' {
			p++
			spaces++
		}
		if e.isBreakAt(p) || (p == len(e.text)-1 && e.text[p] == sentinel) {
			// blank line, regardless of how little it's indented.
			e.pos = p
			lines = append(lines, blockLine{blank: true})
			if e.isBreakAt(e.pos) {
				e.consumeRawBreak()
				lastHadBreak = true
			} else {
				lastHadBreak = false
				break
			}
			continue
		}
		if spaces < baseIndent {
			e.pos = lineStart
			break
		}
		if checkTab && e.text[p] == '\t' {
			e.failScanner(e.markAt(lineStart), "TAB character used for block scalar indentation")
		}
		e.pos = lineStart + baseIndent
		content, _ := e.save(func() bool {
			for {
				ok, width := isNBChar(e.text, e.pos)
				if !ok {
					return true
				}
				e.pos += width
			}
		})
		more := spaces > baseIndent
		lines = append(lines, blockLine{content: content, more: more})
		if e.isBreakAt(e.pos) {
			e.consumeRawBreak()
			lastHadBreak = true
		} else {
			lastHadBreak = false
			break
		}
	}
	return
}

// joinBlockLines applies the folding algorithm of spec.md §4.5.2 (or, for
// literal scalars, joins every line with a break unconditionally) and
// returns the joined body plus the count of blank lines trailing the last
// non-blank content line.
func (e *Engine) joinBlockLines(lines []blockLine, forceBreakJoin bool) (string, int) {
	var body []byte
	first := true
	pendingBreaks := 0
	prevMore := false

	for _, l := range lines {
		if l.blank {
			pendingBreaks++
			continue
		}
		if first {
			body = append(body, l.content...)
			first = false
		} else if pendingBreaks > 0 {
			for i := 0; i < pendingBreaks; i++ {
				body = append(body, e.lineBreakText()...)
			}
			pendingBreaks = 0
			body = append(body, l.content...)
		} else if forceBreakJoin || l.more || prevMore {
			body = append(body, e.lineBreakText()...)
			body = append(body, l.content...)
		} else {
			body = append(body, ' ')
			body = append(body, l.content...)
		}
		prevMore = l.more
	}
	if first {
		return "", 0
	}
	return string(body), pendingBreaks
}

// chompTail renders the trailing-break count according to the chomping
// indicator (spec.md §4.5.2).
func chompTail(chomp Chomping, count int, breakText string) string {
	switch chomp {
	case ChompStrip:
		return ""
	case ChompKeep:
		result := ""
		for i := 0; i < count; i++ {
			result += breakText
		}
		return result
	default: // clip
		if count > 0 {
			return breakText
		}
		return ""
	}
}
