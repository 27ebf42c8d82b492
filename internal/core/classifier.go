// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Character classification over UTF-16 code units, surrogate-pair aware.
// The grammar and the classifier both index by code unit, not by code
// point or by byte, so that position bookkeeping matches the YAML spec's
// own character-level grammar one-for-one (spec.md §4.1).

package core

import "unicode/utf16"

// units is the UTF-16 code-unit form of the document text, with one
// trailing sentinel unit so lookahead never needs a bounds check
// (spec.md §4.2).
type units []uint16

const sentinel uint16 = 0

func toUnits(text string) units {
	u := utf16.Encode([]rune(text))
	out := make(units, len(u)+1)
	copy(out, u)
	out[len(u)] = sentinel
	return out
}

func isHighSurrogate(c uint16) bool { return c >= 0xD800 && c <= 0xDBFF }
func isLowSurrogate(c uint16) bool  { return c >= 0xDC00 && c <= 0xDFFF }

// codePointAt decodes the code point starting at pos, returning it along
// with its length in code units (1 or 2). An isolated surrogate is
// returned as-is with length 1 — deliberate leniency, see spec.md §4.1.
func (u units) codePointAt(pos int) (rune, int) {
	c := u[pos]
	if isHighSurrogate(c) && pos+1 < len(u) && isLowSurrogate(u[pos+1]) {
		r := utf16.DecodeRune(rune(c), rune(u[pos+1]))
		return r, 2
	}
	return rune(c), 1
}

func isPrintableRune(r rune) bool {
	switch {
	case r == 0x09 || r == 0x0A || r == 0x0D:
		return true
	case r >= 0x20 && r <= 0x7E:
		return true
	case r == 0x85:
		return true
	case r >= 0xA0 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	default:
		return false
	}
}

// legacyBreakRune reports whether r was treated as a line break in YAML
// 1.1 but is not one in 1.2 — used only to drive the deprecation warning
// spec.md §7 calls for (U+2028, U+2029, U+0085, U+000C).
func legacyBreakRune(r rune) bool {
	switch r {
	case 0x2028, 0x2029, 0x0085, 0x000C:
		return true
	default:
		return false
	}
}

// --- c-byte-order-mark [3] ---

func isBOM(u units, pos int) bool { return u[pos] == 0xFEFF }

// --- c-indicator [22], c-flow-indicator [23] ---

const indicatorChars = "-?:,[]{}#&*!|>'\"%@`"
const flowIndicatorChars = ",[]{}"

func isIndicator(u units, pos int) bool {
	c := u[pos]
	return c < 128 && containsByte(indicatorChars, byte(c))
}

func isFlowIndicator(u units, pos int) bool {
	c := u[pos]
	return c < 128 && containsByte(flowIndicatorChars, byte(c))
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}

// --- basic 16-bit classes ---

func isDecDigit(u units, pos int) bool {
	c := u[pos]
	return c >= '0' && c <= '9'
}

func isHexDigit(u units, pos int) bool {
	c := u[pos]
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isAsciiLetter(u units, pos int) bool {
	c := u[pos]
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isWordChar(u units, pos int) bool {
	return isDecDigit(u, pos) || isAsciiLetter(u, pos) || u[pos] == '-'
}

func isSpace(u units, pos int) bool { return u[pos] == ' ' }

func isWhite(u units, pos int) bool { c := u[pos]; return c == ' ' || c == '\t' }

// b-char [28]: a line break.
func isBreak(u units, pos int) bool { c := u[pos]; return c == '\n' || c == '\r' }

// --- code-point-level classes: (matched, length in code units) ---

// nb-json [2]: tab or any printable character.
func isNBJSON(u units, pos int) (bool, int) {
	if u[pos] == '\t' {
		return true, 1
	}
	r, n := u.codePointAt(pos)
	return isPrintableRune(r), n
}

// nb-char [27]: printable char minus BOM minus line break.
func isNBChar(u units, pos int) (bool, int) {
	if isBOM(u, pos) || isBreak(u, pos) {
		return false, 1
	}
	r, n := u.codePointAt(pos)
	return isPrintableRune(r), n
}

// ns-char [34]: nb-char minus s-white.
func isNSChar(u units, pos int) (bool, int) {
	if isWhite(u, pos) {
		return false, 1
	}
	return isNBChar(u, pos)
}

// ns-anchor-char: ns-char minus c-flow-indicator.
func isAnchorChar(u units, pos int) (bool, int) {
	if isFlowIndicator(u, pos) {
		return false, 1
	}
	return isNSChar(u, pos)
}

// ns-plain-safe-out: ns-char, unrestricted (block-key, block-out, flow-out).
func isPlainSafeOut(u units, pos int) (bool, int) {
	return isNSChar(u, pos)
}

// ns-plain-safe-in: ns-char minus c-flow-indicator (flow-in, flow-key).
func isPlainSafeIn(u units, pos int) (bool, int) {
	if isFlowIndicator(u, pos) {
		return false, 1
	}
	return isNSChar(u, pos)
}

// isPlainSafe dispatches ns-plain-safe(c). Only flow-in and flow-key
// exclude c-flow-indicator; flow-out behaves like the block contexts
// (spec.md §4.5, GLOSSARY) since it names a flow node reached directly
// from block context, not one nested inside an actual flow collection.
func isPlainSafe(u units, pos int, c Context) (bool, int) {
	if c == FlowIn || c == FlowKey {
		return isPlainSafeIn(u, pos)
	}
	return isPlainSafeOut(u, pos)
}

// ns-plain-first-sub: ns-char minus c-indicator, without the grammar-level
// "?:- followed by ns-plain-safe" carve-out (that carve-out needs two-token
// lookahead and lives in the grammar, not the classifier).
func isPlainFirstSub(u units, pos int) (bool, int) {
	if isIndicator(u, pos) {
		return false, 1
	}
	return isNSChar(u, pos)
}

// ns-uri-char-sub: the URI character set, without the "%xx" escape (the
// grammar handles %xx itself since it spans three code units).
func isURICharSub(u units, pos int) bool {
	c := u[pos]
	if c < 128 && containsByte("#;/?:@&=+$,_.!~*'()[]", byte(c)) {
		return true
	}
	return isWordChar(u, pos)
}

// ns-tag-char-sub: like ns-uri-char-sub, minus c-flow-indicator and '!'.
func isTagCharSub(u units, pos int) bool {
	if u[pos] == '!' || isFlowIndicator(u, pos) {
		return false
	}
	return isURICharSub(u, pos)
}
