// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Generic parsing engine: the primitive combinators every grammar
// production in grammar_*.go is built from (spec.md §4.2). Cursor
// position, the scratch buffer, and the small per-rewind-point state
// block are the only things a rewind restores; the line map and the
// warning list are deliberately left untouched (spec.md §3.2).
//
// Fatal errors are raised with panic(fatalError{...}) and recovered once,
// at the top of Parse — the same unwind-past-backtracking trick
// text/template's own recursive-descent parser uses, and it gives us
// exactly the "not caught by with_rewind" behavior spec.md §4.2 requires
// for free, since a plain Go panic skips over withRewind's call frames
// without the rewind logic ever seeing it.

package core

// parserState is the single plain-data value snapshotted on every rewind
// (spec.md §3.2).
type parserState struct {
	tag         *string // nil: unset: "": non-specific "!"
	anchor      *string
	value       *Node
	anchorDepth int
}

type snapshot struct {
	pos        int
	scratchLen int
	state      parserState
}

// fatalError is the panic payload for unrecoverable grammar failures.
type fatalError struct{ err error }

type Engine struct {
	text    units
	pos     int
	scratch []rune

	anchors  *anchorTable
	tagTbl   *tagTable
	lines    *lineMap
	resolver Resolver
	cfg      EngineConfig

	state parserState

	warnings     []string
	warningsSeen map[string]bool

	sawYAMLDirective bool

	// legalBOM records the code-unit offsets of byte-order marks consumed
	// by documentPrefix/documentSuffixAndPrefix — the only positions a BOM
	// is allowed to occupy (spec.md §7).
	legalBOM map[int]bool
}

// EngineConfig is the subset of Config the engine needs directly.
type EngineConfig struct {
	NormalizeLineBreaks bool
	LineBreakForInput   string
}

func NewEngine(text string, resolver Resolver, cfg EngineConfig) *Engine {
	u := toUnits(text)
	return &Engine{
		text:         u,
		anchors:      newAnchorTable(),
		tagTbl:       newTagTable(),
		lines:        newLineMap(u),
		resolver:     resolver,
		cfg:          cfg,
		warningsSeen: make(map[string]bool),
		legalBOM:     make(map[int]bool),
	}
}

func (e *Engine) mark() Mark { return e.lines.markAt(e.pos) }
func (e *Engine) markAt(pos int) Mark { return e.lines.markAt(pos) }

func (e *Engine) atEnd() bool { return e.text[e.pos] == sentinel && e.pos == len(e.text)-1 }

// --- snapshot / rewind ---

func (e *Engine) snapshot() snapshot {
	s := snapshot{pos: e.pos, scratchLen: len(e.scratch), state: e.state}
	s.state.anchorDepth = e.anchors.mark()
	return s
}

func (e *Engine) restore(s snapshot) {
	e.pos = s.pos
	e.scratch = e.scratch[:s.scratchLen]
	e.state = s.state
}

// withRewind snapshots engine state, runs rule, and restores the snapshot
// (including trimming the anchor table back to the saved depth) if rule
// returns false. Fatal errors raised from within rule are not caught here
// — they propagate as panics straight past this function.
func (e *Engine) withRewind(rule func() bool) bool {
	snap := e.snapshot()
	if rule() {
		return true
	}
	e.restore(snap)
	e.anchors.rewind(snap.state.anchorDepth)
	return false
}

// --- repetition combinators ---

// repeat runs rule while it both succeeds and advances pos; always
// succeeds itself. The "advanced" guard is what keeps a rule that can
// match empty input from looping forever.
func (e *Engine) repeat(rule func() bool) bool {
	for {
		before := e.pos
		if !e.withRewind(rule) {
			return true
		}
		if e.pos == before {
			return true
		}
	}
}

func (e *Engine) oneAndRepeat(rule func() bool) bool {
	return e.withRewind(rule) && e.repeat(rule)
}

func (e *Engine) repeatN(n int, rule func() bool) bool {
	return e.withRewind(func() bool {
		for i := 0; i < n; i++ {
			if !rule() {
				return false
			}
		}
		return true
	})
}

func (e *Engine) repeatMinMax(min, max int, rule func() bool) bool {
	return e.withRewind(func() bool {
		count := 0
		for count < max {
			before := e.pos
			if !rule() {
				break
			}
			count++
			if e.pos == before {
				break
			}
		}
		return count >= min
	})
}

func (e *Engine) optional(rule func() bool) bool {
	e.withRewind(rule)
	return true
}

// peek runs rule and always restores the snapshot afterward, regardless of
// the result — a pure lookahead, unlike withRewind which keeps the
// advanced position on success. Used where a production needs to decide
// which alternative applies before committing to parsing either one.
func (e *Engine) peek(rule func() bool) bool {
	snap := e.snapshot()
	result := rule()
	e.restore(snap)
	e.anchors.rewind(snap.state.anchorDepth)
	return result
}

// --- atomic consumption ---

func (e *Engine) acceptUnit(c uint16) bool {
	if e.text[e.pos] == c {
		e.pos++
		return true
	}
	return false
}

func (e *Engine) acceptString(s string) bool {
	u := toUnits(s)
	u = u[:len(u)-1] // drop the sentinel toUnits added
	if e.pos+len(u) > len(e.text) {
		return false
	}
	for i, c := range u {
		if e.text[e.pos+i] != c {
			return false
		}
	}
	e.pos += len(u)
	return true
}

// acceptClass16 consumes one code unit if pred accepts it.
func (e *Engine) acceptClass16(pred func(units, int) bool) bool {
	if pred(e.text, e.pos) {
		e.pos++
		return true
	}
	return false
}

// acceptClassCP consumes a surrogate-aware code point if pred accepts it.
func (e *Engine) acceptClassCP(pred func(units, int) (bool, int)) bool {
	ok, n := pred(e.text, e.pos)
	if !ok {
		return false
	}
	e.pos += n
	return true
}

// --- capture ---

// save runs rule and, if it succeeds, returns the substring of text it
// consumed (decoded back to a Go string).
func (e *Engine) save(rule func() bool) (string, bool) {
	start := e.pos
	if !e.withRewind(rule) {
		return "", false
	}
	return decodeUnits(e.text[start:e.pos]), true
}

func decodeUnits(u units) string {
	runes := make([]rune, 0, len(u))
	for i := 0; i < len(u); {
		r, n := u.codePointAt(i)
		runes = append(runes, r)
		i += n
	}
	return string(runes)
}

// --- scratch buffer ---

func (e *Engine) appendScratch(r rune) { e.scratch = append(e.scratch, r) }

func (e *Engine) appendScratchString(s string) {
	for _, r := range s {
		e.scratch = append(e.scratch, r)
	}
}

func (e *Engine) scratchString() string { return string(e.scratch) }

func (e *Engine) clearScratch() { e.scratch = e.scratch[:0] }

// --- warnings / errors ---

func (e *Engine) warn(mark Mark, message string) {
	text := mark.String() + ": " + message
	if e.warningsSeen[text] {
		return
	}
	e.warningsSeen[text] = true
	e.warnings = append(e.warnings, text)
}

// fail raises a grammar-structural failure: malformed block/flow
// collection syntax, document/directive framing, and the like.
func (e *Engine) fail(mark Mark, message string) {
	panic(fatalError{err: ParserError{Mark: mark, Message: message}})
}

// failScanner raises a character-level decoding failure: escape sequences,
// quoted-scalar content, and block-scalar indentation.
func (e *Engine) failScanner(mark Mark, message string) {
	panic(fatalError{err: ScannerError{Mark: mark, Message: message}})
}

// failCompose raises a representation-graph-builder failure: anchor lookup
// and tag resolution.
func (e *Engine) failCompose(mark Mark, message string) {
	panic(fatalError{err: ComposerError{Mark: mark, Message: message}})
}

func (e *Engine) failContext(mark Mark, message string, contextMark Mark, contextMessage string) {
	panic(fatalError{err: ParserError{
		Mark: mark, Message: message,
		ContextMark: contextMark, ContextMessage: contextMessage,
	}})
}

// errorUnless is the error_unless primitive from spec.md §4.2: it raises
// a fatal error when cond holds, and otherwise just fails the production
// (returns false) so the caller rewinds instead of reporting a spurious
// error during a speculative parse.
func (e *Engine) errorUnless(cond bool, mark Mark, message string) bool {
	if cond {
		e.fail(mark, message)
	}
	return false
}
