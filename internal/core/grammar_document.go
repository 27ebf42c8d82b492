// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Directives and document/stream framing (spec.md §4.5.4, §6.3).

package core

import (
	"fmt"

	"github.com/hashicorp/go-version"
)

var yaml12 = version.Must(version.NewVersion("1.2"))

// ParseStream parses l-yaml-stream: any number of documents, returning
// each document's root node (empty-scalar for an empty document). Warnings
// are accumulated on the engine (e.warnings), not returned here. Document-end
// lines before the first document are skipped and produce no document.
func (e *Engine) ParseStream() []*Node {
	var docs []*Node
	e.sawYAMLDirective = false
	e.documentSuffixAndPrefix()
	for !e.atEnd() {
		doc := e.document()
		docs = append(docs, doc)
		e.sawYAMLDirective = false
		e.tagTbl.reset()
		e.documentSuffixAndPrefix()
	}
	e.failOnEmbeddedBOM()
	return docs
}

// failOnEmbeddedBOM raises a fatal error if a byte-order mark anywhere in
// the input was never consumed as a legitimate document-prefix BOM
// (spec.md §7). A production that hits a BOM mid-scan simply stops there
// — BOM is excluded from nb-char — so the grammar itself never notices;
// this sweep is what actually enforces the "fatal inside a document" rule
// documentPrefix/documentSuffixAndPrefix can't, since they only run
// between documents.
func (e *Engine) failOnEmbeddedBOM() {
	for i := 0; i < len(e.text)-1; i++ {
		if isBOM(e.text, i) && !e.legalBOM[i] {
			e.fail(e.markAt(i), "byte order mark is not allowed inside a document")
		}
	}
}

// documentPrefix consumes l-document-prefix*: any number of BOMs and
// blank/comment lines before the first document.
func (e *Engine) documentPrefix() {
	for {
		if isBOM(e.text, e.pos) {
			e.legalBOM[e.pos] = true
			e.pos++
			continue
		}
		before := e.pos
		e.sLComments()
		if e.pos == before {
			return
		}
	}
}

// documentSuffixAndPrefix consumes any number of "..." document-end lines
// followed by the prefix of whatever comes next.
func (e *Engine) documentSuffixAndPrefix() {
	for e.withRewind(func() bool {
		if !e.acceptString("...") {
			return false
		}
		return e.lComment()
	}) {
	}
	e.documentPrefix()
}

// document parses l-any-document: a directive document, an explicit
// document, or a bare document.
func (e *Engine) document() *Node {
	startPos := e.pos
	hadDirectives := e.directives()
	explicit := e.withRewind(func() bool {
		return e.acceptString("---") && (e.atEnd() || e.isBreakAt(e.pos) || isWhite(e.text, e.pos) || e.text[e.pos] == '#')
	})
	if hadDirectives && !explicit {
		e.fail(e.mark(), "a directive document must be followed by an explicit '---'")
	}
	var node *Node
	if explicit {
		node = e.explicitDocumentBody()
	} else {
		node = e.bareDocumentBody()
	}
	// If nothing at all was consumed — no directive, no "---", and
	// bareDocumentBody fell all the way through to its own e-node default
	// — the character at the cursor could not start any document
	// production. Quoted scalars, flow collections, block scalars, and
	// tag/anchor/alias sigils all advance the cursor on success, so this
	// only fires for a genuine c-indicator with no legal production at all
	// (spec.md §7), e.g. a bare ','.
	if e.pos == startPos && isIndicator(e.text, e.pos) {
		e.fail(e.mark(), "a document must not begin with an indicator character")
	}
	return node
}

// directives parses zero or more %YAML/%TAG/%name lines. Returns true if
// at least one was present.
func (e *Engine) directives() bool {
	any := false
	for e.text[e.pos] == '%' {
		e.directive()
		any = true
	}
	return any
}

func (e *Engine) directive() {
	mark := e.mark()
	e.pos++ // '%'
	name, _ := e.save(func() bool { return e.oneAndRepeat(func() bool { return e.acceptClass16(isNSDirectiveNameChar) }) })
	switch name {
	case "YAML":
		e.yamlDirective(mark)
	case "TAG":
		e.tagDirective(mark)
	default:
		e.skipWhite()
		args, _ := e.save(func() bool {
			for {
				ok, n := isNSChar(e.text, e.pos)
				if !ok {
					return true
				}
				e.pos += n
			}
		})
		e.warn(mark, fmt.Sprintf("unknown directive %%%s %s", name, args))
	}
	e.lComment()
}

func isNSDirectiveNameChar(u units, pos int) bool {
	return isDecDigit(u, pos) || isAsciiLetter(u, pos)
}

func (e *Engine) yamlDirective(mark Mark) {
	if e.sawYAMLDirective {
		e.fail(mark, "duplicate %YAML directive in one document")
	}
	e.sawYAMLDirective = true
	e.sSeparateInLine()
	text, ok := e.save(func() bool {
		return e.oneAndRepeat(func() bool { return e.acceptClass16(isDecDigit) }) &&
			e.acceptUnit('.') &&
			e.oneAndRepeat(func() bool { return e.acceptClass16(isDecDigit) })
	})
	if !ok {
		e.fail(mark, "malformed %YAML directive, expected 'digits.digits'")
	}
	v, err := version.NewVersion(text)
	if err != nil || !v.Equal(yaml12) {
		e.warn(mark, "found incompatible YAML document, expected version 1.2 but found "+text)
	}
}

func (e *Engine) tagDirective(mark Mark) {
	e.sSeparateInLine()
	if e.text[e.pos] != '!' {
		e.fail(mark, "malformed %TAG directive, expected a tag handle")
	}
	handle := e.tagHandle()
	e.sSeparateInLine()
	prefix, ok := e.save(func() bool {
		if e.text[e.pos] == '!' && e.text[e.pos+1] == '<' {
			e.pos += 2
			for e.text[e.pos] != '>' && isURIContentUnit(e.text, e.pos) {
				e.pos++
			}
			if e.text[e.pos] != '>' {
				return false
			}
			e.pos++
			return true
		}
		return e.oneAndRepeat(func() bool { return e.acceptTagSuffixUnit() || e.acceptClass16(isURIContentUnit) })
	})
	if !ok || prefix == "" {
		e.fail(mark, "malformed %TAG directive, expected a tag prefix")
	}
	if err := e.tagTbl.add(handle, percentDecode(prefix)); err != nil {
		e.failCompose(mark, err.Error())
	}
}

// bareDocumentBody parses l-bare-document: a block node at n=-1, c=block-in
// (indentation -1 lets a top-level mapping/sequence start at column 0).
func (e *Engine) bareDocumentBody() *Node {
	if e.atEnd() || e.text[e.pos] == '%' || e.peek(func() bool { return e.acceptString("...") }) {
		return e.emptyNode(e.mark())
	}
	node, ok := e.blockNode(-1, BlockIn)
	if !ok {
		node = e.emptyNode(e.mark())
	}
	return node
}

// explicitDocumentBody parses l-explicit-document after its "---" marker
// (already consumed by the caller): the rest of the marker line, then an
// optional block node, defaulting to an empty scalar.
func (e *Engine) explicitDocumentBody() *Node {
	// "---" itself was already consumed by document()'s lookahead, which
	// keeps its advance on a match.
	e.optional(func() bool { return e.sSeparateInLine() })
	e.skipComment()
	if !e.atEnd() {
		e.readBreak()
	}
	if e.atEnd() || e.text[e.pos] == '%' ||
		(e.text[e.pos] == '-' && e.peek(func() bool { return e.acceptString("---") })) ||
		e.peek(func() bool { return e.acceptString("...") }) {
		return e.emptyNode(e.mark())
	}
	node, ok := e.blockNode(-1, BlockIn)
	if !ok {
		node = e.emptyNode(e.mark())
	}
	return node
}
