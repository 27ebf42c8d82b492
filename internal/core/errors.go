// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error and position types shared by every stage of the grammar engine.

package core

import (
	"fmt"
	"strings"
)

// Mark holds a position in the input text.
type Mark struct {
	Index  int // code-unit offset
	Line   int // 1-based
	Column int // 0-based internally, rendered 1-based
}

func (m Mark) String() string {
	if m.Line == 0 {
		return "<unknown position>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "line %d", m.Line)
	if m.Column != 0 {
		fmt.Fprintf(&b, ", column %d", m.Column+1)
	}
	return b.String()
}

// MarkedError is the shape shared by every fatal error the grammar raises.
type MarkedError struct {
	ContextMark    Mark
	ContextMessage string

	Mark    Mark
	Message string
}

func (e MarkedError) Error() string {
	var b strings.Builder
	b.WriteString("yaml: ")
	if len(e.ContextMessage) > 0 {
		fmt.Fprintf(&b, "%s at %s: ", e.ContextMessage, e.ContextMark)
	}
	if len(e.ContextMessage) == 0 || e.ContextMark != e.Mark {
		fmt.Fprintf(&b, "%s: ", e.Mark)
	}
	b.WriteString(e.Message)
	return b.String()
}

// ScannerError is raised by character-level decoding: escape sequences,
// quoted-scalar content, and block-scalar indentation (Engine.failScanner).
type ScannerError MarkedError

func (e ScannerError) Error() string { return MarkedError(e).Error() }

// ParserError is raised by a grammar production itself: malformed
// block/flow collection syntax, document/directive framing (Engine.fail).
type ParserError MarkedError

func (e ParserError) Error() string { return MarkedError(e).Error() }

// ComposerError is raised by the representation-graph builder: anchor
// lookup and tag resolution (Engine.failCompose).
type ComposerError MarkedError

func (e ComposerError) Error() string { return MarkedError(e).Error() }
