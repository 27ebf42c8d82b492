// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlsharp

import "github.com/mlaily/yamlsharp/internal/core"

type (
	// ScannerError is raised by character-level decoding (escapes,
	// quoted-scalar content, block-scalar indentation).
	ScannerError = core.ScannerError
	// ParserError is raised by a grammar production.
	ParserError = core.ParserError
	// ComposerError is raised by the representation-graph builder (anchor
	// lookup, tag resolution).
	ComposerError = core.ComposerError
)
