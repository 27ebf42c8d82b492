// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamlsharp implements a YAML 1.2 (3rd Edition) text parser: a
// context-parameterized, backtracking recursive-descent grammar engine
// that builds a representation graph of scalar, sequence, and mapping
// nodes with anchors, aliases, and tags resolved.
//
// Source code and other details for the project are available at GitHub:
//
//	https://github.com/mlaily/yamlsharp
//
// This file contains:
// - The Parse entry point
// - The Result type returned alongside warnings
package yamlsharp

import (
	"github.com/mlaily/yamlsharp/internal/core"
)

// Result is the outcome of parsing one YAML stream: one root Node per
// document, in stream order, plus every warning collected along the way.
type Result struct {
	Documents []*Node
	Warnings  []string
}

// Parse parses text as a YAML 1.2 stream and returns every document root
// plus the accumulated, deduplicated warning list. text must already be
// valid Unicode; Parse does not perform encoding detection or I/O — that
// is the caller's responsibility.
//
// A fatal grammar error aborts the parse with no partial result: err is
// non-nil and Result is the zero value.
func Parse(text string, opts ...Option) (Result, error) {
	c, err := applyOptions(opts)
	if err != nil {
		return Result{}, err
	}
	res, err := core.Parse(text, c.resolver, core.EngineConfig{
		NormalizeLineBreaks: c.normalizeLineBreaks,
		LineBreakForInput:   c.lineBreakForInput,
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Documents: res.Documents, Warnings: res.Warnings}, nil
}
