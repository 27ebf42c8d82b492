// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Top-level entry point: wires the engine to the grammar's stream
// production and converts a fatal-error panic into a returned error
// (spec.md §4.2, §6.1).

package core

// Result is the outcome of parsing one YAML stream.
type Result struct {
	Documents []*Node
	Warnings  []string
}

// Parse runs the full grammar over text and returns every document root
// plus the accumulated warning list. A fatal grammar error is returned as
// err with no partial result, per spec.md §7 ("partial results are not
// returned on fatal failure").
func Parse(text string, resolver Resolver, cfg EngineConfig) (result Result, err error) {
	e := NewEngine(text, resolver, cfg)
	defer func() {
		if r := recover(); r != nil {
			fe, ok := r.(fatalError)
			if !ok {
				panic(r)
			}
			err = fe.err
			result = Result{}
		}
	}()
	docs := e.ParseStream()
	if !e.atEnd() {
		e.fail(e.mark(), "unexpected content after the last document")
	}
	return Result{Documents: docs, Warnings: e.warnings}, nil
}
