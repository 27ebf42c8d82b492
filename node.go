// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlsharp

import "github.com/mlaily/yamlsharp/internal/core"

//-----------------------------------------------------------------------------
// Node-related type aliases and constants
//-----------------------------------------------------------------------------

type (
	// Node is a representation-graph node: a scalar, sequence, or mapping.
	// See internal/core.Node.
	Node = core.Node
	// Kind identifies the shape of a Node.
	// See internal/core.Kind.
	Kind = core.Kind
	// MapEntry is one (key, value) pair of a Mapping node.
	// See internal/core.MapEntry.
	MapEntry = core.MapEntry
	// Mark is a source position: line and column.
	// See internal/core.Mark.
	Mark = core.Mark
)

// Re-export Kind constants.
const (
	ScalarNode   = core.ScalarNode
	SequenceNode = core.SequenceNode
	MappingNode  = core.MappingNode
)

// Re-export the YAML core schema's default tag IRIs.
const (
	NullTag      = core.NullTag
	BoolTag      = core.BoolTag
	StrTag       = core.StrTag
	IntTag       = core.IntTag
	FloatTag     = core.FloatTag
	TimestampTag = core.TimestampTag
	SeqTag       = core.SeqTag
	MapTag       = core.MapTag
)
