// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The representation graph: scalar, sequence and mapping nodes, plus the
// default tag IRIs of the YAML core schema.

package core

// Kind identifies the shape of a representation-graph node.
type Kind int8

const (
	ScalarNode Kind = iota
	SequenceNode
	MappingNode
)

func (k Kind) String() string {
	switch k {
	case ScalarNode:
		return "scalar"
	case SequenceNode:
		return "sequence"
	case MappingNode:
		return "mapping"
	default:
		return "unknown"
	}
}

// Default structural tags, per spec.md §3.1.
const (
	NullTag      = "tag:yaml.org,2002:null"
	BoolTag      = "tag:yaml.org,2002:bool"
	StrTag       = "tag:yaml.org,2002:str"
	IntTag       = "tag:yaml.org,2002:int"
	FloatTag     = "tag:yaml.org,2002:float"
	TimestampTag = "tag:yaml.org,2002:timestamp"
	SeqTag       = "tag:yaml.org,2002:seq"
	MapTag       = "tag:yaml.org,2002:map"

	DefaultScalarTag   = StrTag
	DefaultSequenceTag = SeqTag
	DefaultMappingTag  = MapTag
)

// MapEntry is one (key, value) pair of a Mapping node. Order is
// insertion order, per spec.md §3.1.
type MapEntry struct {
	Key   *Node
	Value *Node
}

// Node is a representation-graph node: a Scalar, Sequence or Mapping.
// Aliases do not get their own node type — an alias site simply holds a
// second *Node reference to an already-built node, which is how the graph
// becomes a possibly-cyclic DAG (spec.md §3.1).
type Node struct {
	Kind Kind
	Tag  string
	Mark Mark

	// Scalar
	Value string

	// Sequence
	Items []*Node

	// Mapping
	Entries []MapEntry

	// Anchor is the name this node was anchored under, if any. Purely
	// informational — alias resolution happens through the anchor table,
	// not by reading this field back.
	Anchor string
}

func newScalar(tag, value string, mark Mark) *Node {
	return &Node{Kind: ScalarNode, Tag: tag, Value: value, Mark: mark}
}

func newSequence(tag string, mark Mark) *Node {
	return &Node{Kind: SequenceNode, Tag: tag, Mark: mark}
}

func newMapping(tag string, mark Mark) *Node {
	return &Node{Kind: MappingNode, Tag: tag, Mark: mark}
}
