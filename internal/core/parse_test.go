// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, text string) *Node {
	t.Helper()
	res, err := Parse(text, DefaultResolver{}, EngineConfig{NormalizeLineBreaks: true})
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	return res.Documents[0]
}

func TestFlowSequenceWithNestedFlowSequence(t *testing.T) {
	root := parseOne(t, "[a,[b,c],d]")
	require.Equal(t, SequenceNode, root.Kind)
	require.Len(t, root.Items, 3)

	assert.Equal(t, ScalarNode, root.Items[0].Kind)
	assert.Equal(t, "a", root.Items[0].Value)
	assert.Equal(t, StrTag, root.Items[0].Tag)

	nested := root.Items[1]
	require.Equal(t, SequenceNode, nested.Kind)
	require.Len(t, nested.Items, 2)
	assert.Equal(t, "b", nested.Items[0].Value)
	assert.Equal(t, "c", nested.Items[1].Value)

	assert.Equal(t, "d", root.Items[2].Value)
}

func TestAnchorRedefinitionResolvesToMostRecentBinding(t *testing.T) {
	root := parseOne(t, "a: &anchor foo\nc: *anchor\nb: &anchor bar\nd: *anchor\n")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 4)

	a, c := root.Entries[0].Value, root.Entries[1].Value
	b, d := root.Entries[2].Value, root.Entries[3].Value

	assert.Same(t, a, c)
	assert.Equal(t, "foo", a.Value)
	assert.Same(t, b, d)
	assert.Equal(t, "bar", b.Value)
	assert.NotSame(t, a, b)
}

func TestBlockLiteralWithStripChomping(t *testing.T) {
	root := parseOne(t, "|-\n  line1\n  line2\n")
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "line1\nline2", root.Value)
	assert.Equal(t, StrTag, root.Tag)
}

func TestFoldedScalarWithMoreIndentedLine(t *testing.T) {
	root := parseOne(t, ">\n  one\n  two\n    indented\n  three\n")
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "one two\n  indented\nthree\n", root.Value)
}

func TestDoubleQuotedEscapeAndLineFold(t *testing.T) {
	input := "\"folded to a space,\\n\\\n      to a line feed\""
	root := parseOne(t, input)
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "folded to a space,\nto a line feed", root.Value)
}

func TestTagDirectiveThenTypedScalar(t *testing.T) {
	input := "%TAG !e! tag:example.com,2024:\n---\n!e!point [1, 2]\n"
	root := parseOne(t, input)
	require.Equal(t, SequenceNode, root.Kind)
	assert.Equal(t, "tag:example.com,2024:point", root.Tag)
	require.Len(t, root.Items, 2)
	assert.Equal(t, IntTag, root.Items[0].Tag)
	assert.Equal(t, IntTag, root.Items[1].Tag)
}

func TestEmptyInputProducesNoDocuments(t *testing.T) {
	res, err := Parse("", DefaultResolver{}, EngineConfig{})
	require.NoError(t, err)
	assert.Empty(t, res.Documents)
	assert.Empty(t, res.Warnings)
}

func TestLoneDocumentMarkerProducesEmptyScalar(t *testing.T) {
	res, err := Parse("---\n", DefaultResolver{}, EngineConfig{})
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, ScalarNode, res.Documents[0].Kind)
	assert.Equal(t, "", res.Documents[0].Value)
}

func TestDocumentEndWithoutDocumentProducesNoDocuments(t *testing.T) {
	res, err := Parse("...\n", DefaultResolver{}, EngineConfig{})
	require.NoError(t, err)
	assert.Empty(t, res.Documents)
}

func TestImplicitKeyLengthBoundary(t *testing.T) {
	ok := strings.Repeat("a", 1024)
	root := parseOne(t, ok+": v\n")
	require.Equal(t, MappingNode, root.Kind)
	assert.Equal(t, ok, root.Entries[0].Key.Value)

	tooLong := strings.Repeat("a", 1025)
	_, err := Parse(tooLong+": v\n", DefaultResolver{}, EngineConfig{})
	require.Error(t, err)
}

func TestSurrogatePairEscapeProducesOneCodePoint(t *testing.T) {
	root := parseOne(t, "\"\\uD83D\\uDE00\"")
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "\U0001F600", root.Value)
}

func TestCyclicAliasSharesReference(t *testing.T) {
	root := parseOne(t, "&a [*a]")
	require.Equal(t, SequenceNode, root.Kind)
	require.Len(t, root.Items, 1)
	assert.Same(t, root, root.Items[0])
}

func TestDuplicateYAMLDirectiveIsFatal(t *testing.T) {
	_, err := Parse("%YAML 1.2\n%YAML 1.2\n---\nfoo\n", DefaultResolver{}, EngineConfig{})
	require.Error(t, err)
}

func TestNonCanonicalYAMLVersionWarns(t *testing.T) {
	res, err := Parse("%YAML 1.1\n---\nfoo\n", DefaultResolver{}, EngineConfig{})
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
}

func TestUnknownAnchorReferenceIsFatal(t *testing.T) {
	_, err := Parse("*missing\n", DefaultResolver{}, EngineConfig{})
	require.Error(t, err)
}

func TestBlockMappingAndSequenceNesting(t *testing.T) {
	input := "items:\n  - name: first\n    value: 1\n  - name: second\n    value: 2\n"
	root := parseOne(t, input)
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	items := root.Entries[0].Value
	require.Equal(t, SequenceNode, items.Kind)
	require.Len(t, items.Items, 2)
	first := items.Items[0]
	require.Equal(t, MappingNode, first.Kind)
	assert.Equal(t, "name", first.Entries[0].Key.Value)
	assert.Equal(t, "first", first.Entries[0].Value.Value)
	assert.Equal(t, IntTag, first.Entries[1].Value.Tag)
}

func TestPlainScalarColonDeviation(t *testing.T) {
	root := parseOne(t, "a:b: c\n")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	assert.Equal(t, "a:b", root.Entries[0].Key.Value)
	assert.Equal(t, "c", root.Entries[0].Value.Value)
}

func TestFlowMappingCompactSequenceEntry(t *testing.T) {
	root := parseOne(t, "[a: 1, b: 2]")
	require.Equal(t, SequenceNode, root.Kind)
	require.Len(t, root.Items, 2)
	for _, item := range root.Items {
		assert.Equal(t, MappingNode, item.Kind)
		require.Len(t, item.Entries, 1)
	}
}

func TestExplicitBlockMappingKey(t *testing.T) {
	root := parseOne(t, "? explicit key\n: explicit value\n")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	assert.Equal(t, "explicit key", root.Entries[0].Key.Value)
	assert.Equal(t, "explicit value", root.Entries[0].Value.Value)
}

func TestExplicitBlockMappingKeyWithNoValue(t *testing.T) {
	root := parseOne(t, "? lonely key\nnext: value\n")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 2)
	assert.Equal(t, "lonely key", root.Entries[0].Key.Value)
	assert.Equal(t, "", root.Entries[0].Value.Value)
	assert.Equal(t, "next", root.Entries[1].Key.Value)
}

func TestBlockMapEntryStartingWithQuestionMarkIsPlainScalarKey(t *testing.T) {
	root := parseOne(t, "?foo: bar\n")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	assert.Equal(t, "?foo", root.Entries[0].Key.Value)
	assert.Equal(t, "bar", root.Entries[0].Value.Value)
}

func TestCompactNestedSequence(t *testing.T) {
	root := parseOne(t, "- - a\n  - b\n- c\n")
	require.Equal(t, SequenceNode, root.Kind)
	require.Len(t, root.Items, 2)
	nested := root.Items[0]
	require.Equal(t, SequenceNode, nested.Kind)
	require.Len(t, nested.Items, 2)
	assert.Equal(t, "a", nested.Items[0].Value)
	assert.Equal(t, "b", nested.Items[1].Value)
	assert.Equal(t, "c", root.Items[1].Value)
}

func TestCompactNestedMapping(t *testing.T) {
	root := parseOne(t, "outer: inner: value\n       more: 2\n")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	assert.Equal(t, "outer", root.Entries[0].Key.Value)
	inner := root.Entries[0].Value
	require.Equal(t, MappingNode, inner.Kind)
	require.Len(t, inner.Entries, 2)
	assert.Equal(t, "inner", inner.Entries[0].Key.Value)
	assert.Equal(t, "value", inner.Entries[0].Value.Value)
	assert.Equal(t, "more", inner.Entries[1].Key.Value)
	assert.Equal(t, IntTag, inner.Entries[1].Value.Tag)
}

func TestFlowExplicitPair(t *testing.T) {
	root := parseOne(t, "{? k : v}")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	assert.Equal(t, "k", root.Entries[0].Key.Value)
	assert.Equal(t, "v", root.Entries[0].Value.Value)
}

func TestFlowExplicitPairWithNoValue(t *testing.T) {
	root := parseOne(t, "{? k}")
	require.Equal(t, MappingNode, root.Kind)
	require.Len(t, root.Entries, 1)
	assert.Equal(t, "k", root.Entries[0].Key.Value)
	assert.Equal(t, "", root.Entries[0].Value.Value)
}

func TestFlowSequenceBarePlainScalarsAreNotPairs(t *testing.T) {
	root := parseOne(t, "[a, b, c]")
	require.Equal(t, SequenceNode, root.Kind)
	require.Len(t, root.Items, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, ScalarNode, root.Items[i].Kind)
		assert.Equal(t, want, root.Items[i].Value)
	}
}

func TestBOMInsideFlowCollectionIsFatal(t *testing.T) {
	_, err := Parse("[a, \ufeffb]\n", DefaultResolver{}, EngineConfig{})
	require.Error(t, err)
}

func TestBOMAtStreamPrefixIsAllowed(t *testing.T) {
	root := parseOne(t, "\ufeff---\nfoo\n")
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "foo", root.Value)
}

func TestStreamBeginningWithIndicatorCharacterIsFatal(t *testing.T) {
	_, err := Parse(",foo\n", DefaultResolver{}, EngineConfig{})
	require.Error(t, err)
}

func TestMultiDocumentStreamSeparatedByDocumentEnd(t *testing.T) {
	res, err := Parse("first\n...\nsecond\n...\nthird\n", DefaultResolver{}, EngineConfig{})
	require.NoError(t, err)
	require.Len(t, res.Documents, 3)
	assert.Equal(t, "first", res.Documents[0].Value)
	assert.Equal(t, "second", res.Documents[1].Value)
	assert.Equal(t, "third", res.Documents[2].Value)
}

func TestFlowCollectionMultilineSeparationInFlowOutContext(t *testing.T) {
	root := parseOne(t, "key:\n  [a,\n   b,\n   c]\n")
	require.Equal(t, MappingNode, root.Kind)
	value := root.Entries[0].Value
	require.Equal(t, SequenceNode, value.Kind)
	require.Len(t, value.Items, 3)
}

func TestPlainScalarWithFlowIndicatorInBlockOutContext(t *testing.T) {
	root := parseOne(t, "a,b,c\n")
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "a,b,c", root.Value)
}

func TestTagDirectiveMayOverrideDefaultSecondaryHandle(t *testing.T) {
	input := "%TAG !! tag:example.com,2024:\n---\n!!point [1, 2]\n"
	root := parseOne(t, input)
	require.Equal(t, SequenceNode, root.Kind)
	assert.Equal(t, "tag:example.com,2024:point", root.Tag)
}

func TestDocumentMayBeginWithQuotedScalar(t *testing.T) {
	root := parseOne(t, `"quoted"`)
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "quoted", root.Value)
}

func TestDocumentMayBeginWithFlowSequence(t *testing.T) {
	root := parseOne(t, "[a, b]\n")
	require.Equal(t, SequenceNode, root.Kind)
	require.Len(t, root.Items, 2)
}

func TestDocumentMayBeginWithBlockLiteral(t *testing.T) {
	root := parseOne(t, "|\n  content\n")
	require.Equal(t, ScalarNode, root.Kind)
	assert.Equal(t, "content\n", root.Value)
}

func TestDocumentMayBeginWithYAMLDirective(t *testing.T) {
	res, err := Parse("%YAML 1.2\n---\nfoo\n", DefaultResolver{}, EngineConfig{})
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, "foo", res.Documents[0].Value)
}

func TestBlankLineMoreIndentedThanBlockScalarContentIsFatal(t *testing.T) {
	_, err := Parse(">\n      \n  content\n", DefaultResolver{}, EngineConfig{})
	require.Error(t, err)
}
