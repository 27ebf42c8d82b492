// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlsharp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlaily/yamlsharp"
)

func TestParseReturnsOneDocumentPerStreamEntry(t *testing.T) {
	res, err := yamlsharp.Parse("first\n---\nsecond\n")
	require.NoError(t, err)
	require.Len(t, res.Documents, 2)
	assert.Equal(t, "first", res.Documents[0].Value)
	assert.Equal(t, "second", res.Documents[1].Value)
}

func TestParseResolvesCoreSchemaTags(t *testing.T) {
	res, err := yamlsharp.Parse("a: 1\nb: true\nc: 3.5\nd: null\ne: hello\n")
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	m := res.Documents[0]
	require.Equal(t, yamlsharp.MappingNode, m.Kind)
	require.Len(t, m.Entries, 5)

	assert.Equal(t, yamlsharp.IntTag, m.Entries[0].Value.Tag)
	assert.Equal(t, yamlsharp.BoolTag, m.Entries[1].Value.Tag)
	assert.Equal(t, yamlsharp.FloatTag, m.Entries[2].Value.Tag)
	assert.Equal(t, yamlsharp.NullTag, m.Entries[3].Value.Tag)
	assert.Equal(t, yamlsharp.StrTag, m.Entries[4].Value.Tag)
}

func TestParseFatalErrorReturnsZeroResult(t *testing.T) {
	res, err := yamlsharp.Parse("[a, b\n")
	require.Error(t, err)
	assert.Equal(t, yamlsharp.Result{}, res)
}

func TestParseCollectsWarnings(t *testing.T) {
	res, err := yamlsharp.Parse("%YAML 1.1\n---\nfoo\n")
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
}

func TestWithLineBreakForInputRejectsUnsupportedSequence(t *testing.T) {
	_, err := yamlsharp.Parse("a\n", yamlsharp.WithLineBreakForInput("\t"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported line break sequence")
}

func TestWithLineBreakForInputNormalizesScalarBreaks(t *testing.T) {
	res, err := yamlsharp.Parse(
		"|\n  a\n  b\n",
		yamlsharp.WithNormalizeLineBreaks(true),
		yamlsharp.WithLineBreakForInput("\r\n"),
	)
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, "a\r\nb\r\n", res.Documents[0].Value)
}

func TestWithTagResolverRejectsNil(t *testing.T) {
	_, err := yamlsharp.Parse("a\n", yamlsharp.WithTagResolver(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag resolver must not be nil")
}

func TestWithTagResolverOverridesScalarResolution(t *testing.T) {
	always := yamlsharp.ResolverFunc(func(string) (string, bool) { return yamlsharp.StrTag, true })
	res, err := yamlsharp.Parse("a: 1\n", yamlsharp.WithTagResolver(always))
	require.NoError(t, err)
	require.Len(t, res.Documents, 1)
	assert.Equal(t, yamlsharp.StrTag, res.Documents[0].Entries[0].Value.Tag)
}
