// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Tag resolver: pattern-based auto-detection of implicit tags for plain
// scalars. The resolver is data, not grammar — spec.md §4.6/§9 explicitly
// calls for modeling it as an ordered list of (tag, pattern) rules rather
// than hard-coding the core schema into the grammar productions.

package core

import "regexp"

// Resolver maps a decoded plain-scalar value to an implicit tag. An ok of
// false means "no rule matched" — the caller falls back to !!str.
type Resolver interface {
	Resolve(value string) (tag string, ok bool)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(value string) (string, bool)

func (f ResolverFunc) Resolve(value string) (string, bool) { return f(value) }

// resolveRule is one entry of the data-driven rule list a Resolver is
// built from; the first matching rule wins.
type resolveRule struct {
	tag     string
	pattern *regexp.Regexp
}

// coreSchemaRules implements the YAML core schema: null, bool, int
// (decimal/octal/hex), float, timestamp, in that preference order. Rule
// patterns are anchored and case/style-tolerant the way the spec's
// examples are (e.g. ~, null, Null, NULL).
var coreSchemaRules = []resolveRule{
	{NullTag, regexp.MustCompile(`^(?:~|null|Null|NULL|)$`)},
	{BoolTag, regexp.MustCompile(`^(?:true|True|TRUE|false|False|FALSE)$`)},
	{IntTag, regexp.MustCompile(`^[-+]?0b[0-1_]+$`)},
	{IntTag, regexp.MustCompile(`^[-+]?0x[0-9a-fA-F_]+$`)},
	{IntTag, regexp.MustCompile(`^[-+]?0o?[0-7_]+$`)},
	{IntTag, regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9_]*)$`)},
	{FloatTag, regexp.MustCompile(`^[-+]?(?:\.inf|\.Inf|\.INF)$`)},
	{FloatTag, regexp.MustCompile(`^(?:\.nan|\.NaN|\.NAN)$`)},
	{FloatTag, regexp.MustCompile(`^[-+]?(?:[0-9][0-9_]*)?\.[0-9_]*(?:[eE][-+]?[0-9]+)?$`)},
	{FloatTag, regexp.MustCompile(`^[-+]?[0-9][0-9_]*[eE][-+]?[0-9]+$`)},
	{TimestampTag, regexp.MustCompile(`^[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]$`)},
	{TimestampTag, regexp.MustCompile(`^[0-9][0-9][0-9][0-9]-[0-9][0-9]?-[0-9][0-9]?` +
		`(?:[Tt]|[ \t]+)[0-9][0-9]?:[0-9][0-9]:[0-9][0-9](?:\.[0-9]*)?` +
		`(?:[ \t]*(?:Z|[-+][0-9][0-9]?(?::[0-9][0-9])?))?$`)},
}

// DefaultResolver implements Resolver with the YAML core schema.
type DefaultResolver struct{}

func (DefaultResolver) Resolve(value string) (string, bool) {
	for _, rule := range coreSchemaRules {
		if rule.pattern.MatchString(value) {
			return rule.tag, true
		}
	}
	return "", false
}
