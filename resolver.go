// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlsharp

import "github.com/mlaily/yamlsharp/internal/core"

type (
	// Resolver maps a decoded plain-scalar value to an implicit tag.
	// See internal/core.Resolver.
	Resolver = core.Resolver
)

// ResolverFunc adapts a function to Resolver.
type ResolverFunc = core.ResolverFunc

// DefaultResolver implements Resolver with the YAML core schema: null,
// bool, int (decimal/octal/hex/binary), float, timestamp.
type DefaultResolver = core.DefaultResolver
