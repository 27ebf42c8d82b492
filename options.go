// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamlsharp

import (
	"github.com/pkg/errors"

	"github.com/mlaily/yamlsharp/internal/core"
)

// config is the mutable value Options apply to before Parse hands it to
// the engine as an core.EngineConfig.
type config struct {
	normalizeLineBreaks bool
	lineBreakForInput   string
	resolver            core.Resolver
}

func defaultConfig() *config {
	return &config{
		normalizeLineBreaks: true,
		lineBreakForInput:   "\n",
		resolver:            core.DefaultResolver{},
	}
}

// Option configures a Parse call.
type Option func(*config) error

// WithNormalizeLineBreaks controls whether unescaped line breaks decoded
// into scalars are replaced by the LineBreakForInput sequence. Defaults to
// true.
func WithNormalizeLineBreaks(normalize bool) Option {
	return func(c *config) error {
		c.normalizeLineBreaks = normalize
		return nil
	}
}

// WithLineBreakForInput sets the target line-break sequence used when
// WithNormalizeLineBreaks is enabled. Only "\n", "\r" and "\r\n" are
// accepted.
func WithLineBreakForInput(breakSeq string) Option {
	return func(c *config) error {
		switch breakSeq {
		case "\n", "\r", "\r\n":
			c.lineBreakForInput = breakSeq
			return nil
		default:
			return errors.Errorf("yamlsharp: unsupported line break sequence %q", breakSeq)
		}
	}
}

// WithTagResolver sets the plain-scalar auto-detection ruleset. A nil
// resolver is rejected.
func WithTagResolver(resolver Resolver) Option {
	return func(c *config) error {
		if resolver == nil {
			return errors.New("yamlsharp: tag resolver must not be nil")
		}
		c.resolver = resolver
		return nil
	}
}

func applyOptions(opts []Option) (*config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, errors.Wrap(err, "yamlsharp: invalid option")
		}
	}
	return c, nil
}
