// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// options.go - functional options for Define.
//
// Contract:
//   - Options are applied in order; later ones override earlier ones.
//   - Option constructors panic on meaningless input (nil logger); Define
//     itself never panics.

package core

import "go.uber.org/zap"

// Option customizes a Define call.
type Option func(*defineConfig)

// defineConfig is the resolved option set of one Define call.
type defineConfig struct {
	strict bool
	logger *zap.Logger
}

// newDefineConfig resolves opts over the defaults: strict mode, global zap logger.
func newDefineConfig(opts ...Option) defineConfig {
	cfg := defineConfig{strict: true, logger: zap.L()}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithStrict selects the failure policy. true (default) rejects any issue
// with a *DefinitionError; false logs a warning and keeps going.
func WithStrict(strict bool) Option {
	return func(c *defineConfig) { c.strict = strict }
}

// Lenient is shorthand for WithStrict(false).
func Lenient() Option { return WithStrict(false) }

// WithLogger sets the logger used for lenient-mode warnings.
// Panics on nil; pass zap.NewNop() to silence warnings.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("core: WithLogger(nil)")
	}

	return func(c *defineConfig) { c.logger = l }
}
