// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   - idFn       = DefaultIDFn ("0","1","2",...)
//   - rng        = nil (no randomness unless seeded)
//   - weightFn   = nil (edges carry no explicit weight, which reads as 1)
//   - startBeat  = 0
//   - stagger    = unset (each constructor has its own cadence)
//   - clipLength = unset (each constructor has its own duration)
//   - timelines  = true (constructors emit draw clips)
//   - arrival    = pulse (Cascade node action)
//   - margin     = 0.1 (layout inset for Path and Grid)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/linenet/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn     IDFn
	rng      *rand.Rand
	weightFn WeightFn

	startBeat  float64
	stagger    float64
	hasStagger bool
	clipLength float64
	hasLength  bool
	timelines  bool
	arrival    core.Action
	margin     float64
}

const (
	defaultMargin  = 0.1
	defaultArrival = core.ActionPulse
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:      DefaultIDFn,
		timelines: true,
		arrival:   defaultArrival,
		margin:    defaultMargin,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// staggerOr returns the configured stagger or the constructor's own.
func (c builderConfig) staggerOr(def float64) float64 {
	if c.hasStagger {
		return c.stagger
	}

	return def
}

// lengthOr returns the configured clip length or the constructor's own.
func (c builderConfig) lengthOr(def float64) float64 {
	if c.hasLength {
		return c.clipLength
	}

	return def
}

// weight draws the next edge weight; nil means "use the default".
func (c builderConfig) weight() *float64 {
	if c.weightFn == nil {
		return nil
	}

	return core.Float(c.weightFn(c.rng))
}

// weightOr draws the next edge weight, or returns w when no WeightFn is set.
func (c builderConfig) weightOr(w float64) *float64 {
	if c.weightFn == nil {
		return core.Float(w)
	}

	return core.Float(c.weightFn(c.rng))
}
