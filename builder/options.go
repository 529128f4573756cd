// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors validate and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/linenet/core"
)

// BuilderOption customizes constructors by mutating a builderConfig before
// construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the node ID generator used by index-based constructors.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG for stochastic constructors. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-edge stroke weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) { c.weightFn = fn }
}

// WithStartBeat shifts every emitted clip by beat. Panics on non-finite input.
func WithStartBeat(beat float64) BuilderOption {
	mustFinite("WithStartBeat", beat)

	return func(c *builderConfig) { c.startBeat = beat }
}

// WithStagger sets the beat gap between successive draw clips.
// Panics if beats is negative or non-finite.
func WithStagger(beats float64) BuilderOption {
	mustFinite("WithStagger", beats)
	if beats < 0 {
		panic(fmt.Sprintf("builder: WithStagger(%g): must be ≥ 0", beats))
	}

	return func(c *builderConfig) { c.stagger, c.hasStagger = beats, true }
}

// WithClipLength sets the length of emitted clips.
// Panics if beats is not positive and finite.
func WithClipLength(beats float64) BuilderOption {
	mustFinite("WithClipLength", beats)
	if beats <= 0 {
		panic(fmt.Sprintf("builder: WithClipLength(%g): must be > 0", beats))
	}

	return func(c *builderConfig) { c.clipLength, c.hasLength = beats, true }
}

// WithTimelines turns clip emission on or off.
func WithTimelines(on bool) BuilderOption {
	return func(c *builderConfig) { c.timelines = on }
}

// WithArrival sets the node action Cascade emits when a node is reached.
// Panics on an empty action.
func WithArrival(action core.Action) BuilderOption {
	if action == "" {
		panic("builder: WithArrival(\"\")")
	}

	return func(c *builderConfig) { c.arrival = action }
}

// WithMargin sets the layout inset used by Path and Grid. Panics outside [0, 0.5).
func WithMargin(m float64) BuilderOption {
	if !(m >= 0 && m < 0.5) {
		panic(fmt.Sprintf("builder: WithMargin(%g): must be in [0, 0.5)", m))
	}

	return func(c *builderConfig) { c.margin = m }
}

func mustFinite(name string, v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("builder: %s(%g): must be finite", name, v))
	}
}
