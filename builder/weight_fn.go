// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// weight_fn.go - edge stroke weight generators.
//
// A WeightFn receives the configured RNG, which may be nil; generators that
// need randomness fall back to DefaultEdgeWeight without one.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/linenet/core"
)

// DefaultEdgeWeight is the weight of an edge with no explicit weight.
const DefaultEdgeWeight = core.DefaultEdgeWeight

// WeightFn produces the stroke weight of the next edge.
type WeightFn func(rng *rand.Rand) float64

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value float64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %g", value))
	}

	return func(_ *rand.Rand) float64 { return value }
}

// UniformWeightFn draws from U[min,max]. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max float64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultEdgeWeight
		}
		if max == min {
			return min
		}
		return min + rng.Float64()*(max-min)
	}
}

// TieredWeightFn picks uniformly among the given weights, e.g. the tracer,
// grid, and horizon tiers. Panics when tiers is empty or holds a negative value.
func TieredWeightFn(tiers ...float64) WeightFn {
	if len(tiers) == 0 {
		panic("TieredWeightFn: need at least one tier")
	}
	for _, w := range tiers {
		if w < 0 {
			panic(fmt.Sprintf("TieredWeightFn: weights must be ≥ 0, got %g", w))
		}
	}
	ts := append([]float64(nil), tiers...)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return ts[0]
		}
		return ts[rng.Intn(len(ts))]
	}
}

// WithConstantWeight sets every emitted edge weight to w.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws edge weights from U[min,max].
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithTieredWeight draws edge weights from the given tiers.
func WithTieredWeight(tiers ...float64) BuilderOption {
	return WithWeightFn(TieredWeightFn(tiers...))
}
