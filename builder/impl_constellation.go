// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_constellation.go - implementation of Constellation(n, p) constructor.
//
// Model: n scattered nodes; each unordered pair {i,j}, i<j, is linked i -> j
// independently with probability p (Erdős–Rényi).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewNodes).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil (else ErrNeedRandSource), even for p ∈ {0,1},
//     because positions are random too.
//   - Positions are drawn before any edge trial: x then y per node, i ascending.
//   - Draw clips follow edge order, stagger default 0.25 beat.
//
// Complexity: O(n²) Bernoulli trials.
//
// Determinism: fixed seed and options give the same scene.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linenet/geom"
)

const (
	constellationStagger = 0.25
	constellationLength  = 1.0
	minConstellation     = 1
)

// Constellation returns a Constructor that scatters n nodes and links pairs with probability p.
func Constellation(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodConstellation, "n", n, minConstellation); err != nil {
			return err
		}
		if err := validateProbability(MethodConstellation, p); err != nil {
			return err
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodConstellation, ErrNeedRandSource)
		}

		span := 1 - 2*cfg.margin
		pos := make([]geom.Coordinate, n)
		for i := range pos {
			x := cfg.margin + span*cfg.rng.Float64()
			y := cfg.margin + span*cfg.rng.Float64()
			pos[i] = geom.C(x, y)
		}
		if err := addNodes(MethodConstellation, d, cfg, n, func(i int) geom.Coordinate { return pos[i] }); err != nil {
			return err
		}

		step, length := cfg.staggerOr(constellationStagger), cfg.lengthOr(constellationLength)
		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := addLine(MethodConstellation, d, cfg, cfg.idFn(i), cfg.idFn(j), cfg.weight(), float64(k)*step, length); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
