// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes).
//   - Nodes cfg.idFn(0..n-1) spread left to right at y = 0.5.
//   - Edges (i-1) -> i, drawn one after another: clip i-1 starts at
//     (i-1)·stagger (default 1 beat) and lasts clipLength (default 1 beat).
//
// Complexity: O(n) time and space.

package builder

import "github.com/katalvlaran/linenet/geom"

const (
	pathStagger = 1.0
	pathLength  = 1.0
)

// Path returns a Constructor that builds a horizontal chain of n nodes.
func Path(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		err := addNodes(MethodPath, d, cfg, n, func(i int) geom.Coordinate {
			return geom.C(spread(i, n, cfg.margin), 0.5)
		})
		if err != nil {
			return err
		}

		step, length := cfg.staggerOr(pathStagger), cfg.lengthOr(pathLength)
		for i := 1; i < n; i++ {
			beat := float64(i-1) * step
			if err = addLine(MethodPath, d, cfg, cfg.idFn(i-1), cfg.idFn(i), cfg.weight(), beat, length); err != nil {
				return err
			}
		}

		return nil
	}
}
