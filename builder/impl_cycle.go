// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewNodes).
//   - Nodes on a circle of radius 0.35 around the frame center, first node on top.
//   - Edges i -> (i+1) mod n; the ring is drawn in one sweep, one edge per
//     stagger (default 0.5 beat).
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/linenet/geom"

const (
	cycleRadius  = 0.35
	cycleStagger = 0.5
	cycleLength  = 1.0
)

// Cycle returns a Constructor that builds a closed ring of n nodes.
func Cycle(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		err := addNodes(MethodCycle, d, cfg, n, func(i int) geom.Coordinate {
			return onCircle(i, n, cycleRadius)
		})
		if err != nil {
			return err
		}

		step, length := cfg.staggerOr(cycleStagger), cfg.lengthOr(cycleLength)
		for i := 0; i < n; i++ {
			from, to := cfg.idFn(i), cfg.idFn((i+1)%n)
			if err = addLine(MethodCycle, d, cfg, from, to, cfg.weight(), float64(i)*step, length); err != nil {
				return err
			}
		}

		return nil
	}
}
