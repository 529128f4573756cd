// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewNodes): one hub plus n-1 leaves.
//   - Hub id is CenterNodeID at (0.5, 0.5); leaves use cfg.idFn(0..n-2) on a
//     circle of radius 0.4.
//   - Spokes Center -> leaf, staggered by 0.25 beat so they fan out clockwise.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linenet/geom"
)

const (
	starRadius  = 0.4
	starStagger = 0.25
	starLength  = 1.0
)

// Star returns a Constructor that builds a hub with n-1 spokes.
func Star(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := d.AddNode(CenterNodeID, geom.C(0.5, 0.5), ""); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", MethodStar, CenterNodeID, err)
		}
		leaves := n - 1
		err := addNodes(MethodStar, d, cfg, leaves, func(i int) geom.Coordinate {
			return onCircle(i, leaves, starRadius)
		})
		if err != nil {
			return err
		}

		step, length := cfg.staggerOr(starStagger), cfg.lengthOr(starLength)
		for i := 0; i < leaves; i++ {
			if err = addLine(MethodStar, d, cfg, CenterNodeID, cfg.idFn(i), cfg.weight(), float64(i)*step, length); err != nil {
				return err
			}
		}

		return nil
	}
}
