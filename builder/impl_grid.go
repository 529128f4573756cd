// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewNodes).
//   - Node ids "r,c" (0-based), laid out row-major inside the margin.
//   - Each node links right (r,c)->(r,c+1) and down (r,c)->(r+1,c).
//   - Draw clips run as a diagonal wave: an edge leaving (r,c) starts at
//     (r+c)·stagger (default 0.5 beat).
//
// Complexity: O(rows·cols).

package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linenet/geom"
)

const (
	gridStagger = 0.5
	gridLength  = 1.0
)

// GridID returns the id Grid assigns to the node at row r, column c.
func GridID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := GridID(r, c)
				pos := geom.C(spread(c, cols, cfg.margin), spread(r, rows, cfg.margin))
				if err := d.AddNode(id, pos, ""); err != nil {
					return fmt.Errorf("%s: AddNode(%s): %w", MethodGrid, id, err)
				}
			}
		}

		step, length := cfg.staggerOr(gridStagger), cfg.lengthOr(gridLength)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				beat := float64(r+c) * step
				if c+1 < cols {
					if err := addLine(MethodGrid, d, cfg, GridID(r, c), GridID(r, c+1), cfg.weight(), beat, length); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addLine(MethodGrid, d, cfg, GridID(r, c), GridID(r+1, c), cfg.weight(), beat, length); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
