// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// helpers.go - layout and clip helpers shared by constructors.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

// Golden ratio; the perspective horizon sits at 1/Phi of the frame height.
var Phi = (1 + math.Sqrt(5)) / 2

// spread places index i of n evenly across [margin, 1-margin]. A single
// slot lands in the middle.
func spread(i, n int, margin float64) float64 {
	if n <= 1 {
		return 0.5
	}

	return margin + (1-2*margin)*float64(i)/float64(n-1)
}

// onCircle returns the position of slot i of n on a circle around (0.5, 0.5),
// starting at 12 o'clock and running clockwise in screen space.
func onCircle(i, n int, radius float64) geom.Coordinate {
	a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2

	return geom.C(0.5+radius*math.Cos(a), 0.5+radius*math.Sin(a))
}

// addNodes adds n nodes named by cfg.idFn at the positions returned by pos.
func addNodes(method string, d *Draft, cfg builderConfig, n int, pos func(i int) geom.Coordinate) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := d.AddNode(id, pos(i), ""); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addLine adds a straight edge from→to and, when timelines are on, its draw clip.
func addLine(method string, d *Draft, cfg builderConfig, from, to string, weight *float64, beat, length float64) error {
	id := edgeID(from, to)
	if err := d.AddLine(id, from, to, weight); err != nil {
		return fmt.Errorf("%s: AddEdge(%s): %w", method, id, err)
	}
	if cfg.timelines {
		d.AddClip(drawClip(id, cfg.startBeat+beat, length))
	}

	return nil
}

// easeOf returns a heap copy of e for ClipInput.Easing.
func easeOf(e core.Easing) *core.Easing { return &e }
