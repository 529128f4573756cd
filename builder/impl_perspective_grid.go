// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_perspective_grid.go - implementation of PerspectiveGrid(rows, rays).
//
// Geometry (normalized frame, y grows downward):
//   - horizon h = 1/Phi, near edge n = 0.97, Δy = n - h.
//   - Row k ∈ [0..rows]: y(k) = h + Δy·ε/(k+ε) with ε = p·rows/(1-p), p = 0.08,
//     so y(0) = n and y(k) → h. Rows closer than horizonGuard to the horizon
//     are skipped; the rest are sorted top to bottom.
//   - Row i is a full-width horizontal "h-i"; even rows run left to right,
//     odd rows right to left.
//   - Rays start below the frame at y = n + 0.12, spread across
//     [-0.06, 1.06], aim at the vanishing point (0.5, h), and stop on the
//     top-most row. Rays whose caps land within rayMinGap of an earlier
//     cap are dropped.
//
// Timing (in beats, i.e. seconds at 120 BPM doubled):
//   - Row i draws at 1 + i·stagger (stagger default 0.08) for 1.8 beats.
//   - Ray j draws at 0.68 + 0.84·min(a, 1-a), a = j/(rays-1), for 2 beats,
//     so the outer rays start last.
//   - Every clip uses cubic-bezier(0.7, 0, 0.3, 1).
//
// Contract:
//   - rows ≥ 1 and rays ≥ 1 (else ErrTooFewNodes).
//   - Node ids "h-i-l"/"h-i-r" and "r-j-b"/"r-j-t"; edge ids "h-i", "r-j".

package builder

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

const (
	gridNearY       = 0.97
	gridRowFraction = 0.08
	horizonGuard    = 4.0 / 700
	rayOverscanX    = 0.06
	rayOverscanY    = 0.12
	rayMinGap       = 6.0 / 1200

	rowStart   = 1.0
	rowStagger = 0.08
	rowLength  = 1.8
	rayStart   = 0.68
	raySlope   = 0.84
	rayLength  = 2.0
)

// GridEasing is the easing curve of PerspectiveGrid clips.
var GridEasing = core.EaseBezier(0.7, 0, 0.3, 1)

// Horizon returns the normalized y of the perspective horizon.
func Horizon() float64 { return 1 / Phi }

// GridRows returns the y of each visible row of a perspective grid with the
// given row count, sorted top to bottom.
func GridRows(rows int) []float64 {
	h := Horizon()
	dy := gridNearY - h
	eps := gridRowFraction * float64(rows) / (1 - gridRowFraction)

	ys := make([]float64, 0, rows+1)
	for k := 0; k <= rows; k++ {
		y := h + dy*eps/(float64(k)+eps)
		if y <= h+horizonGuard {
			continue
		}
		ys = append(ys, y)
	}
	sort.Float64s(ys)

	return ys
}

// PerspectiveGrid returns a Constructor for a synthwave ground plane.
func PerspectiveGrid(rows, rays int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodPerspectiveGrid, "rows", rows, MinGridRows); err != nil {
			return err
		}
		if err := validateMin(MethodPerspectiveGrid, "rays", rays, MinGridRays); err != nil {
			return err
		}

		ys := GridRows(rows) // y(0) is the near edge, so ys is never empty
		if err := addRows(d, cfg, ys); err != nil {
			return err
		}

		return addRays(d, cfg, rays, ys[0])
	}
}

func addRows(d *Draft, cfg builderConfig, ys []float64) error {
	step, length := cfg.staggerOr(rowStagger), cfg.lengthOr(rowLength)
	for i, y := range ys {
		tag := "h-" + strconv.Itoa(i)
		left, right := tag+"-l", tag+"-r"
		from, to := left, right
		if i%2 == 1 {
			from, to = right, left
		}
		if err := addSegmentNodes(MethodPerspectiveGrid, d, left, geom.C(0, y), right, geom.C(1, y)); err != nil {
			return err
		}
		if err := addEased(MethodPerspectiveGrid, d, cfg, tag, from, to, cfg.weightOr(WeightGrid), rowStart+float64(i)*step, length); err != nil {
			return err
		}
	}

	return nil
}

func addRays(d *Draft, cfg builderConfig, rays int, yTop float64) error {
	h := Horizon()
	yBottom := gridNearY + rayOverscanY
	t := (yTop - yBottom) / (h - yBottom)
	length := cfg.lengthOr(rayLength)

	var caps []float64
	for j := 0; j < rays; j++ {
		a := 0.5
		if rays > 1 {
			a = float64(j) / float64(rays-1)
		}
		x := -rayOverscanX + a*(1+2*rayOverscanX)
		xTop := x + (0.5-x)*t
		if nearAny(caps, xTop, rayMinGap) {
			continue
		}
		caps = append(caps, xTop)

		tag := "r-" + strconv.Itoa(j)
		bottom, top := tag+"-b", tag+"-t"
		if err := addSegmentNodes(MethodPerspectiveGrid, d, bottom, geom.C(x, yBottom), top, geom.C(xTop, yTop)); err != nil {
			return err
		}
		beat := rayStart + raySlope*math.Min(a, 1-a)
		if err := addEased(MethodPerspectiveGrid, d, cfg, tag, bottom, top, cfg.weightOr(WeightTracer), beat, length); err != nil {
			return err
		}
	}

	return nil
}

func addSegmentNodes(method string, d *Draft, a string, pa geom.Coordinate, b string, pb geom.Coordinate) error {
	if err := d.AddNode(a, pa, ""); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, a, err)
	}
	if err := d.AddNode(b, pb, ""); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, b, err)
	}

	return nil
}

// addEased adds a straight edge whose draw clip uses GridEasing.
func addEased(method string, d *Draft, cfg builderConfig, id, from, to string, weight *float64, beat, length float64) error {
	if err := d.AddLine(id, from, to, weight); err != nil {
		return fmt.Errorf("%s: AddEdge(%s): %w", method, id, err)
	}
	if cfg.timelines {
		c := drawClip(id, cfg.startBeat+beat, length)
		c.Easing = easeOf(GridEasing)
		d.AddClip(c)
	}

	return nil
}

func nearAny(xs []float64, x, gap float64) bool {
	for _, v := range xs {
		if math.Abs(v-x) < gap {
			return true
		}
	}

	return false
}
