// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_skyline.go - implementation of Skyline(layers, segments) constructor.
//
// Each layer is one edge "sky-l" from "sky-l-w" (0, base) to "sky-l-e"
// (1, base), traced as a stepped city silhouette of straight segments.
//
// Ridge model for sample i ∈ [0..segments], t = i/segments:
//   - ridge    = sin(π·min(t, 1-t))^0.78            (bell, peaks mid-frame)
//   - falloff  = 1 - l/max(1, layers-0.2)            (back layers are lower)
//   - envelope = 2 + 2.8·falloff·(ridge+0.32)
//   - noise    = frac(sin(i·3.17 + l·11.7 + jitter)·43758.5453)
//   - lift     = envelope·(1.4 if noise > 0.74 else 0.68)·easeInOutCubic(noise)
//     plus a small detail term, capped at 0.96 of the band.
//
// The first and last samples sit on the base line. Between samples the path
// steps: half-way across at the old height, up or down, then across.
//
// Jitter is 0 without an RNG, else uniform in [-0.3, 0.3] per scene.
//
// Contract:
//   - layers ≥ 1 and segments ≥ 2 (else ErrTooFewNodes).
//   - Layer l draws at 2.9 + l·stagger (default 0.26) for 2.8 beats.

package builder

import (
	"fmt"
	"math"
	"strconv"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

const (
	// SkylineBand is the normalized height available to the silhouette.
	SkylineBand = 0.18

	// SkylineSegments is the sample count of the reference skyline.
	SkylineSegments = 52

	skylineBaseHeight = 2.0
	skylineVariance   = 2.8
	skylineUnit       = 22.0 / 160
	skylineDetail     = 16.0 / 160
	skylineMaxLift    = 0.96
	skylineJitter     = 0.6

	skylineStart   = 2.9
	skylineStagger = 0.26
	skylineLength  = 2.8
)

// SkylineBase returns the normalized y of the skyline base line.
func SkylineBase() float64 { return Horizon() }

// SkylinePoints returns the stepped outline of layer l out of layers.
// The result has 3·segments+1 points and starts at (0, base).
func SkylinePoints(l, layers, segments int, jitter float64) []geom.Coordinate {
	base := SkylineBase()
	falloff := 1 - float64(l)/math.Max(1, float64(layers)-0.2)

	pts := make([]geom.Coordinate, 0, 3*segments+1)
	lastY := base
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := t
		ridge := math.Pow(math.Sin(math.Pi*math.Min(t, 1-t)), 0.78)
		envelope := skylineBaseHeight + skylineVariance*falloff*(ridge+0.32)

		noise := pseudoRandom(float64(i)*3.17 + float64(l)*11.7 + jitter)
		landmark := 0.68
		if noise > 0.74 {
			landmark = 1.4
		}
		units := envelope * landmark * easeInOutCubic(noise)
		detail := (pseudoRandom(float64(i)*5.91+float64(l)*7.73+jitter) - 0.5) * skylineDetail * ridge

		y := base - SkylineBand*math.Min(units*skylineUnit+detail, skylineMaxLift)
		if y > base || i == 0 || i == segments {
			y = base
		}

		if i == 0 {
			pts = append(pts, geom.C(x, y))
		} else {
			midX := (pts[len(pts)-1].X() + x) / 2
			pts = append(pts, geom.C(midX, lastY), geom.C(midX, y), geom.C(x, y))
		}
		lastY = y
	}

	return pts
}

// Skyline returns a Constructor that adds layered skyline silhouettes.
func Skyline(layers, segments int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if err := validateMin(MethodSkyline, "layers", layers, MinSkyline); err != nil {
			return err
		}
		if err := validateMin(MethodSkyline, "segments", segments, MinSkylineSeg); err != nil {
			return err
		}

		jitter := 0.0
		if cfg.rng != nil {
			jitter = (cfg.rng.Float64() - 0.5) * skylineJitter
		}
		step, length := cfg.staggerOr(skylineStagger), cfg.lengthOr(skylineLength)

		for l := 0; l < layers; l++ {
			pts := SkylinePoints(l, layers, segments, jitter)
			id := "sky-" + strconv.Itoa(l)
			west, east := id+"-w", id+"-e"
			if err := addSegmentNodes(MethodSkyline, d, west, pts[0], east, pts[len(pts)-1]); err != nil {
				return err
			}

			segs := make([]core.SegmentInput, 0, len(pts)-1)
			for _, p := range pts[1:] {
				segs = append(segs, line(p))
			}
			if err := d.AddEdge(id, west, east, segs, cfg.weightOr(WeightGrid)); err != nil {
				return fmt.Errorf("%s: AddEdge(%s): %w", MethodSkyline, id, err)
			}
			if cfg.timelines {
				d.AddClip(drawClip(id, cfg.startBeat+skylineStart+float64(l)*step, length))
			}
		}

		return nil
	}
}

// pseudoRandom is a stateless hash of s into [0, 1).
func pseudoRandom(s float64) float64 {
	x := math.Sin(s) * 43758.5453
	return x - math.Floor(x)
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := 2*t - 2

	return 0.5*f*f*f + 1
}
