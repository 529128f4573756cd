// SPDX-License-Identifier: MIT
// Package: linenet/sampler
//
// partial.go - polyline truncation for progressive drawing.

package sampler

import (
	"math"

	"github.com/katalvlaran/linenet/geom"
)

// Point is any point type that can interpolate toward another of its kind;
// both geom.Coordinate and geom.Vec3 qualify.
type Point[P any] interface {
	Lerp(o P, t float64) P
}

// PartialPoints returns the prefix of points covered by progress, clamped to
// [0,1], ending in an interpolated point. The result never aliases points.
//
//   - empty points: empty result
//   - progress ≤ 0: two copies of points[0]
//   - progress ≥ 1: a copy of points
//   - otherwise: points[0..k] plus lerp(points[k], points[k+1], f) where
//     k+f = progress·(len-1)
func PartialPoints[P Point[P]](points []P, progress float64) []P {
	if len(points) == 0 {
		return []P{}
	}
	p := geom.Clamp(progress, 0, 1)
	if p <= 0 {
		return []P{points[0], points[0]}
	}
	if p >= 1 {
		return append([]P(nil), points...)
	}
	if len(points) == 1 {
		return []P{points[0], points[0]}
	}

	scaled := p * float64(len(points)-1)
	k := int(math.Floor(scaled))
	frac := scaled - float64(k)
	out := make([]P, 0, k+2)
	out = append(out, points[:k+1]...)

	return append(out, points[k].Lerp(points[k+1], frac))
}
