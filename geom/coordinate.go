// SPDX-License-Identifier: MIT
// Package: linenet/geom
//
// coordinate.go - normalized 2D coordinate and interpolation helpers.

package geom

import "math"

// Coordinate is a point in normalized canvas space, stored as [x, y].
// The array form marshals as a two-element list in YAML and JSON.
type Coordinate [2]float64

// C is shorthand for Coordinate{x, y}.
func C(x, y float64) Coordinate { return Coordinate{x, y} }

// X returns the horizontal component.
func (c Coordinate) X() float64 { return c[0] }

// Y returns the vertical component.
func (c Coordinate) Y() float64 { return c[1] }

// IsFinite reports whether both components are neither NaN nor ±Inf.
func (c Coordinate) IsFinite() bool {
	return IsFinite(c[0]) && IsFinite(c[1])
}

// Lerp returns c + (o-c)*t. t is not clamped.
func (c Coordinate) Lerp(o Coordinate, t float64) Coordinate {
	return Coordinate{
		c[0] + (o[0]-c[0])*t,
		c[1] + (o[1]-c[1])*t,
	}
}

// Distance returns the Euclidean distance between c and o.
func (c Coordinate) Distance(o Coordinate) float64 {
	return math.Hypot(o[0]-c[0], o[1]-c[1])
}

// IsFinite reports whether v is neither NaN nor ±Inf.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Clamp limits v to [lo, hi]. NaN is mapped to lo.
func Clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
