// SPDX-License-Identifier: MIT
// Package: linenet/sampler
//
// width.go - stroke width from edge weight.

package sampler

// Stroke widths in pixels at scale 1.
const (
	GridWidth   = 2.0
	TracerWidth = 0.5
)

// TracerShare is the fraction of the tracer width added to every stroke.
const TracerShare = 0.2

// LineWidth returns base·scale·weight + tracer·scale·TracerShare.
// A zero weight counts as 1.
func LineWidth(weight, scale, base, tracer float64) float64 {
	if weight == 0 {
		weight = 1
	}

	return base*scale*weight + tracer*scale*TracerShare
}
