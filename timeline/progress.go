// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// progress.go - per-clip evaluation rules.
//
// Rules (start = clip beat, L = clip span, end = start + L):
//   - DrawProgress: 0 before start, 1 from end on, linear in between.
//   - ClipActive:   start ≤ beat ≤ end, both ends inclusive.
//   - highlight:    contributes 1 once beat ≥ start and stays on (latch).
//   - pulse:        sin(π·phase) while start ≤ beat ≤ end, phase = (beat-start)/L.
//   - other actions contribute nothing to node intensity.

package timeline

import (
	"math"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

// MaxIntensity caps aggregated node intensity. Values above 1 leave
// renderers room for glow emphasis.
const MaxIntensity = 1.4

// DrawProgress returns how much of an edge the draw clip c has revealed at beat.
func DrawProgress(c core.Clip, beat float64) float64 {
	start, end := c.Beat(), c.End()
	switch {
	case beat < start:
		return 0
	case beat >= end:
		return 1
	default:
		return (beat - start) / c.Span()
	}
}

// ClipActive reports whether beat lies inside c's window, ends included.
func ClipActive(c core.Clip, beat float64) bool {
	return beat >= c.Beat() && beat <= c.End()
}

// ClipIntensity returns the contribution of a single clip to node intensity.
func ClipIntensity(c core.Clip, beat float64) float64 {
	switch c.Action() {
	case core.ActionHighlight:
		if beat >= c.Beat() {
			return 1
		}
	case core.ActionPulse:
		span := c.Span()
		if span > 0 && ClipActive(c, beat) {
			return math.Sin((beat - c.Beat()) / span * math.Pi)
		}
	}

	return 0
}

// NodeIntensity aggregates clips targeting one node: the maximum
// contribution, clamped to [0, MaxIntensity].
func NodeIntensity(clips []core.Clip, beat float64) float64 {
	intensity := 0.0
	for _, c := range clips {
		if v := ClipIntensity(c, beat); v > intensity {
			intensity = v
		}
	}

	return geom.Clamp(intensity, 0, MaxIntensity)
}

// AnyActive reports whether any clip's window contains beat.
func AnyActive(clips []core.Clip, beat float64) bool {
	for _, c := range clips {
		if ClipActive(c, beat) {
			return true
		}
	}

	return false
}
