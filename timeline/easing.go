// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// easing.go - easing curves for draw progress.
//
// Keywords follow the CSS timing functions. Unknown keywords and the zero
// Easing are linear. Bezier x control values are clamped to [0,1] so the
// curve stays a function of time.
//
// Complexity: O(1); the solver runs at most 8 Newton steps, then bisects
// for at most 32 steps.

package timeline

import (
	"math"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

var keywordCurves = map[string][4]float64{
	"linear":      {0, 0, 1, 1},
	"ease":        {0.25, 0.1, 0.25, 1},
	"ease-in":     {0.42, 0, 1, 1},
	"ease-out":    {0, 0, 0.58, 1},
	"ease-in-out": {0.42, 0, 0.58, 1},
}

const (
	newtonSteps     = 8
	bisectSteps     = 32
	solverPrecision = 1e-7
)

// Ease maps linear progress t in [0,1] through e.
func Ease(e core.Easing, t float64) float64 {
	t = geom.Clamp(t, 0, 1)
	p, ok := curveOf(e)
	if !ok {
		return t
	}

	return cubicBezierAt(p, t)
}

func curveOf(e core.Easing) ([4]float64, bool) {
	if p, ok := e.Bezier(); ok {
		p[0] = geom.Clamp(p[0], 0, 1)
		p[2] = geom.Clamp(p[2], 0, 1)
		return p, true
	}
	if kw, ok := e.Keyword(); ok {
		if p, ok := keywordCurves[kw]; ok && kw != "linear" {
			return p, true
		}
	}

	return [4]float64{}, false
}

// cubicBezierAt solves x(s) = t for s and returns y(s), with endpoints (0,0) and (1,1).
func cubicBezierAt(p [4]float64, t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	x1, y1, x2, y2 := p[0], p[1], p[2], p[3]
	bx := func(s float64) float64 { return curve1D(x1, x2, s) }
	by := func(s float64) float64 { return curve1D(y1, y2, s) }

	s := t
	for i := 0; i < newtonSteps; i++ {
		dx := bx(s) - t
		if math.Abs(dx) < solverPrecision {
			return by(s)
		}
		d := derivative1D(x1, x2, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= dx / d
	}

	lo, hi := 0.0, 1.0
	s = t
	for i := 0; i < bisectSteps; i++ {
		x := bx(s)
		if math.Abs(x-t) < solverPrecision {
			break
		}
		if x < t {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}

	return by(s)
}

// curve1D evaluates one component of a cubic bezier from 0 to 1 with inner controls a, b.
func curve1D(a, b, s float64) float64 {
	return geom.CubicBezier1(0, a, b, 1, s)
}

func derivative1D(a, b, s float64) float64 {
	u := 1 - s
	return 3*u*u*a + 6*u*s*(b-a) + 3*s*s*(1-b)
}
