// SPDX-License-Identifier: MIT
// Package: linenet/geom
//
// bezier.go - closed-form evaluation of quadratic and cubic Bézier curves.
//
// Complexity: O(1) per evaluation, no allocations.

package geom

// QuadraticBezier evaluates B(t) = (1-t)²·a + 2(1-t)t·b + t²·c.
// a is the start point, b the control point, c the end point.
func QuadraticBezier(a, b, c Coordinate, t float64) Coordinate {
	u := 1 - t
	uu, ut2, tt := u*u, 2*u*t, t*t

	return Coordinate{
		uu*a[0] + ut2*b[0] + tt*c[0],
		uu*a[1] + ut2*b[1] + tt*c[1],
	}
}

// CubicBezier evaluates the cubic Bézier with start a, controls b and c,
// and end d at parameter t.
func CubicBezier(a, b, c, d Coordinate, t float64) Coordinate {
	u := 1 - t
	tt, uu := t*t, u*u
	uuu, ttt := uu*u, tt*t
	k1, k2 := 3*uu*t, 3*u*tt

	return Coordinate{
		uuu*a[0] + k1*b[0] + k2*c[0] + ttt*d[0],
		uuu*a[1] + k1*b[1] + k2*c[1] + ttt*d[1],
	}
}

// CubicBezier1 is CubicBezier for a single scalar component.
func CubicBezier1(a, b, c, d, t float64) float64 {
	u := 1 - t

	return u*u*u*a + 3*u*u*t*b + 3*u*t*t*c + t*t*t*d
}
