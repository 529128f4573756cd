// SPDX-License-Identifier: MIT
// Package: linenet/geom
//
// vec3.go - renderer-space point and the viewport projection that produces it.

package geom

// Vec3 is a point in renderer space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Lerp returns v + (o-v)*t. t is not clamped.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		X: v.X + (o.X-v.X)*t,
		Y: v.Y + (o.Y-v.Y)*t,
		Z: v.Z + (o.Z-v.Z)*t,
	}
}

// Viewport maps normalized coordinates into a renderer plane of the given
// width and height centered on the origin.
type Viewport struct {
	Width  float64
	Height float64
}

// Project maps c to renderer space: ((x-0.5)·W, (y-0.5)·H, depth).
// The projection is pure; the zero Viewport collapses every point onto
// (0, 0, depth).
func (vp Viewport) Project(c Coordinate, depth float64) Vec3 {
	return Vec3{
		X: (c[0] - 0.5) * vp.Width,
		Y: (c[1] - 0.5) * vp.Height,
		Z: depth,
	}
}

// ProjectAll projects every coordinate at the same depth into a fresh slice.
func (vp Viewport) ProjectAll(cs []Coordinate, depth float64) []Vec3 {
	out := make([]Vec3, len(cs))
	for i, c := range cs {
		out[i] = vp.Project(c, depth)
	}

	return out
}
