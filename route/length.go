// SPDX-License-Identifier: MIT
// Package: linenet/route
//
// length.go - polyline length.

package route

import "github.com/katalvlaran/linenet/geom"

// Length sums the distances between consecutive points.
func Length(points []geom.Coordinate) float64 {
	var sum float64
	for i := 1; i < len(points); i++ {
		sum += points[i-1].Distance(points[i])
	}

	return sum
}
