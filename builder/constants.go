// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// constants.go - method names, fixed ids, and minimum sizes.

package builder

// Method names prefix constructor errors.
const (
	MethodPath            = "Path"
	MethodCycle           = "Cycle"
	MethodStar            = "Star"
	MethodGrid            = "Grid"
	MethodConstellation   = "Constellation"
	MethodPerspectiveGrid = "PerspectiveGrid"
	MethodSkyline         = "Skyline"
	MethodCascade         = "Cascade"
	MethodTrace           = "Trace"
	MethodSpanningLinks   = "SpanningLinks"
	MethodMeta            = "Meta"
)

// CenterNodeID is the fixed id of the hub in Star.
const CenterNodeID = "Center"

// Minimum sizes.
const (
	MinPathNodes  = 2
	MinCycleNodes = 3
	MinStarNodes  = 2
	MinGridDim    = 1
	MinGridRows   = 1
	MinGridRays   = 1
	MinSkyline    = 1
	MinSkylineSeg = 2
)

// Stroke weights shared by the presets.
const (
	WeightTracer  = 1.0
	WeightGrid    = 2.0
	WeightHorizon = 3.0
)
