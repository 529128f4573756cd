// SPDX-License-Identifier: MIT
// Package: linenet/sampler
//
// segment.go - per-segment and per-edge sampling in normalized space.
//
// Complexity: O(n) per curved segment, O(1) per line segment.

package sampler

import (
	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

// MinSamples is the lowest per-segment sample count for curved segments.
const MinSamples = 2

// DefaultSamples is the per-segment sample count used by New.
const DefaultSamples = 28

// SampleSegment samples seg starting at from. samples below MinSamples are raised.
func SampleSegment(from geom.Coordinate, seg core.Segment, samples int) []geom.Coordinate {
	return AppendSegment(nil, from, seg, samples)
}

// AppendSegment appends the samples of seg to dst and returns the extended slice.
func AppendSegment(dst []geom.Coordinate, from geom.Coordinate, seg core.Segment, samples int) []geom.Coordinate {
	n := samples
	if n < MinSamples {
		n = MinSamples
	}
	to := seg.To()

	switch seg.Kind() {
	case core.SegmentQuadratic:
		cp := controlOr(seg, 0, from)
		for i := 1; i <= n; i++ {
			dst = append(dst, geom.QuadraticBezier(from, cp, to, float64(i)/float64(n)))
		}
	case core.SegmentCubic:
		cp1 := controlOr(seg, 0, from)
		cp2 := controlOr(seg, 1, to)
		for i := 1; i <= n; i++ {
			dst = append(dst, geom.CubicBezier(from, cp1, cp2, to, float64(i)/float64(n)))
		}
	default:
		// line, and unknown kinds kept by a lenient Define
		dst = append(dst, to)
	}

	return dst
}

func controlOr(seg core.Segment, i int, fallback geom.Coordinate) geom.Coordinate {
	if cp, ok := seg.ControlPoint(i); ok {
		return cp
	}

	return fallback
}

// SampleEdge returns the polyline of e starting at start, the position of
// its "from" node.
func SampleEdge(start geom.Coordinate, e core.Edge, samples int) []geom.Coordinate {
	pts := make([]geom.Coordinate, 0, capacityHint(e, samples))
	pts = append(pts, start)
	cursor := start
	for _, seg := range e.Segments() {
		pts = AppendSegment(pts, cursor, seg, samples)
		cursor = seg.To()
	}

	return pts
}

// SampleDefinitionEdge samples e using def to find its start. An edge whose
// "from" node is missing (lenient definitions only) yields nil.
func SampleDefinitionEdge(def *core.Definition, e core.Edge, samples int) []geom.Coordinate {
	from, ok := def.Node(e.From())
	if !ok {
		return nil
	}

	return SampleEdge(from.Position(), e, samples)
}

func capacityHint(e core.Edge, samples int) int {
	n := samples
	if n < MinSamples {
		n = MinSamples
	}
	hint := 1
	for i := 0; i < e.SegmentCount(); i++ {
		seg, _ := e.Segment(i)
		if seg.Kind() == core.SegmentQuadratic || seg.Kind() == core.SegmentCubic {
			hint += n
		} else {
			hint++
		}
	}

	return hint
}
