// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// presets.go - ready-made scenes.

package builder

import (
	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/timeline"
)

// Semantic beats shared across scenes.
const (
	CueInitiation   = 4.0
	CueSkylineCycle = 12.0
	CueCTAPulse     = 16.0
)

// SynthwaveLoop is the meta "loop" tag of the synthwave network.
const SynthwaveLoop = "synthwave-network"

// SynthwaveNetworkInput returns the raw seven-node synthwave network with its
// thirteen-clip timeline. Each call returns a fresh value.
func SynthwaveNetworkInput() core.DefinitionInput {
	w := core.Float
	ln := func(x, y float64) core.SegmentInput {
		return core.SegmentInput{Kind: core.SegmentLine, To: core.CoordinateInput{x, y}}
	}
	quad := func(x, y, cx, cy float64) core.SegmentInput {
		return core.SegmentInput{
			Kind:          core.SegmentQuadratic,
			To:            core.CoordinateInput{x, y},
			ControlPoints: []core.CoordinateInput{{cx, cy}},
		}
	}
	cubic := func(x, y, c1x, c1y, c2x, c2y float64) core.SegmentInput {
		return core.SegmentInput{
			Kind:          core.SegmentCubic,
			To:            core.CoordinateInput{x, y},
			ControlPoints: []core.CoordinateInput{{c1x, c1y}, {c2x, c2y}},
		}
	}
	edge := func(from, to string, weight float64, segs ...core.SegmentInput) core.EdgeInput {
		return core.EdgeInput{ID: edgeID(from, to), From: from, To: to, Segments: segs, Weight: w(weight)}
	}
	clip := func(id string, tt core.TargetType, target string, a core.Action, beat, length float64) core.ClipInput {
		return core.ClipInput{ID: id, TargetType: tt, TargetID: target, Action: a, Beat: beat, Length: w(length)}
	}
	const (
		node = core.TargetNode
		edg  = core.TargetEdge
	)

	return core.DefinitionInput{
		Nodes: []core.NodeInput{
			{ID: "origin", Position: core.CoordinateInput{0.08, 0.18}, Label: "Origin Gate"},
			{ID: "spire", Position: core.CoordinateInput{0.28, 0.34}, Label: "Data Spire"},
			{ID: "relay", Position: core.CoordinateInput{0.48, 0.58}, Label: "Relay Nexus"},
			{ID: "uplink", Position: core.CoordinateInput{0.76, 0.78}, Label: "Sky Uplink"},
			{ID: "horizon", Position: core.CoordinateInput{0.92, 0.62}, Label: "Horizon Node"},
			{ID: "downtown", Position: core.CoordinateInput{0.24, 0.68}, Label: "Downtown Hub"},
			{ID: "catalyst", Position: core.CoordinateInput{0.58, 0.3}, Label: "Catalyst Bridge"},
		},
		Edges: []core.EdgeInput{
			edge("origin", "spire", WeightTracer, ln(0.18, 0.26), quad(0.28, 0.34, 0.2, 0.38)),
			edge("spire", "relay", WeightGrid, quad(0.48, 0.58, 0.36, 0.66)),
			edge("relay", "uplink", WeightHorizon, cubic(0.76, 0.78, 0.58, 0.68, 0.68, 0.88)),
			edge("relay", "horizon", WeightGrid, ln(0.68, 0.62), quad(0.92, 0.62, 0.82, 0.48)),
			edge("origin", "downtown", WeightTracer, cubic(0.24, 0.68, 0.1, 0.42, 0.18, 0.62)),
			edge("downtown", "uplink", WeightGrid, quad(0.58, 0.72, 0.38, 0.82), ln(0.76, 0.78)),
			edge("spire", "catalyst", WeightTracer, ln(0.4, 0.32), ln(0.58, 0.3)),
			edge("catalyst", "horizon", WeightHorizon, quad(0.92, 0.62, 0.74, 0.28)),
		},
		Timelines: []core.ClipInput{
			clip("intro-origin", node, "origin", core.ActionHighlight, 0, 1),
			clip("trace-origin-spire", edg, "origin-spire", core.ActionDraw, 1, 2),
			clip("cue-spire", node, "spire", core.ActionPulse, 2.5, 1),
			clip("trace-spire-relay", edg, "spire-relay", core.ActionDraw, 3, 2),
			clip("cue-relay", node, "relay", core.ActionHighlight, 4.5, 1),
			clip("trace-relay-uplink", edg, "relay-uplink", core.ActionDraw, 5, 2),
			clip("trace-origin-downtown", edg, "origin-downtown", core.ActionDraw, 6, 1.5),
			clip("cue-downtown", node, "downtown", core.ActionPulse, 6.6, 1),
			clip("trace-downtown-uplink", edg, "downtown-uplink", core.ActionHighlight, 7.2, 1.8),
			clip("cue-uplink", node, "uplink", core.ActionHighlight, 8.4, 1.4),
			clip("trace-relay-horizon", edg, "relay-horizon", core.ActionDraw, 9, 1.6),
			clip("trace-spire-catalyst", edg, "spire-catalyst", core.ActionPulse, 10, 1),
			clip("trace-catalyst-horizon", edg, "catalyst-horizon", core.ActionDraw, 11, 1.8),
		},
		Meta: map[string]any{"loop": SynthwaveLoop},
	}
}

// SynthwaveNetwork returns the synthwave network as a strict definition.
func SynthwaveNetwork(opts ...core.Option) (*core.Definition, error) {
	return core.Define(SynthwaveNetworkInput(), opts...)
}

// InitiationGrid returns a 4×6 grid whose edges cascade out of the top-left
// corner half a beat per hop, looping every CueSkylineCycle beats.
func InitiationGrid(opts ...BuilderOption) (*core.Definition, error) {
	return BuildDefinition(nil, opts,
		Grid(4, 6),
		Cascade(GridID(0, 0), 0.5),
		Meta(timeline.MetaLoopBeats, CueSkylineCycle),
	)
}

// SynthwaveHorizon returns the ground grid with three skyline layers on the
// horizon, looping every CueSkylineCycle beats.
func SynthwaveHorizon(opts ...BuilderOption) (*core.Definition, error) {
	return BuildDefinition(nil, opts,
		PerspectiveGrid(24, 28),
		Skyline(3, SkylineSegments),
		Meta(timeline.MetaLoopBeats, CueSkylineCycle),
	)
}
