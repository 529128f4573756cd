package builder_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linenet/bfs"
	"github.com/katalvlaran/linenet/builder"
	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
	"github.com/katalvlaran/linenet/route"
	"github.com/katalvlaran/linenet/timeline"
)

func build(t *testing.T, opts []builder.BuilderOption, cons ...builder.Constructor) *core.Definition {
	t.Helper()
	def, err := builder.BuildDefinition(nil, opts, cons...)
	require.NoError(t, err)

	return def
}

func clipFor(t *testing.T, def *core.Definition, tt core.TargetType, id string, a core.Action) core.Clip {
	t.Helper()
	for _, c := range def.Timelines() {
		if c.TargetType() == tt && c.TargetID() == id && c.Action() == a {
			return c
		}
	}
	t.Fatalf("no %s clip for %s %q", a, tt, id)

	return core.Clip{}
}

func TestMinimumSizes(t *testing.T) {
	cases := map[string]builder.Constructor{
		"Path(1)":            builder.Path(1),
		"Cycle(2)":           builder.Cycle(2),
		"Star(1)":            builder.Star(1),
		"Grid(0,3)":          builder.Grid(0, 3),
		"Grid(3,0)":          builder.Grid(3, 0),
		"Constellation(0)":   builder.Constellation(0, 0.5),
		"PerspectiveGrid(0)": builder.PerspectiveGrid(0, 4),
		"Skyline(1,1)":       builder.Skyline(1, 1),
	}
	for name, con := range cases {
		_, err := builder.BuildInput([]builder.BuilderOption{builder.WithSeed(1)}, con)
		assert.ErrorIs(t, err, builder.ErrTooFewNodes, name)
	}
}

func TestPath(t *testing.T) {
	def := build(t, nil, builder.Path(4))

	require.Equal(t, 4, def.NodeCount())
	require.Equal(t, 3, def.EdgeCount())
	first, _ := def.Node("0")
	last, _ := def.Node("3")
	assert.Equal(t, geom.C(0.1, 0.5), first.Position())
	assert.InDelta(t, 0.9, last.Position().X(), 1e-12)

	for i, e := range def.Edges() {
		c := clipFor(t, def, core.TargetEdge, e.ID(), core.ActionDraw)
		assert.Equal(t, float64(i), c.Beat(), e.ID())
		assert.Equal(t, 1.0, c.Span())
	}

	// Path edges hand off exactly: the next starts as the previous completes.
	ev, err := timeline.New(def)
	require.NoError(t, err)
	assert.Equal(t, 1.0, ev.EdgeProgress("0-1", 1))
	assert.Equal(t, 0.0, ev.EdgeProgress("1-2", 1))
	assert.Equal(t, 3.0, ev.LoopBeats())
}

func TestCycleAndStar(t *testing.T) {
	def := build(t, nil, builder.Cycle(5))
	assert.Equal(t, 5, def.EdgeCount())
	assert.True(t, def.HasEdge("4-0"))
	top, _ := def.Node("0")
	assert.InDelta(t, 0.5, top.Position().X(), 1e-12)
	assert.InDelta(t, 0.15, top.Position().Y(), 1e-12)

	def = build(t, []builder.BuilderOption{builder.WithStagger(0)}, builder.Star(5))
	assert.Equal(t, 5, def.NodeCount())
	assert.Equal(t, 4, def.EdgeCount())
	for _, e := range def.Edges() {
		assert.Equal(t, builder.CenterNodeID, e.From())
		assert.Equal(t, 0.0, clipFor(t, def, core.TargetEdge, e.ID(), core.ActionDraw).Beat())
	}
}

func TestGrid(t *testing.T) {
	def := build(t, []builder.BuilderOption{builder.WithStartBeat(2)}, builder.Grid(3, 4))

	assert.Equal(t, 12, def.NodeCount())
	assert.Equal(t, 3*3+4*2, def.EdgeCount())
	assert.True(t, def.HasEdge("1,2-1,3"))
	assert.True(t, def.HasEdge("1,2-2,2"))
	assert.False(t, def.HasEdge("2,3-3,3"))

	// Diagonal wave: start + (r+c)·0.5.
	assert.Equal(t, 2.0, clipFor(t, def, core.TargetEdge, "0,0-0,1", core.ActionDraw).Beat())
	assert.Equal(t, 3.5, clipFor(t, def, core.TargetEdge, "1,2-2,2", core.ActionDraw).Beat())

	single := build(t, nil, builder.Grid(1, 1))
	assert.Equal(t, 1, single.NodeCount())
	assert.Zero(t, single.EdgeCount())
	n, _ := single.Node("0,0")
	assert.Equal(t, geom.C(0.5, 0.5), n.Position())
}

func TestTimelinesOff(t *testing.T) {
	def := build(t, []builder.BuilderOption{builder.WithTimelines(false)}, builder.Grid(2, 2), builder.PerspectiveGrid(2, 3))
	assert.False(t, def.HasTimelines())
	assert.Zero(t, def.ClipCount())
}

func TestConstellation(t *testing.T) {
	_, err := builder.BuildInput(nil, builder.Constellation(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildInput([]builder.BuilderOption{builder.WithSeed(1)}, builder.Constellation(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	seeded := []builder.BuilderOption{builder.WithSeed(7)}
	full := build(t, seeded, builder.Constellation(6, 1))
	assert.Equal(t, 15, full.EdgeCount())
	empty := build(t, seeded, builder.Constellation(6, 0))
	assert.Zero(t, empty.EdgeCount())

	a, err := builder.BuildInput(seeded, builder.Constellation(10, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildInput(seeded, builder.Constellation(10, 0.3))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	for _, n := range a.Nodes {
		assert.GreaterOrEqual(t, n.Position[0], 0.1)
		assert.LessOrEqual(t, n.Position[1], 0.9)
	}
}

func TestGridRows(t *testing.T) {
	ys := builder.GridRows(24)
	require.Len(t, ys, 25)

	h := builder.Horizon()
	assert.InDelta(t, 0.618, h, 1e-3)
	for i := 1; i < len(ys); i++ {
		assert.Greater(t, ys[i], ys[i-1])
	}
	assert.InDelta(t, 0.97, ys[len(ys)-1], 1e-12)
	assert.Greater(t, ys[0], h)

	// Rows bunch up toward the horizon.
	assert.Less(t, ys[1]-ys[0], ys[len(ys)-1]-ys[len(ys)-2])
}

func TestPerspectiveGrid(t *testing.T) {
	def := build(t, nil, builder.PerspectiveGrid(4, 7))
	ys := builder.GridRows(4)

	// Horizontals alternate direction.
	h0, ok := def.Edge("h-0")
	require.True(t, ok)
	assert.Equal(t, "h-0-l", h0.From())
	h1, _ := def.Edge("h-1")
	assert.Equal(t, "h-1-r", h1.From())

	// Every ray stops on the top row and leans toward the vanishing point.
	for j := 0; j < 7; j++ {
		top, ok := def.Node("r-" + strconv.Itoa(j) + "-t")
		require.True(t, ok)
		assert.InDelta(t, ys[0], top.Position().Y(), 1e-12)
		bottom, _ := def.Node("r-" + strconv.Itoa(j) + "-b")
		assert.LessOrEqual(t, math.Abs(top.Position().X()-0.5), math.Abs(bottom.Position().X()-0.5))
	}

	c := clipFor(t, def, core.TargetEdge, "h-2", core.ActionDraw)
	assert.InDelta(t, 1.16, c.Beat(), 1e-12)
	assert.Equal(t, 1.8, c.Span())
	assert.Equal(t, builder.GridEasing, c.Easing())

	// The centre ray starts first, the outer ones last.
	mid := clipFor(t, def, core.TargetEdge, "r-3", core.ActionDraw)
	edge := clipFor(t, def, core.TargetEdge, "r-0", core.ActionDraw)
	assert.InDelta(t, 0.68+0.42, mid.Beat(), 1e-12)
	assert.InDelta(t, 0.68, edge.Beat(), 1e-12)

	w, _ := def.Edge("h-0")
	assert.Equal(t, builder.WeightGrid, w.Weight())
}

func TestSkylinePoints(t *testing.T) {
	const segments = 24
	pts := builder.SkylinePoints(0, 3, segments, 0)
	require.Len(t, pts, 3*segments+1)

	base := builder.SkylineBase()
	assert.Equal(t, geom.C(0, base), pts[0])
	assert.InDelta(t, 1, pts[len(pts)-1].X(), 1e-12)
	assert.Equal(t, base, pts[len(pts)-1].Y())

	lifted := false
	for i, p := range pts {
		assert.LessOrEqual(t, p.Y(), base)
		assert.GreaterOrEqual(t, p.Y(), base-builder.SkylineBand)
		if p.Y() < base {
			lifted = true
		}
		if i > 0 {
			assert.GreaterOrEqual(t, p.X(), pts[i-1].X())
		}
	}
	assert.True(t, lifted)

	// Steps are axis aligned.
	for i := 1; i+2 < len(pts); i += 3 {
		assert.Equal(t, pts[i].X(), pts[i+1].X())
		assert.Equal(t, pts[i+1].Y(), pts[i+2].Y())
	}
}

func TestSkyline(t *testing.T) {
	def := build(t, nil, builder.Skyline(3, 10))
	assert.Equal(t, 6, def.NodeCount())
	require.Equal(t, 3, def.EdgeCount())

	e, _ := def.Edge("sky-1")
	assert.Equal(t, 30, e.SegmentCount())
	assert.Equal(t, "sky-1-w", e.From())
	assert.Equal(t, "sky-1-e", e.To())
	assert.InDelta(t, 2.9+0.26, clipFor(t, def, core.TargetEdge, "sky-1", core.ActionDraw).Beat(), 1e-12)

	a, err := builder.BuildInput([]builder.BuilderOption{builder.WithSeed(3)}, builder.Skyline(1, 10))
	require.NoError(t, err)
	b, err := builder.BuildInput(nil, builder.Skyline(1, 10))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges[0].Segments, b.Edges[0].Segments, "seeded jitter reshapes the ridge")
}

func TestCascade(t *testing.T) {
	const step = 0.75
	def := build(t, []builder.BuilderOption{builder.WithStartBeat(1)}, builder.Grid(2, 2), builder.Cascade("0,0", step))

	require.Equal(t, 8, def.ClipCount())
	draws := map[string]float64{
		"0,0-0,1": 1,
		"0,0-1,0": 1,
		"0,1-1,1": 1 + step,
		"1,0-1,1": 1 + step,
	}
	for id, beat := range draws {
		c := clipFor(t, def, core.TargetEdge, id, core.ActionDraw)
		assert.Equal(t, beat, c.Beat(), id)
		assert.Equal(t, step, c.Span(), id)
	}
	assert.Equal(t, 1+2*step, clipFor(t, def, core.TargetNode, "1,1", core.ActionPulse).Beat())
	assert.Equal(t, 1.0, clipFor(t, def, core.TargetNode, "0,0", core.ActionPulse).Beat())

	ev, err := timeline.New(def)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ev.NodeIntensity("0,1", 1+step+0.5), 1e-12)
}

func TestCascadeUnreached(t *testing.T) {
	def := build(t, []builder.BuilderOption{builder.WithArrival(core.ActionHighlight)},
		builder.Path(3), builder.Cascade("1", 2))

	// 0-1 leaves an unreached node and keeps its original clip.
	assert.Equal(t, 0.0, clipFor(t, def, core.TargetEdge, "0-1", core.ActionDraw).Beat())
	assert.Equal(t, 0.0, clipFor(t, def, core.TargetEdge, "1-2", core.ActionDraw).Beat())
	assert.Equal(t, 2.0, clipFor(t, def, core.TargetNode, "2", core.ActionHighlight).Beat())
	for _, c := range def.Timelines() {
		assert.NotEqual(t, "0", c.TargetID(), "node 0 is upstream of the root")
	}
}

func TestCascadeErrors(t *testing.T) {
	_, err := builder.BuildInput(nil, builder.Path(2), builder.Cascade("x", 1))
	assert.ErrorIs(t, err, builder.ErrUnknownNode)

	for _, step := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = builder.BuildInput(nil, builder.Path(2), builder.Cascade("0", step))
		assert.ErrorIs(t, err, builder.ErrInvalidParameter, "step=%g", step)
	}
}

func TestTrace(t *testing.T) {
	def := build(t, nil, builder.Cycle(4), builder.Trace("0", "2", 1))

	require.Equal(t, 7, def.ClipCount())
	assert.Equal(t, 0.0, clipFor(t, def, core.TargetEdge, "0-1", core.ActionDraw).Beat())
	assert.Equal(t, 1.0, clipFor(t, def, core.TargetEdge, "1-2", core.ActionDraw).Beat())
	assert.Equal(t, 1.0, clipFor(t, def, core.TargetEdge, "2-3", core.ActionDraw).Beat(), "off the route")
	assert.Equal(t, 1.5, clipFor(t, def, core.TargetEdge, "3-0", core.ActionDraw).Beat(), "off the route")
	for id, beat := range map[string]float64{"0": 0, "1": 1, "2": 2} {
		assert.Equal(t, beat, clipFor(t, def, core.TargetNode, id, core.ActionPulse).Beat(), id)
	}

	wrap := build(t, nil, builder.Cycle(4), builder.Trace("2", "0", 0.5))
	assert.Equal(t, 0.0, clipFor(t, wrap, core.TargetEdge, "2-3", core.ActionDraw).Beat())
	assert.Equal(t, 0.5, clipFor(t, wrap, core.TargetEdge, "3-0", core.ActionDraw).Beat())
	assert.Equal(t, 1.0, clipFor(t, wrap, core.TargetNode, "0", core.ActionPulse).Beat())
}

func TestTraceErrors(t *testing.T) {
	_, err := builder.BuildInput(nil, builder.Path(3), builder.Trace("0", "x", 1))
	assert.ErrorIs(t, err, builder.ErrUnknownNode)

	_, err = builder.BuildInput(nil, builder.Path(3), builder.Trace("0", "2", 0))
	assert.ErrorIs(t, err, builder.ErrInvalidParameter)

	_, err = builder.BuildInput(nil, builder.Path(3), builder.Trace("2", "0", 1))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, route.ErrNoPath)
}

func TestSpanningLinks(t *testing.T) {
	d := builder.NewDraft()
	require.NoError(t, d.AddNode("a", geom.C(0, 0), ""))
	require.NoError(t, d.AddNode("b", geom.C(1, 0), ""))
	require.NoError(t, d.AddNode("c", geom.C(0.1, 0), ""))
	require.NoError(t, builder.Apply(d, nil, builder.SpanningLinks()))

	assert.Equal(t, 2, d.EdgeCount())
	assert.True(t, d.HasEdge("a-c"))
	assert.True(t, d.HasEdge("b-c"))
	in := d.Input()
	require.Len(t, in.Timelines, 2)
	assert.Equal(t, "a-c", in.Timelines[0].TargetID)
	assert.Equal(t, 0.25, in.Timelines[1].Beat)

	require.NoError(t, builder.Apply(d, nil, builder.SpanningLinks()))
	assert.Equal(t, 2, d.EdgeCount(), "already connected")
}

func TestSpanningLinksConstellation(t *testing.T) {
	const n = 9
	def := build(t, []builder.BuilderOption{builder.WithSeed(7)},
		builder.Constellation(n, 0.05), builder.SpanningLinks())

	res, err := bfs.BFS(def, "0", bfs.WithUndirected())
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.GreaterOrEqual(t, def.EdgeCount(), n-1)
}

func TestBuildDefinitionErrors(t *testing.T) {
	_, err := builder.BuildDefinition(nil, nil, builder.Path(2), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	// Same id at a new position.
	_, err = builder.BuildDefinition(nil, nil, builder.Path(2), builder.Cycle(3))
	require.ErrorIs(t, err, builder.ErrDuplicateID)

	_, err = builder.BuildDefinition(nil, nil, builder.Meta("", 1))
	require.ErrorIs(t, err, builder.ErrInvalidParameter)

	// A hand-written edge with no segments fails core validation.
	d := builder.NewDraft()
	require.NoError(t, builder.Apply(d, nil, builder.Path(2)))
	require.NoError(t, d.AddEdge("loose", "0", "1", nil, nil))
	_, err = core.Define(d.Input())
	require.ErrorIs(t, err, core.ErrMissingSegments)
}

func TestDraft(t *testing.T) {
	d := builder.NewDraft()
	require.NoError(t, d.AddNode("a", geom.C(0, 0), "A"))
	require.NoError(t, d.AddNode("a", geom.C(0, 0), "again"), "same position is idempotent")
	require.ErrorIs(t, d.AddNode("a", geom.C(1, 0), ""), builder.ErrDuplicateID)
	require.NoError(t, d.AddNode("b", geom.C(1, 1), ""))

	require.ErrorIs(t, d.AddLine("a-x", "a", "x", nil), builder.ErrUnknownNode)
	require.NoError(t, d.AddLine("a-b", "a", "b", core.Float(2)))
	require.ErrorIs(t, d.AddLine("a-b", "a", "b", nil), builder.ErrDuplicateID)
	assert.True(t, d.HasEdge("a-b"))
	assert.Equal(t, 2, d.NodeCount())
	assert.Equal(t, 1, d.EdgeCount())

	d.SetMeta("k", "v")
	in := d.Input()
	in.Meta["k"] = "changed"
	in.Nodes[0].ID = "changed"
	again := d.Input()
	assert.Equal(t, "v", again.Meta["k"])
	assert.Equal(t, "a", again.Nodes[0].ID)

	pos, ok := d.NodePosition("b")
	assert.True(t, ok)
	assert.Equal(t, geom.C(1, 1), pos)
}

func TestSynthwaveNetwork(t *testing.T) {
	def, err := builder.SynthwaveNetwork()
	require.NoError(t, err)

	assert.Equal(t, 7, def.NodeCount())
	assert.Equal(t, 8, def.EdgeCount())
	assert.Equal(t, 13, def.ClipCount())
	assert.Empty(t, def.Issues())
	loop, ok := def.MetaValue("loop")
	require.True(t, ok)
	assert.Equal(t, builder.SynthwaveLoop, loop)

	e, _ := def.Edge("relay-uplink")
	assert.Equal(t, builder.WeightHorizon, e.Weight())
	seg, _ := e.Segment(0)
	assert.Equal(t, core.SegmentCubic, seg.Kind())
	assert.Equal(t, 2, seg.ControlPointCount())

	ev, err := timeline.New(def)
	require.NoError(t, err)
	assert.InDelta(t, 12.8, ev.LoopBeats(), 1e-12)
	assert.InDelta(t, 0.5, ev.EdgeProgress("origin-spire", 2), 1e-12)
	assert.InDelta(t, 1.0, ev.NodeIntensity("spire", 3), 1e-12)
	assert.Equal(t, 1.0, ev.NodeIntensity("origin", 10), "highlight latches")
	// downtown-uplink only highlights, so it is always fully drawn.
	assert.Equal(t, 1.0, ev.EdgeProgress("downtown-uplink", 0))

	// Fresh input each call.
	in := builder.SynthwaveNetworkInput()
	in.Nodes[0].ID = "mutated"
	assert.Equal(t, "origin", builder.SynthwaveNetworkInput().Nodes[0].ID)
}

func TestInitiationGrid(t *testing.T) {
	def, err := builder.InitiationGrid()
	require.NoError(t, err)
	assert.Equal(t, 24, def.NodeCount())
	assert.Equal(t, builder.CueSkylineCycle, timeline.LoopBeats(def))

	// Far corner sits 3+5 hops out.
	c := clipFor(t, def, core.TargetNode, builder.GridID(3, 5), core.ActionPulse)
	assert.Equal(t, 4.0, c.Beat())
}

func TestSynthwaveHorizon(t *testing.T) {
	a, err := builder.SynthwaveHorizon()
	require.NoError(t, err)
	b, err := builder.SynthwaveHorizon()
	require.NoError(t, err)
	assert.Equal(t, a.Input(), b.Input())
	assert.True(t, a.HasEdge("sky-2"))
	assert.True(t, a.HasEdge("h-24"))
}
