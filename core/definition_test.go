package core_test

import (
	"testing"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func richInput() core.DefinitionInput {
	ease := core.EaseBezier(0.7, 0, 0.3, 1)
	return core.DefinitionInput{
		Nodes: []core.NodeInput{
			{ID: "A", Position: core.CoordinateInput{0.1, 0.2}, Meta: map[string]any{"tags": []any{"root"}, "depth": 0, "layers": []map[string]any{{"color": "cyan"}}}},
			{ID: "B", Position: core.CoordinateInput{0.9, 0.8}, Label: "Sink"},
		},
		Edges: []core.EdgeInput{
			{
				ID: "ab", From: "A", To: "B",
				Offset: core.Float(0.1), Weight: core.Float(3),
				Meta: map[string]any{"style": map[string]any{"dash": []float64{4, 2}}},
				Segments: []core.SegmentInput{
					{Kind: core.SegmentQuadratic, To: core.CoordinateInput{0.5, 0.5}, ControlPoints: []core.CoordinateInput{{0.2, 0.6}}},
					{Kind: core.SegmentCubic, To: core.CoordinateInput{0.9, 0.8}, ControlPoints: []core.CoordinateInput{{0.6, 0.4}, {0.8, 0.9}}},
				},
			},
		},
		Timelines: []core.ClipInput{
			{ID: "draw-ab", TargetType: core.TargetEdge, TargetID: "ab", Action: core.ActionDraw, Beat: 1, Length: core.Float(2), Easing: &ease},
			{ID: "pulse-b", TargetType: core.TargetNode, TargetID: "B", Action: core.ActionPulse, Beat: 3, Payload: map[string]any{"color": "plasmaBlue", "lookup": map[any]any{1: "x"}}},
		},
		Meta: map[string]any{"loopBeats": 8.0, "palette": []any{"zeroCyan", "plasmaBlue"}, "tiers": []map[string]any{{"low": 1}}},
	}
}

// TestDefinition_Idempotent re-validates a definition's own input form.
func TestDefinition_Idempotent(t *testing.T) {
	def, err := core.Define(richInput())
	require.NoError(t, err)

	again := def.Input()
	assert.Nil(t, core.Validate(again))

	def2, err := core.Define(again)
	require.NoError(t, err)
	assert.Equal(t, def, def2)
	assert.Equal(t, again, def2.Input())
}

// TestDefinition_InputNotAliased mutates the caller's input after Define.
func TestDefinition_InputNotAliased(t *testing.T) {
	in := richInput()
	def, err := core.Define(in)
	require.NoError(t, err)

	in.Nodes[0].Position[0] = 42
	in.Nodes[0].Meta["depth"] = 99
	in.Nodes[0].Meta["tags"].([]any)[0] = "hijacked"
	in.Edges[0].Segments[0].ControlPoints[0][0] = 42
	in.Edges[0].Segments[1].To[1] = 42
	*in.Edges[0].Weight = 42
	in.Timelines[0].Beat = 42
	in.Timelines[1].Payload["color"] = "red"
	in.Nodes[0].Meta["layers"].([]map[string]any)[0]["color"] = "red"
	in.Timelines[1].Payload["lookup"].(map[any]any)[1] = "hijacked"
	in.Meta["loopBeats"] = 1.0
	in.Nodes = append(in.Nodes[:0], core.NodeInput{ID: "Z"})

	a, _ := def.Node("A")
	assert.Equal(t, geom.C(0.1, 0.2), a.Position())
	assert.Equal(t, 0, a.Meta()["depth"])
	assert.Equal(t, []any{"root"}, a.Meta()["tags"])
	assert.Equal(t, []map[string]any{{"color": "cyan"}}, a.Meta()["layers"])

	e, _ := def.Edge("ab")
	assert.Equal(t, 3.0, e.Weight())
	q, _ := e.Segment(0)
	cp, _ := q.ControlPoint(0)
	assert.Equal(t, geom.C(0.2, 0.6), cp)
	c, _ := e.Segment(1)
	assert.Equal(t, geom.C(0.9, 0.8), c.To())

	clip, _ := def.ClipAt(0)
	assert.Equal(t, 1.0, clip.Beat())
	pulse, _ := def.ClipAt(1)
	assert.Equal(t, "plasmaBlue", pulse.Payload()["color"])
	assert.Equal(t, map[any]any{1: "x"}, pulse.Payload()["lookup"])

	v, ok := def.MetaValue("loopBeats")
	require.True(t, ok)
	assert.Equal(t, 8.0, v)
	assert.Equal(t, "A", def.Nodes()[0].ID())
}

// TestDefinition_ReadsAreCopies mutates everything a reader can get hold of.
func TestDefinition_ReadsAreCopies(t *testing.T) {
	def, err := core.Define(richInput())
	require.NoError(t, err)

	nodes := def.Nodes()
	nodes[0] = core.Node{}

	meta := def.Nodes()[0].Meta()
	meta["depth"] = 7
	meta["tags"].([]any)[0] = "x"
	meta["layers"].([]map[string]any)[0]["color"] = "red"

	edges := def.Edges()
	segs := edges[0].Segments()
	segs[0] = core.Segment{}
	cps := segs[1].ControlPoints()
	cps[0] = geom.C(9, 9)
	edgeMeta := edges[0].Meta()
	edgeMeta["style"].(map[string]any)["dash"].([]float64)[0] = 100

	clips := def.Timelines()
	clips[0] = core.Clip{}
	payload := clips[1].Payload()
	payload["color"] = "red"
	payload["lookup"].(map[any]any)[1] = "y"
	delete(def.Timelines()[1].Payload()["lookup"].(map[any]any), 1)

	top := def.Meta()
	top["palette"].([]any)[0] = "red"
	delete(top, "loopBeats")
	tiers, ok := def.MetaValue("tiers")
	require.True(t, ok)
	tiers.([]map[string]any)[0]["low"] = 99

	issues := def.Issues()
	assert.Nil(t, issues)

	// Nothing above is visible through the definition.
	fresh, err := core.Define(richInput())
	require.NoError(t, err)
	assert.Equal(t, fresh, def)
}

func TestDefinition_Lookups(t *testing.T) {
	def, err := core.Define(richInput())
	require.NoError(t, err)

	_, ok := def.Node("nope")
	assert.False(t, ok)
	_, ok = def.Edge("nope")
	assert.False(t, ok)
	_, ok = def.NodeAt(-1)
	assert.False(t, ok)
	_, ok = def.EdgeAt(5)
	assert.False(t, ok)
	_, ok = def.ClipAt(2)
	assert.False(t, ok)
	_, ok = def.MetaValue("nope")
	assert.False(t, ok)
	assert.True(t, def.HasNode("B"))
	assert.True(t, def.HasEdge("ab"))

	e, _ := def.Edge("ab")
	off, ok := e.Offset()
	assert.True(t, ok)
	assert.Equal(t, 0.1, off)
	_, ok = e.Segment(2)
	assert.False(t, ok)

	s, _ := e.Segment(0)
	_, ok = s.ControlPoint(1)
	assert.False(t, ok)

	draw, _ := def.ClipAt(0)
	bz, ok := draw.Easing().Bezier()
	assert.True(t, ok)
	assert.Equal(t, [4]float64{0.7, 0, 0.3, 1}, bz)

	pulse, _ := def.ClipAt(1)
	_, hasLen := pulse.Length()
	assert.False(t, hasLen)
	assert.Equal(t, core.DefaultClipLength, pulse.Span())
	assert.True(t, pulse.Easing().IsZero())
}
