package route_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
	"github.com/katalvlaran/linenet/route"
)

func line(x, y float64) core.SegmentInput {
	return core.SegmentInput{To: core.CoordinateInput{x, y}}
}

// square: a(0,0) b(1,0) c(1,1) d(0,1). The "ac" edge bends out to (0.5,1.5),
// so it is one hop but longer than a→b→c.
func square(t testing.TB) *core.Definition {
	t.Helper()
	in := core.DefinitionInput{
		Nodes: []core.NodeInput{
			{ID: "a", Position: core.CoordinateInput{0, 0}},
			{ID: "b", Position: core.CoordinateInput{1, 0}},
			{ID: "c", Position: core.CoordinateInput{1, 1}},
			{ID: "d", Position: core.CoordinateInput{0, 1}},
		},
		Edges: []core.EdgeInput{
			{ID: "ab", From: "a", To: "b", Segments: []core.SegmentInput{line(1, 0)}},
			{ID: "bc", From: "b", To: "c", Segments: []core.SegmentInput{line(1, 1)}},
			{ID: "ac", From: "a", To: "c", Segments: []core.SegmentInput{line(0.5, 1.5), line(1, 1)}},
			{ID: "dc", From: "d", To: "c", Segments: []core.SegmentInput{line(1, 1)}},
		},
	}
	def, err := core.Define(in)
	require.NoError(t, err)

	return def
}

func TestShortest_ArcLength(t *testing.T) {
	res, err := route.Shortest(square(t), route.Source("a"))
	require.NoError(t, err)

	assert.InDelta(t, 0, res.Dist["a"], 1e-12)
	assert.InDelta(t, 1, res.Dist["b"], 1e-12)
	assert.InDelta(t, 2, res.Dist["c"], 1e-12)
	assert.False(t, res.Reached("d"), "dc is followed forward only")

	nodes, edges, err := res.PathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, nodes)
	assert.Equal(t, []string{"ab", "bc"}, edges)

	_, _, err = res.PathTo("d")
	assert.ErrorIs(t, err, route.ErrNoPath)
}

func TestShortest_HopsAndUndirected(t *testing.T) {
	def := square(t)

	res, err := route.Shortest(def, route.Source("a"), route.WithCost(route.Hops))
	require.NoError(t, err)
	_, edges, err := res.PathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"ac"}, edges)

	res, err = route.Shortest(def, route.Source("a"), route.WithUndirected())
	require.NoError(t, err)
	nodes, edges, err := res.PathTo("d")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, nodes)
	assert.Equal(t, []string{"ab", "bc", "dc"}, edges)
	assert.InDelta(t, 3, res.Dist["d"], 1e-12)
}

func TestShortest_MaxDistanceAndWalls(t *testing.T) {
	def := square(t)

	res, err := route.Shortest(def, route.Source("a"), route.WithMaxDistance(1.5))
	require.NoError(t, err)
	assert.True(t, res.Reached("b"))
	assert.False(t, res.Reached("c"))

	wall := func(d *core.Definition, e core.Edge) float64 {
		if e.ID() == "bc" {
			return math.Inf(1)
		}
		return route.Hops(d, e)
	}
	res, err = route.Shortest(def, route.Source("a"), route.WithCost(wall))
	require.NoError(t, err)
	_, edges, err := res.PathTo("c")
	require.NoError(t, err)
	assert.Equal(t, []string{"ac"}, edges)

	assert.Panics(t, func() { route.WithMaxDistance(-1) })
	assert.Panics(t, func() { route.WithMaxDistance(math.NaN()) })
}

func TestShortest_Errors(t *testing.T) {
	def := square(t)

	_, err := route.Shortest(def)
	assert.ErrorIs(t, err, route.ErrEmptySource)
	_, err = route.Shortest(nil, route.Source("a"))
	assert.ErrorIs(t, err, route.ErrDefinitionNil)
	_, err = route.Shortest(def, route.Source("zz"))
	assert.ErrorIs(t, err, route.ErrNodeNotFound)

	negative := func(*core.Definition, core.Edge) float64 { return -1 }
	_, err = route.Shortest(def, route.Source("a"), route.WithCost(negative))
	assert.ErrorIs(t, err, route.ErrNegativeCost)
}

func TestShortest_TiesFollowEdgeOrder(t *testing.T) {
	in := core.DefinitionInput{
		Nodes: []core.NodeInput{
			{ID: "s", Position: core.CoordinateInput{0, 0}},
			{ID: "x", Position: core.CoordinateInput{1, 0}},
			{ID: "y", Position: core.CoordinateInput{0, 1}},
			{ID: "t", Position: core.CoordinateInput{1, 1}},
		},
		Edges: []core.EdgeInput{
			{ID: "sx", From: "s", To: "x", Segments: []core.SegmentInput{line(1, 0)}},
			{ID: "sy", From: "s", To: "y", Segments: []core.SegmentInput{line(0, 1)}},
			{ID: "yt", From: "y", To: "t", Segments: []core.SegmentInput{line(1, 1)}},
			{ID: "xt", From: "x", To: "t", Segments: []core.SegmentInput{line(1, 1)}},
		},
	}
	def := core.MustDefine(in)

	for i := 0; i < 5; i++ {
		res, err := route.Shortest(def, route.Source("s"))
		require.NoError(t, err)
		nodes, _, err := res.PathTo("t")
		require.NoError(t, err)
		assert.Equal(t, []string{"s", "x", "t"}, nodes)
	}
}

func TestLength(t *testing.T) {
	assert.Equal(t, 0.0, route.Length(nil))
	assert.Equal(t, 0.0, route.Length([]geom.Coordinate{geom.C(1, 1)}))
	assert.InDelta(t, 7, route.Length([]geom.Coordinate{geom.C(0, 0), geom.C(3, 4), geom.C(3, 6)}), 1e-12)
}
