package dfs_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/dfs"
)

// network builds a definition from "from>to" pairs; edge i is named e<i>.
// Extra isolated nodes can be listed without '>'.
func network(t testing.TB, pairs ...string) *core.Definition {
	t.Helper()
	var in core.DefinitionInput
	seen := map[string]bool{}
	addNode := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		in.Nodes = append(in.Nodes, core.NodeInput{ID: id, Position: core.CoordinateInput{0.5, 0.5}})
	}
	for i, p := range pairs {
		from, to, ok := strings.Cut(p, ">")
		addNode(from)
		if !ok {
			continue
		}
		addNode(to)
		in.Edges = append(in.Edges, core.EdgeInput{
			ID: fmt.Sprintf("e%d", i), From: from, To: to,
			Segments: []core.SegmentInput{{To: core.CoordinateInput{0.5, 0.5}}},
		})
	}

	def, err := core.Define(in)
	require.NoError(t, err)

	return def
}

func TestDFS_Errors(t *testing.T) {
	_, err := dfs.DFS(nil, "A")
	assert.ErrorIs(t, err, dfs.ErrDefinitionNil)

	def := network(t, "A>B")
	_, err = dfs.DFS(def, "Z")
	assert.ErrorIs(t, err, dfs.ErrStartNodeNotFound)
	_, err = dfs.DFS(def, "A", dfs.WithMaxDepth(-2))
	assert.ErrorIs(t, err, dfs.ErrOptionViolation)
}

func TestDFS_OrderAndDepth(t *testing.T) {
	def := network(t, "A>B", "B>C", "A>D", "D>C", "X")

	res, err := dfs.DFS(def, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D", "A"}, res.Order)
	assert.Equal(t, 2, res.Depth["C"])
	assert.Equal(t, "B", res.Parent["C"])
	assert.False(t, res.Visited("X"))

	full, err := dfs.DFS(def, "A", dfs.WithFullTraversal())
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "B", "D", "A", "X"}, full.Order)
	assert.Equal(t, 0, full.Depth["X"])
}

func TestDFS_HooksDepthFilter(t *testing.T) {
	def := network(t, "A>B", "B>C", "A>D")

	var pre, post []string
	res, err := dfs.DFS(def, "A",
		dfs.WithOnVisit(func(id string, _ int) error { pre = append(pre, id); return nil }),
		dfs.WithOnExit(func(id string, _ int) error { post = append(post, id); return nil }),
		dfs.WithMaxDepth(1),
		dfs.WithFilterNeighbor(func(_, next string) bool { return next != "D" }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, pre)
	assert.Equal(t, []string{"B", "A"}, post)
	assert.Equal(t, 1, res.Skipped)

	stop := errors.New("stop")
	_, err = dfs.DFS(def, "A", dfs.WithOnVisit(func(id string, _ int) error {
		if id == "C" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestDFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.DFS(network(t, "A>B"), "A", dfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTopologicalSort(t *testing.T) {
	def := network(t, "C>D", "A>B", "B>C", "A>C", "E")

	order, err := dfs.TopologicalSort(context.Background(), def)
	require.NoError(t, err)
	require.Len(t, order, 5)
	pos := map[string]int{}
	for i, id := range order {
		pos[id] = i
	}
	for _, e := range def.Edges() {
		assert.Less(t, pos[e.From()], pos[e.To()], e.ID())
	}

	_, err = dfs.TopologicalSort(context.Background(), network(t, "A>B", "B>C", "C>A"))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	_, err = dfs.TopologicalSort(context.Background(), network(t, "A>A"))
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	_, err = dfs.TopologicalSort(context.Background(), nil)
	assert.ErrorIs(t, err, dfs.ErrDefinitionNil)
}

func TestDetectCycles(t *testing.T) {
	has, cycles := dfs.DetectCycles(network(t, "A>B", "B>C", "A>C"))
	assert.False(t, has)
	assert.Nil(t, cycles)

	has, cycles = dfs.DetectCycles(network(t, "C>A", "A>B", "B>C", "B>B", "D>E", "E>D"))
	require.True(t, has)
	assert.Equal(t, [][]string{
		{"A", "B", "C", "A"},
		{"B", "B"},
		{"D", "E", "D"},
	}, cycles)

	has, _ = dfs.DetectCycles(nil)
	assert.False(t, has)
}

func TestSkipsDanglingEdges(t *testing.T) {
	in := core.DefinitionInput{
		Nodes: []core.NodeInput{{ID: "A", Position: core.CoordinateInput{0, 0}}},
		Edges: []core.EdgeInput{{ID: "e", From: "A", To: "ghost", Segments: []core.SegmentInput{{To: core.CoordinateInput{1, 1}}}}},
	}
	def, err := core.Define(in, core.Lenient())
	require.NoError(t, err)

	res, err := dfs.DFS(def, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	order, err := dfs.TopologicalSort(context.Background(), def)
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, order)
}
