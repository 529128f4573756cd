package dfs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/dfs"
)

// chain builds v0 → v1 → … → vN.
func chain(n int) *core.Definition {
	var in core.DefinitionInput
	for i := 0; i <= n; i++ {
		in.Nodes = append(in.Nodes, core.NodeInput{ID: fmt.Sprintf("v%d", i), Position: core.CoordinateInput{0, 0}})
	}
	for i := 0; i < n; i++ {
		in.Edges = append(in.Edges, core.EdgeInput{
			ID: fmt.Sprintf("e%d", i), From: fmt.Sprintf("v%d", i), To: fmt.Sprintf("v%d", i+1),
			Segments: []core.SegmentInput{{To: core.CoordinateInput{1, 1}}},
		})
	}

	return core.MustDefine(in)
}

func BenchmarkDFS_Chain(b *testing.B) {
	def := chain(2000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(def, "v0")
	}
}

func BenchmarkTopologicalSort_Chain(b *testing.B) {
	def := chain(2000)
	ctx := context.Background()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(ctx, def)
	}
}
