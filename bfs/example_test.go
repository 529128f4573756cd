package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/linenet/bfs"
	"github.com/katalvlaran/linenet/core"
)

// ExampleBFS layers a small hub network by hop count from the hub.
func ExampleBFS() {
	seg := []core.SegmentInput{{To: core.CoordinateInput{0.5, 0.5}}}
	def := core.MustDefine(core.DefinitionInput{
		Nodes: []core.NodeInput{
			{ID: "hub", Position: core.CoordinateInput{0.5, 0.5}},
			{ID: "north", Position: core.CoordinateInput{0.5, 0.1}},
			{ID: "south", Position: core.CoordinateInput{0.5, 0.9}},
			{ID: "far", Position: core.CoordinateInput{0.9, 0.1}},
		},
		Edges: []core.EdgeInput{
			{ID: "hn", From: "hub", To: "north", Segments: seg},
			{ID: "hs", From: "hub", To: "south", Segments: seg},
			{ID: "nf", From: "north", To: "far", Segments: seg},
		},
	})

	res, err := bfs.BFS(def, "hub")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, id := range res.Order {
		fmt.Printf("%s depth=%d via=%q\n", id, res.Depth[id], res.Via[id])
	}
	// Output:
	// hub depth=0 via=""
	// north depth=1 via="hn"
	// south depth=1 via="hs"
	// far depth=2 via="nf"
}
