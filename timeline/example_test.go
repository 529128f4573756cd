package timeline_test

import (
	"fmt"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/timeline"
)

// ExampleEvaluator draws a single edge over two beats.
func ExampleEvaluator() {
	def := core.MustDefine(core.DefinitionInput{
		Nodes: []core.NodeInput{
			{ID: "A", Position: core.CoordinateInput{0, 0}},
			{ID: "B", Position: core.CoordinateInput{1, 0}},
		},
		Edges: []core.EdgeInput{
			{ID: "e1", From: "A", To: "B", Segments: []core.SegmentInput{{To: core.CoordinateInput{1, 0}}}},
		},
		Timelines: []core.ClipInput{
			{ID: "c1", TargetType: core.TargetEdge, TargetID: "e1", Action: core.ActionDraw, Length: core.Float(2)},
			{ID: "c2", TargetType: core.TargetNode, TargetID: "B", Action: core.ActionHighlight, Beat: 2},
		},
	})
	ev, _ := timeline.New(def)

	for _, beat := range []float64{0, 1, 2} {
		f := ev.Evaluate(beat)
		fmt.Printf("beat %.0f: e1=%.2f B=%.1f\n", beat, f.Edges[0].Progress, f.Nodes[1].Intensity)
	}
	// Output:
	// beat 0: e1=0.00 B=0.0
	// beat 1: e1=0.50 B=0.0
	// beat 2: e1=1.00 B=1.0
}
