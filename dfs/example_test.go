package dfs_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linenet/builder"
	"github.com/katalvlaran/linenet/dfs"
)

// ExampleTopologicalSort orders the synthwave network so every edge points forward.
func ExampleTopologicalSort() {
	def, err := builder.SynthwaveNetwork()
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	order, err := dfs.TopologicalSort(context.Background(), def)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	has, _ := dfs.DetectCycles(def)
	fmt.Println("cycles:", has)
	// Output:
	// [origin downtown spire catalyst relay horizon uplink]
	// cycles: false
}
