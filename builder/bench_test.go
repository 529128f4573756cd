package builder_test

import (
	"testing"

	"github.com/katalvlaran/linenet/builder"
)

func BenchmarkSynthwaveHorizon(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.SynthwaveHorizon(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCascadeGrid(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := builder.BuildInput(nil, builder.Grid(16, 16), builder.Cascade("0,0", 0.25)); err != nil {
			b.Fatal(err)
		}
	}
}
