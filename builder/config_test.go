// Unit tests for builderConfig and the BuilderOption constructors.
package builder

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linenet/core"
)

// TestConfigDefaults checks the documented defaults.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.weightFn != nil || cfg.weight() != nil {
		t.Errorf("default weight: expected unset")
	}
	if !cfg.timelines || cfg.arrival != core.ActionPulse || cfg.margin != defaultMargin {
		t.Errorf("defaults: timelines=%v arrival=%q margin=%g", cfg.timelines, cfg.arrival, cfg.margin)
	}
	if cfg.staggerOr(0.3) != 0.3 || cfg.lengthOr(2) != 2 {
		t.Errorf("unset stagger/length should fall back to the constructor's own")
	}
	if w := cfg.weightOr(WeightGrid); w == nil || *w != WeightGrid {
		t.Errorf("weightOr: expected %g, got %v", WeightGrid, w)
	}
}

// TestOptionsOverride checks that later options win.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs())
	if got := cfg.idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}

	cfg = newBuilderConfig(
		WithStagger(0.25), WithStagger(0),
		WithClipLength(3),
		WithStartBeat(4),
		WithTimelines(false),
		WithArrival(core.ActionHighlight),
		WithMargin(0),
		WithConstantWeight(2),
	)
	if cfg.staggerOr(9) != 0 {
		t.Errorf("WithStagger(0): expected 0, got %g", cfg.staggerOr(9))
	}
	if cfg.lengthOr(9) != 3 || cfg.startBeat != 4 {
		t.Errorf("length=%g start=%g; want 3, 4", cfg.lengthOr(9), cfg.startBeat)
	}
	if cfg.timelines || cfg.arrival != core.ActionHighlight || cfg.margin != 0 {
		t.Errorf("timelines=%v arrival=%q margin=%g", cfg.timelines, cfg.arrival, cfg.margin)
	}
	if w := cfg.weight(); w == nil || *w != 2 {
		t.Errorf("WithConstantWeight(2): got %v", w)
	}
}

// TestRNGOptions checks WithRand identity and WithSeed reproducibility.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(123))
	if cfg := newBuilderConfig(WithRand(r)); cfg.rng != r {
		t.Errorf("WithRand: rng not installed")
	}

	a, b := newBuilderConfig(WithSeed(42)), newBuilderConfig(WithSeed(42))
	for i := 0; i < 3; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("WithSeed(42) draw %d: %d != %d", i, x, y)
		}
	}
}

// TestOptionPanics checks that meaningless option arguments panic.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"WithIDScheme(nil)":  func() { WithIDScheme(nil) },
		"WithRand(nil)":      func() { WithRand(nil) },
		"WithWeightFn(nil)":  func() { WithWeightFn(nil) },
		"WithStagger(-1)":    func() { WithStagger(-1) },
		"WithClipLength(0)":  func() { WithClipLength(0) },
		"WithStartBeat(NaN)": func() { WithStartBeat(math.NaN()) },
		"WithArrival(\"\")":  func() { WithArrival("") },
		"WithMargin(0.5)":    func() { WithMargin(0.5) },
		"WithMargin(-0.1)":   func() { WithMargin(-0.1) },
	}
	for name, fn := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}
