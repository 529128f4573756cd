// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// loop.go - loop length inference and beat wrapping.

package timeline

import (
	"math"

	"github.com/katalvlaran/linenet/core"
)

// DefaultLoopBeats is the loop length used when there are no clips to infer one from.
const DefaultLoopBeats = 8.0

// MetaLoopBeats is the definition meta key that overrides the inferred loop.
const MetaLoopBeats = "loopBeats"

// WrapBeat maps beat into [0, loop). Negative beats wrap from the end.
// A non-positive or NaN loop returns beat unchanged.
func WrapBeat(beat, loop float64) float64 {
	if !(loop > 0) || math.IsInf(loop, 1) {
		return beat
	}
	w := math.Mod(beat, loop)
	if w < 0 {
		w += loop
	}
	// -tiny mod loop + loop rounds to loop itself.
	if w >= loop {
		w = 0
	}

	return w
}

// SequenceLength returns the largest clip end among clips, or
// DefaultLoopBeats when clips is empty or no clip ends after beat 0.
func SequenceLength(clips []core.Clip) float64 {
	longest := 0.0
	for _, c := range clips {
		if end := c.End(); end > longest {
			longest = end
		}
	}
	if longest > 0 {
		return longest
	}

	return DefaultLoopBeats
}

// LoopBeats returns the loop length of def: a positive, finite numeric
// meta "loopBeats" when present, else SequenceLength of its clips.
func LoopBeats(def *core.Definition) float64 {
	if v, ok := def.MetaValue(MetaLoopBeats); ok {
		if f, ok := toFloat(v); ok && f > 0 && !math.IsInf(f, 0) {
			return f
		}
	}

	return SequenceLength(def.Timelines())
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, !math.IsNaN(n)
	case float32:
		return float64(n), !math.IsNaN(float64(n))
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
