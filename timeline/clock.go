// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// clock.go - wall time to beats.

package timeline

import "time"

// DefaultBPM is the tempo used by the zero Clock.
const DefaultBPM = 120.0

// Clock converts elapsed wall time to beats.
//
// BPM ≤ 0 means DefaultBPM. Tempo scales playback speed; 0 means 1.
type Clock struct {
	BPM   float64
	Tempo float64
}

// NewClock returns a Clock at bpm with unit tempo.
func NewClock(bpm float64) Clock { return Clock{BPM: bpm, Tempo: 1} }

func (c Clock) bpm() float64 {
	if c.BPM > 0 {
		return c.BPM
	}

	return DefaultBPM
}

func (c Clock) tempo() float64 {
	if c.Tempo == 0 {
		return 1
	}

	return c.Tempo
}

// BeatDuration is the wall time of one beat at the clock's tempo.
func (c Clock) BeatDuration() time.Duration {
	return time.Duration(float64(time.Minute) / c.bpm() / c.tempo())
}

// BeatMillis is 60000/BPM, the unscaled beat length in milliseconds.
func (c Clock) BeatMillis() float64 { return 60000 / c.bpm() }

// Beat converts elapsed time to a (possibly fractional) beat.
func (c Clock) Beat(elapsed time.Duration) float64 {
	return elapsed.Minutes() * c.bpm() * c.tempo()
}

// LoopBeat converts elapsed time to a beat wrapped into [0, loop).
func (c Clock) LoopBeat(elapsed time.Duration, loop float64) float64 {
	return WrapBeat(c.Beat(elapsed), loop)
}
