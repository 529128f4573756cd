// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// evaluator.go - per-frame state for every edge and node of a definition.
//
// Contract:
//   - New indexes the definition once; Evaluate is read-only afterwards and
//     safe for concurrent use.
//   - Evaluate does not wrap its beat; EvaluateLooped wraps first.
//   - Frame slices follow definition order, so duplicate ids in a lenient
//     definition each get their own entry.
//
// Complexity: New O(C log C + N + E); Evaluate O(N + E + C).

package timeline

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linenet/core"
)

// Sentinel errors for evaluator construction.
var (
	// ErrNilDefinition is returned when New receives a nil definition.
	ErrNilDefinition = errors.New("timeline: definition is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("timeline: invalid option supplied")
)

// Option configures an Evaluator.
type Option func(*Options)

// Options holds evaluator parameters.
type Options struct {
	// LoopBeats overrides the loop length; 0 means LoopBeats(def).
	LoopBeats float64

	// Easing applies each draw clip's easing to its progress.
	// Off by default: draw progress is linear.
	Easing bool

	err error
}

// DefaultOptions returns linear progress and an inferred loop.
func DefaultOptions() Options { return Options{} }

// WithLoopBeats fixes the loop length. beats must be positive and finite.
func WithLoopBeats(beats float64) Option {
	return func(o *Options) {
		if !(beats > 0) || math.IsInf(beats, 0) {
			o.err = fmt.Errorf("%w: loop beats must be positive and finite (%g)", ErrOptionViolation, beats)
			return
		}
		o.LoopBeats = beats
	}
}

// WithEasing turns clip easing on or off for draw progress.
func WithEasing(on bool) Option {
	return func(o *Options) { o.Easing = on }
}

// EdgeState is one edge at one beat.
type EdgeState struct {
	ID       string  `json:"id"`
	Progress float64 `json:"progress"`
	Active   bool    `json:"active"`
}

// NodeState is one node at one beat.
type NodeState struct {
	ID        string  `json:"id"`
	Intensity float64 `json:"intensity"`
}

// Frame is the full scene state at Beat.
type Frame struct {
	Beat  float64     `json:"beat"`
	Edges []EdgeState `json:"edges"`
	Nodes []NodeState `json:"nodes"`
}

// Edge returns the first state for id.
func (f Frame) Edge(id string) (EdgeState, bool) {
	for _, s := range f.Edges {
		if s.ID == id {
			return s, true
		}
	}

	return EdgeState{}, false
}

// Node returns the first state for id.
func (f Frame) Node(id string) (NodeState, bool) {
	for _, s := range f.Nodes {
		if s.ID == id {
			return s, true
		}
	}

	return NodeState{}, false
}

type edgeTrack struct {
	id        string
	draw      core.Clip
	hasDraw   bool
	secondary []core.Clip
}

type nodeTrack struct {
	id    string
	clips []core.Clip
}

// Evaluator computes frames for one definition.
type Evaluator struct {
	def   *core.Definition
	index *Index
	opts  Options
	loop  float64
	edges  []edgeTrack
	byEdge map[string]int
	nodes  []nodeTrack
}

// New builds an evaluator for def.
func New(def *core.Definition, opts ...Option) (*Evaluator, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	idx := NewIndex(def)
	ev := &Evaluator{
		def:   def,
		index: idx,
		opts:  o,
		loop:  o.LoopBeats,
		edges:  make([]edgeTrack, 0, def.EdgeCount()),
		byEdge: make(map[string]int, def.EdgeCount()),
		nodes:  make([]nodeTrack, 0, def.NodeCount()),
	}
	if ev.loop == 0 {
		ev.loop = LoopBeats(def)
	}
	for _, e := range def.Edges() {
		clips := idx.edges[e.ID()]
		draw, ok := firstDraw(clips)
		if _, seen := ev.byEdge[e.ID()]; !seen {
			ev.byEdge[e.ID()] = len(ev.edges)
		}
		ev.edges = append(ev.edges, edgeTrack{id: e.ID(), draw: draw, hasDraw: ok, secondary: secondary(clips)})
	}
	for _, n := range def.Nodes() {
		ev.nodes = append(ev.nodes, nodeTrack{id: n.ID(), clips: idx.nodes[n.ID()]})
	}

	return ev, nil
}

// Definition returns the evaluated definition.
func (ev *Evaluator) Definition() *core.Definition { return ev.def }

// Index returns the clip index built by New.
func (ev *Evaluator) Index() *Index { return ev.index }

// LoopBeats returns the loop length used by EvaluateLooped.
func (ev *Evaluator) LoopBeats() float64 { return ev.loop }

// Evaluate returns the frame at beat.
func (ev *Evaluator) Evaluate(beat float64) Frame {
	f := Frame{
		Edges: make([]EdgeState, len(ev.edges)),
		Nodes: make([]NodeState, len(ev.nodes)),
	}
	ev.EvaluateInto(beat, &f)

	return f
}

// EvaluateLooped wraps beat into the loop and evaluates it.
func (ev *Evaluator) EvaluateLooped(beat float64) Frame {
	return ev.Evaluate(WrapBeat(beat, ev.loop))
}

// EvaluateInto fills f in place, reusing its slices when large enough.
func (ev *Evaluator) EvaluateInto(beat float64, f *Frame) {
	f.Beat = beat
	if cap(f.Edges) < len(ev.edges) {
		f.Edges = make([]EdgeState, len(ev.edges))
	}
	f.Edges = f.Edges[:len(ev.edges)]
	if cap(f.Nodes) < len(ev.nodes) {
		f.Nodes = make([]NodeState, len(ev.nodes))
	}
	f.Nodes = f.Nodes[:len(ev.nodes)]

	for i := range ev.edges {
		t := &ev.edges[i]
		f.Edges[i] = EdgeState{ID: t.id, Progress: ev.progress(t, beat), Active: AnyActive(t.secondary, beat)}
	}
	for i := range ev.nodes {
		t := &ev.nodes[i]
		f.Nodes[i] = NodeState{ID: t.id, Intensity: NodeIntensity(t.clips, beat)}
	}
}

// EdgeProgress returns the draw progress of edge id at beat.
// Unknown ids and edges without a draw clip report 1.
func (ev *Evaluator) EdgeProgress(id string, beat float64) float64 {
	i, ok := ev.byEdge[id]
	if !ok {
		return 1
	}

	return ev.progress(&ev.edges[i], beat)
}

// EdgeActive reports whether any non-draw clip on edge id covers beat.
func (ev *Evaluator) EdgeActive(id string, beat float64) bool {
	i, ok := ev.byEdge[id]
	if !ok {
		return false
	}

	return AnyActive(ev.edges[i].secondary, beat)
}

// NodeIntensity returns the intensity of node id at beat.
func (ev *Evaluator) NodeIntensity(id string, beat float64) float64 {
	return NodeIntensity(ev.index.nodes[id], beat)
}

// ActiveTargets lists the targets whose clips are active at beat.
func (ev *Evaluator) ActiveTargets(beat float64) Targets {
	return ActiveTargets(ev.def.Timelines(), beat)
}

func (ev *Evaluator) progress(t *edgeTrack, beat float64) float64 {
	if !t.hasDraw {
		return 1
	}
	p := DrawProgress(t.draw, beat)
	if ev.opts.Easing {
		p = Ease(t.draw.Easing(), p)
	}

	return p
}
