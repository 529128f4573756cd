// SPDX-License-Identifier: MIT
// Package: linenet/sampler
//
// sampler.go - cached polylines for a whole definition and per-frame strokes.
//
// Contract:
//   - New samples every edge once; the definition is immutable, so the cache
//     never goes stale.
//   - Strokes and Partial return fresh slices; the cache is never exposed.
//
// Complexity: New O(E·S·n) for E edges, S segments, n samples; Strokes
// O(total points) per frame.

package sampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
	"github.com/katalvlaran/linenet/timeline"
)

// ErrNilDefinition is returned when New receives a nil definition.
var ErrNilDefinition = errors.New("sampler: definition is nil")

// Option configures a Sampler.
type Option func(*config)

type config struct {
	samples  int
	viewport geom.Viewport
	depth    float64
	scale    float64
	base     float64
	tracer   float64
}

func defaultConfig() config {
	return config{
		samples:  DefaultSamples,
		viewport: geom.Viewport{Width: 1, Height: 1},
		scale:    1,
		base:     GridWidth,
		tracer:   TracerWidth,
	}
}

// WithSamples sets the per-segment sample count for curves. Panics if n < 1.
func WithSamples(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("sampler: WithSamples(%d): need at least 1", n))
	}

	return func(c *config) { c.samples = n }
}

// WithViewport sets the renderer plane size. Panics on non-positive or
// non-finite sizes.
func WithViewport(width, height float64) Option {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		panic(fmt.Sprintf("sampler: WithViewport(%g, %g): size must be positive and finite", width, height))
	}

	return func(c *config) { c.viewport = geom.Viewport{Width: width, Height: height} }
}

// WithDepth sets the z of projected points.
func WithDepth(z float64) Option {
	return func(c *config) { c.depth = z }
}

// WithLineWidth sets the LineWidth parameters used for strokes.
func WithLineWidth(scale, base, tracer float64) Option {
	return func(c *config) { c.scale, c.base, c.tracer = scale, base, tracer }
}

// Stroke is one edge ready to draw.
type Stroke struct {
	EdgeID   string      `json:"edgeId"`
	Points   []geom.Vec3 `json:"points"`
	Width    float64     `json:"width"`
	Progress float64     `json:"progress"`
	Active   bool        `json:"active"`
}

type edgeCache struct {
	id        string
	weight    float64
	normal    []geom.Coordinate
	projected []geom.Vec3
}

// Sampler holds the sampled polylines of one definition.
type Sampler struct {
	cfg   config
	edges []edgeCache
	byID  map[string]int
}

// New samples every edge of def.
func New(def *core.Definition, opts ...Option) (*Sampler, error) {
	if def == nil {
		return nil, ErrNilDefinition
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Sampler{
		cfg:   cfg,
		edges: make([]edgeCache, 0, def.EdgeCount()),
		byID:  make(map[string]int, def.EdgeCount()),
	}
	for _, e := range def.Edges() {
		pts := SampleDefinitionEdge(def, e, cfg.samples)
		if _, dup := s.byID[e.ID()]; !dup {
			s.byID[e.ID()] = len(s.edges)
		}
		s.edges = append(s.edges, edgeCache{
			id:        e.ID(),
			weight:    e.Weight(),
			normal:    pts,
			projected: cfg.viewport.ProjectAll(pts, cfg.depth),
		})
	}

	return s, nil
}

// Samples returns the per-segment sample count in use.
func (s *Sampler) Samples() int { return s.cfg.samples }

// Edge returns a copy of the normalized polyline of edge id.
func (s *Sampler) Edge(id string) ([]geom.Coordinate, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return append([]geom.Coordinate(nil), s.edges[i].normal...), true
}

// Projected returns a copy of the projected polyline of edge id.
func (s *Sampler) Projected(id string) ([]geom.Vec3, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return append([]geom.Vec3(nil), s.edges[i].projected...), true
}

// Partial returns the projected polyline of edge id truncated to progress.
func (s *Sampler) Partial(id string, progress float64) ([]geom.Vec3, bool) {
	i, ok := s.byID[id]
	if !ok {
		return nil, false
	}

	return PartialPoints(s.edges[i].projected, progress), true
}

// Strokes pairs a timeline frame with the cached polylines. Edges are
// matched by position, so f must come from an evaluator over the same
// definition.
func (s *Sampler) Strokes(f timeline.Frame) []Stroke {
	out := make([]Stroke, 0, len(s.edges))
	for i, ec := range s.edges {
		st := Stroke{EdgeID: ec.id, Progress: 1}
		if i < len(f.Edges) && f.Edges[i].ID == ec.id {
			st.Progress = f.Edges[i].Progress
			st.Active = f.Edges[i].Active
		}
		st.Points = PartialPoints(ec.projected, st.Progress)
		st.Width = LineWidth(ec.weight, s.cfg.scale, s.cfg.base, s.cfg.tracer)
		out = append(out, st)
	}

	return out
}
