// SPDX-License-Identifier: MIT
// Package: linenet/route
//
// types.go - errors, options, costs, and the search result.

package route

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/sampler"
)

var (
	// ErrEmptySource indicates that no source node was given.
	ErrEmptySource = errors.New("route: source node ID is empty")

	// ErrDefinitionNil indicates a nil definition.
	ErrDefinitionNil = errors.New("route: definition is nil")

	// ErrNodeNotFound indicates that a source or destination is not a node.
	ErrNodeNotFound = errors.New("route: node not found")

	// ErrNegativeCost indicates a cost function returned a negative or NaN cost.
	ErrNegativeCost = errors.New("route: negative edge cost")

	// ErrNoPath indicates the destination was not reached.
	ErrNoPath = errors.New("route: no path")

	// ErrBadMaxDistance indicates a negative or NaN distance cap.
	ErrBadMaxDistance = errors.New("route: MaxDistance must be non-negative")
)

// CostFunc returns the cost of traversing e.
type CostFunc func(def *core.Definition, e core.Edge) float64

// ArcLength measures an edge as the length of its sampled polyline.
func ArcLength(samples int) CostFunc {
	return func(def *core.Definition, e core.Edge) float64 {
		return Length(sampler.SampleDefinitionEdge(def, e, samples))
	}
}

// Hops gives every edge cost 1.
func Hops(*core.Definition, core.Edge) float64 { return 1 }

// Options configures Shortest.
type Options struct {
	Source      string
	Cost        CostFunc
	MaxDistance float64 // nodes farther than this are not settled
	Undirected  bool
}

// Option is a functional option for Shortest.
type Option func(*Options)

// DefaultOptions returns arc-length costs with DefaultSamples, no distance
// cap, and directed traversal.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		Cost:        ArcLength(sampler.DefaultSamples),
		MaxDistance: math.Inf(1),
	}
}

// Source sets the start node.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// WithCost replaces the edge cost. nil is ignored.
func WithCost(fn CostFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Cost = fn
		}
	}
}

// WithMaxDistance stops the search beyond max. Panics when max is negative or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(fmt.Sprintf("%v: %g", ErrBadMaxDistance, max))
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithUndirected follows edges in both directions.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// Result holds distances and the shortest-path tree from Source.
type Result struct {
	Source string
	Dist   map[string]float64 // settled nodes only
	Prev   map[string]string  // predecessor node
	Via    map[string]string  // edge used to reach the node
}

// Reached reports whether id was settled.
func (r *Result) Reached(id string) bool {
	_, ok := r.Dist[id]
	return ok
}

// PathTo returns the node and edge sequences from Source to dest.
func (r *Result) PathTo(dest string) (nodes, edges []string, err error) {
	if !r.Reached(dest) {
		return nil, nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	for cur := dest; ; {
		nodes = append(nodes, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		edges = append(edges, r.Via[cur])
		cur = prev
	}
	reverse(nodes)
	reverse(edges)

	return nodes, edges, nil
}

func reverse(s []string) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
