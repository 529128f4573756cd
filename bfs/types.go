// SPDX-License-Identifier: MIT
// Package: linenet/bfs
//
// types.go - options, sentinel errors, and the traversal result.

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the root id is not a node.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrDefinitionNil is returned if a nil definition pointer is passed.
	ErrDefinitionNil = errors.New("bfs: definition is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS runs.
type Option func(*Options)

// Options holds parameters and callbacks for one traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a node is enqueued with its depth.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before visiting a node.
	OnDequeue func(id string, depth int)

	// OnVisit is called when visiting a node. A non-nil error aborts BFS.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth. 0 means no limit.
	MaxDepth int

	// FilterNeighbor skips the hop curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	// Undirected follows edges in both directions.
	Undirected bool

	err error
}

// DefaultOptions returns background context, no-op hooks, no depth limit,
// no filtering, and directed traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int) {},
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; an error stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond depth d.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// WithUndirected follows every edge in both directions.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}

// Result holds the outcome of a traversal.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	Via    map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the node path from the root to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
