// SPDX-License-Identifier: MIT
// Package: linenet/dfs
//
// types.go - colors, sentinel errors, options, and the traversal result.

package dfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/linenet/core"
)

// Visitation states.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrDefinitionNil is returned when a nil definition is passed.
	ErrDefinitionNil = errors.New("dfs: definition is nil")

	// ErrStartNodeNotFound indicates that the start id is not a node.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected is returned by TopologicalSort when edges loop back.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")
)

// Option configures DFS.
type Option func(*Options)

// Options holds the parameters of one traversal.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit runs on discovery (pre-order). An error aborts the traversal.
	OnVisit func(id string, depth int) error

	// OnExit runs after all descendants are explored (post-order).
	// An error aborts the traversal.
	OnExit func(id string, depth int) error

	// MaxDepth limits recursion when ≥ 0; 0 visits only the start. -1 means no limit.
	MaxDepth int

	// FilterNeighbor skips the hop curr→next when it returns false.
	FilterNeighbor func(curr, next string) bool

	// FullTraversal restarts from every unvisited node in definition order.
	FullTraversal bool

	err error
}

// DefaultOptions returns background context, no hooks, no depth limit,
// no filter, single-source traversal.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the pre-order hook.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithOnExit sets the post-order hook.
func WithOnExit(fn func(id string, depth int) error) Option {
	return func(o *Options) { o.OnExit = fn }
}

// WithMaxDepth limits recursion depth; d < -1 is ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < -1 {
			o.err = fmt.Errorf("%w: MaxDepth must be ≥ -1, got %d", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor installs a hop filter.
func WithFilterNeighbor(fn func(curr, next string) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers every node, not just those reachable from start.
func WithFullTraversal() Option {
	return func(o *Options) { o.FullTraversal = true }
}

// Result is the outcome of DFS.
type Result struct {
	// Order lists nodes in post-order (finish order).
	Order []string

	// Depth is the tree depth at which each node was discovered.
	Depth map[string]int

	// Parent maps each non-root node to its tree parent.
	Parent map[string]string

	// Skipped counts hops rejected by FilterNeighbor.
	Skipped int
}

// Visited reports whether id was discovered.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// successors lists the targets of each node's outgoing edges in edge order,
// skipping edges with an undefined endpoint.
func successors(def *core.Definition) map[string][]string {
	adj := make(map[string][]string, def.NodeCount())
	for _, e := range def.Edges() {
		if def.HasNode(e.From()) && def.HasNode(e.To()) {
			adj[e.From()] = append(adj[e.From()], e.To())
		}
	}

	return adj
}

// nodeIDs returns node ids in definition order.
func nodeIDs(def *core.Definition) []string {
	ids := make([]string, 0, def.NodeCount())
	for _, n := range def.Nodes() {
		ids = append(ids, n.ID())
	}

	return ids
}
