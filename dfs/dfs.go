// SPDX-License-Identifier: MIT
// Package: linenet/dfs
//
// dfs.go - recursive depth-first traversal.

package dfs

import (
	"fmt"

	"github.com/katalvlaran/linenet/core"
)

// walker holds the state of one traversal.
type walker struct {
	adj   map[string][]string
	opts  Options
	state map[string]int
	res   *Result
}

// DFS explores def from start. With FullTraversal every remaining node is
// used as a further root, in definition order.
func DFS(def *core.Definition, start string, opts ...Option) (*Result, error) {
	if def == nil {
		return nil, ErrDefinitionNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !def.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, start)
	}

	n := def.NodeCount()
	w := &walker{
		adj:   successors(def),
		opts:  o,
		state: make(map[string]int, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if err := w.visit(start, 0); err != nil {
		return nil, err
	}
	if o.FullTraversal {
		for _, id := range nodeIDs(def) {
			if w.state[id] != White {
				continue
			}
			if err := w.visit(id, 0); err != nil {
				return nil, err
			}
		}
	}

	return w.res, nil
}

func (w *walker) visit(id string, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.state[id] = Gray
	w.res.Depth[id] = depth
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnVisit(%q): %w", id, err)
		}
	}

	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, next := range w.adj[id] {
			if w.state[next] != White {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(id, next) {
				w.res.Skipped++
				continue
			}
			w.res.Parent[next] = id
			if err := w.visit(next, depth+1); err != nil {
				return err
			}
		}
	}

	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id, depth); err != nil {
			return fmt.Errorf("dfs: OnExit(%q): %w", id, err)
		}
	}
	w.state[id] = Black
	w.res.Order = append(w.res.Order, id)

	return nil
}
