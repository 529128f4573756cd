// SPDX-License-Identifier: MIT
// Package: linenet/dfs
//
// topological.go - topological order of a definition's nodes.
//
// The result lists every node such that each edge from→to has from before
// to. Roots are tried in definition order and successors in edge order, so
// the output is deterministic.
//
// Complexity: O(V + E) time, O(V) memory.

package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linenet/core"
)

type topoSorter struct {
	ctx   context.Context
	adj   map[string][]string
	state map[string]int
	order []string
}

// TopologicalSort returns a forward order of all nodes in def, or
// ErrCycleDetected naming the node that closed a loop. A self-loop edge is
// a cycle.
func TopologicalSort(ctx context.Context, def *core.Definition) ([]string, error) {
	if def == nil {
		return nil, ErrDefinitionNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	ids := nodeIDs(def)
	t := &topoSorter{
		ctx:   ctx,
		adj:   successors(def),
		state: make(map[string]int, len(ids)),
		order: make([]string, 0, len(ids)),
	}
	for _, id := range ids {
		if t.state[id] == White {
			if err := t.visit(id); err != nil {
				return nil, err
			}
		}
	}

	// Reverse post-order.
	for i, j := 0, len(t.order)-1; i < j; i, j = i+1, j-1 {
		t.order[i], t.order[j] = t.order[j], t.order[i]
	}

	return t.order, nil
}

func (t *topoSorter) visit(id string) error {
	select {
	case <-t.ctx.Done():
		return t.ctx.Err()
	default:
	}

	switch t.state[id] {
	case Gray:
		return fmt.Errorf("%w at %q", ErrCycleDetected, id)
	case Black:
		return nil
	}
	t.state[id] = Gray
	for _, next := range t.adj[id] {
		if err := t.visit(next); err != nil {
			return err
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
