// SPDX-License-Identifier: MIT
// Package: linenet/bfs
//
// bfs.go - the traversal.

package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/linenet/core"
)

// hop is one outgoing step: target node and the edge taken.
type hop struct {
	to   string
	edge string
}

// queueItem pairs a node ID with its depth.
type queueItem struct {
	id    string
	depth int
}

// walker holds mutable BFS state.
type walker struct {
	adj     map[string][]hop
	opts    Options
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on def from root.
func BFS(def *core.Definition, root string, opts ...Option) (*Result, error) {
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
	if !def.HasNode(root) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, root)
	}

	n := def.NodeCount()
	w := &walker{
		adj:     adjacency(def, o.Undirected),
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Via:    make(map[string]string, n),
		},
	}
	w.enqueue(root, 0, "", "")

	return w.res, w.loop()
}

// adjacency lists hops per node in edge order, skipping edges with
// undefined endpoints.
func adjacency(def *core.Definition, undirected bool) map[string][]hop {
	adj := make(map[string][]hop, def.NodeCount())
	for _, e := range def.Edges() {
		if !def.HasNode(e.From()) || !def.HasNode(e.To()) {
			continue
		}
		adj[e.From()] = append(adj[e.From()], hop{to: e.To(), edge: e.ID()})
		if undirected && e.From() != e.To() {
			adj[e.To()] = append(adj[e.To()], hop{to: e.From(), edge: e.ID()})
		}
	}

	return adj
}

func (w *walker) enqueue(id string, d int, parent, via string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
		w.res.Via[id] = via
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.id, item.depth)

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		w.expand(item)
	}

	return nil
}

// expand enqueues every unseen, unfiltered neighbor within MaxDepth.
func (w *walker) expand(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, h := range w.adj[item.id] {
		if w.visited[h.to] || !w.opts.FilterNeighbor(item.id, h.to) {
			continue
		}
		w.enqueue(h.to, next, item.id, h.edge)
	}
}
