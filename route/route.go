// SPDX-License-Identifier: MIT
// Package: linenet/route
//
// route.go - Dijkstra over definition edges.
//
// Costs are computed once per edge before the search; a negative or NaN cost
// fails fast. Ties are broken by push order so results are deterministic
// for a given definition. Stale heap entries are skipped on pop
// (lazy decrease-key).

package route

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/linenet/core"
)

type arc struct {
	to   string
	edge string
	cost float64
}

// Shortest computes cheapest routes from the Source option to every
// reachable node of def.
func Shortest(def *core.Definition, opts ...Option) (*Result, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if def == nil {
		return nil, ErrDefinitionNil
	}
	if !def.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, cfg.Source)
	}

	adj, err := arcs(def, cfg)
	if err != nil {
		return nil, err
	}

	r := &runner{
		adj:  adj,
		max:  cfg.MaxDistance,
		best: make(map[string]float64, def.NodeCount()),
		res: &Result{
			Source: cfg.Source,
			Dist:   make(map[string]float64, def.NodeCount()),
			Prev:   make(map[string]string, def.NodeCount()),
			Via:    make(map[string]string, def.NodeCount()),
		},
	}
	r.run(cfg.Source)

	return r.res, nil
}

// arcs prices every traversable edge.
func arcs(def *core.Definition, cfg Options) (map[string][]arc, error) {
	adj := make(map[string][]arc, def.NodeCount())
	for _, e := range def.Edges() {
		if !def.HasNode(e.From()) || !def.HasNode(e.To()) {
			continue
		}
		c := cfg.Cost(def, e)
		if c < 0 || math.IsNaN(c) {
			return nil, fmt.Errorf("%w: edge %q cost=%g", ErrNegativeCost, e.ID(), c)
		}
		if math.IsInf(c, 1) {
			continue
		}
		adj[e.From()] = append(adj[e.From()], arc{to: e.To(), edge: e.ID(), cost: c})
		if cfg.Undirected && e.From() != e.To() {
			adj[e.To()] = append(adj[e.To()], arc{to: e.From(), edge: e.ID(), cost: c})
		}
	}

	return adj, nil
}

type runner struct {
	adj  map[string][]arc
	max  float64
	best map[string]float64
	pq   nodePQ
	seq  int
	res  *Result
}

func (r *runner) push(id string, dist float64) {
	r.best[id] = dist
	heap.Push(&r.pq, &nodeItem{id: id, dist: dist, seq: r.seq})
	r.seq++
}

func (r *runner) run(source string) {
	r.push(source, 0)
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if _, done := r.res.Dist[item.id]; done {
			continue
		}
		if item.dist > r.max {
			return
		}
		r.res.Dist[item.id] = item.dist

		for _, a := range r.adj[item.id] {
			if _, done := r.res.Dist[a.to]; done {
				continue
			}
			nd := item.dist + a.cost
			if old, seen := r.best[a.to]; seen && nd >= old {
				continue
			}
			r.res.Prev[a.to] = item.id
			r.res.Via[a.to] = a.edge
			r.push(a.to, nd)
		}
	}
}

// nodeItem is a heap entry; seq breaks distance ties.
type nodeItem struct {
	id   string
	dist float64
	seq  int
}

type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
