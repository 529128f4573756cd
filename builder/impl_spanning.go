// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// impl_spanning.go - implementation of SpanningLinks().
//
// SpanningLinks joins the draft into one piece with the shortest straight
// links it can: Kruskal over every node pair, priced by Euclidean distance,
// where edges already in the draft count as free unions (direction ignored).
// Each added link runs from the earlier node to the later one in draft order.
//
// Contract:
//   - An empty or already connected draft is left unchanged.
//   - Ties keep pair order (i<j, i ascending), so output is deterministic.
//   - Draw clips follow link order, stagger default 0.25 beat, length 1.
//
// Complexity: O(n² log n) for n nodes.

package builder

import (
	"sort"

	"github.com/katalvlaran/linenet/geom"
)

const (
	spanningStagger = 0.25
	spanningLength  = 1.0
)

type link struct {
	from, to string
	dist     float64
}

// SpanningLinks returns a Constructor that adds minimum-length links until
// every node is connected.
func SpanningLinks() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		in := d.Input()
		n := len(in.Nodes)
		if n < 2 {
			return nil
		}

		ds := newDisjointSet(n)
		index := make(map[string]int, n)
		pos := make([]geom.Coordinate, n)
		for i, node := range in.Nodes {
			index[node.ID] = i
			pos[i], _ = d.NodePosition(node.ID)
		}
		for _, e := range in.Edges {
			ds.union(index[e.From], index[e.To])
		}

		links := make([]link, 0, n*(n-1)/2)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				links = append(links, link{from: in.Nodes[i].ID, to: in.Nodes[j].ID, dist: pos[i].Distance(pos[j])})
			}
		}
		sort.SliceStable(links, func(a, b int) bool { return links[a].dist < links[b].dist })

		step, length := cfg.staggerOr(spanningStagger), cfg.lengthOr(spanningLength)
		added := 0
		for _, l := range links {
			if ds.sets == 1 {
				break
			}
			if !ds.union(index[l.from], index[l.to]) {
				continue
			}
			if err := addLine(MethodSpanningLinks, d, cfg, l.from, l.to, cfg.weight(), float64(added)*step, length); err != nil {
				return err
			}
			added++
		}

		return nil
	}
}

// disjointSet is union-find with path halving and union by rank.
type disjointSet struct {
	parent []int
	rank   []int
	sets   int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), rank: make([]int, n), sets: n}
	for i := range ds.parent {
		ds.parent[i] = i
	}

	return ds
}

func (ds *disjointSet) find(u int) int {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet) union(u, v int) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	if ds.rank[ru] < ds.rank[rv] {
		ru, rv = rv, ru
	}
	ds.parent[rv] = ru
	if ds.rank[ru] == ds.rank[rv] {
		ds.rank[ru]++
	}
	ds.sets--

	return true
}
