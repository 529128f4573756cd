// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// index.go - clips grouped by target and sorted by start beat.
//
// Complexity: NewIndex is O(C log C) for C clips; lookups are O(1) plus the
// size of the returned copy.

package timeline

import (
	"sort"

	"github.com/katalvlaran/linenet/core"
)

// Index maps node and edge ids to their clips, ascending by beat.
// Clips with an unrecognized target type (possible in lenient definitions)
// are left out.
type Index struct {
	edges map[string][]core.Clip
	nodes map[string][]core.Clip
}

// NewIndex groups the clips of def by target.
func NewIndex(def *core.Definition) *Index {
	return IndexClips(def.Timelines())
}

// IndexClips groups clips by target. Equal beats keep their input order.
func IndexClips(clips []core.Clip) *Index {
	idx := &Index{
		edges: make(map[string][]core.Clip),
		nodes: make(map[string][]core.Clip),
	}
	for _, c := range clips {
		switch c.TargetType() {
		case core.TargetEdge:
			idx.edges[c.TargetID()] = append(idx.edges[c.TargetID()], c)
		case core.TargetNode:
			idx.nodes[c.TargetID()] = append(idx.nodes[c.TargetID()], c)
		}
	}
	for _, group := range []map[string][]core.Clip{idx.edges, idx.nodes} {
		for _, list := range group {
			sort.SliceStable(list, func(i, j int) bool { return list[i].Beat() < list[j].Beat() })
		}
	}

	return idx
}

// EdgeClips returns a copy of the clips targeting edge id.
func (x *Index) EdgeClips(id string) []core.Clip { return cloneClips(x.edges[id]) }

// NodeClips returns a copy of the clips targeting node id.
func (x *Index) NodeClips(id string) []core.Clip { return cloneClips(x.nodes[id]) }

// DrawClip returns the earliest "draw" clip on edge id.
func (x *Index) DrawClip(id string) (core.Clip, bool) {
	return firstDraw(x.edges[id])
}

// SecondaryClips returns the non-"draw" clips on edge id.
func (x *Index) SecondaryClips(id string) []core.Clip {
	return secondary(x.edges[id])
}

func firstDraw(clips []core.Clip) (core.Clip, bool) {
	for _, c := range clips {
		if c.Action() == core.ActionDraw {
			return c, true
		}
	}

	return core.Clip{}, false
}

func secondary(clips []core.Clip) []core.Clip {
	var out []core.Clip
	for _, c := range clips {
		if c.Action() != core.ActionDraw {
			out = append(out, c)
		}
	}

	return out
}

func cloneClips(clips []core.Clip) []core.Clip {
	if len(clips) == 0 {
		return nil
	}
	out := make([]core.Clip, len(clips))
	copy(out, clips)

	return out
}
