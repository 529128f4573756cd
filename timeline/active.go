// SPDX-License-Identifier: MIT
// Package: linenet/timeline
//
// active.go - which targets have a running clip at a beat.
//
// Unlike ClipActive, the window here is half-open, [beat, beat+span), so a
// clip ending exactly where the next begins is not reported twice.

package timeline

import "github.com/katalvlaran/linenet/core"

// Targets holds the ids with at least one running clip, without duplicates,
// in clip order.
type Targets struct {
	Nodes []string `json:"nodes"`
	Edges []string `json:"edges"`
}

// Has reports whether id of type t is in the set.
func (ts Targets) Has(t core.TargetType, id string) bool {
	var list []string
	switch t {
	case core.TargetNode:
		list = ts.Nodes
	case core.TargetEdge:
		list = ts.Edges
	}
	for _, v := range list {
		if v == id {
			return true
		}
	}

	return false
}

// ActiveTargets collects the targets of clips running at beat.
func ActiveTargets(clips []core.Clip, beat float64) Targets {
	var ts Targets
	seenNodes := make(map[string]struct{})
	seenEdges := make(map[string]struct{})
	for _, c := range clips {
		if beat < c.Beat() || beat >= c.End() {
			continue
		}
		switch c.TargetType() {
		case core.TargetNode:
			if _, dup := seenNodes[c.TargetID()]; !dup {
				seenNodes[c.TargetID()] = struct{}{}
				ts.Nodes = append(ts.Nodes, c.TargetID())
			}
		case core.TargetEdge:
			if _, dup := seenEdges[c.TargetID()]; !dup {
				seenEdges[c.TargetID()] = struct{}{}
				ts.Edges = append(ts.Edges, c.TargetID())
			}
		}
	}

	return ts
}
