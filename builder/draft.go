// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// draft.go - the mutable scene that constructors write into.
//
// A Draft only grows. It keeps nodes, edges, and clips in insertion order so
// that the resulting definition is deterministic for a fixed constructor order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/linenet/core"
	"github.com/katalvlaran/linenet/geom"
)

// Draft accumulates raw scene input.
type Draft struct {
	in    core.DefinitionInput
	nodes map[string]int
	edges map[string]int
}

// NewDraft returns an empty draft.
func NewDraft() *Draft {
	return &Draft{
		nodes: make(map[string]int),
		edges: make(map[string]int),
	}
}

// AddNode adds a node at pos. Re-adding an id at the same position is a
// no-op; at another position it is ErrDuplicateID.
func (d *Draft) AddNode(id string, pos geom.Coordinate, label string) error {
	if i, ok := d.nodes[id]; ok {
		if old := d.in.Nodes[i].Position; len(old) == 2 && old[0] == pos[0] && old[1] == pos[1] {
			return nil
		}
		return fmt.Errorf("node %q: %w", id, ErrDuplicateID)
	}
	d.nodes[id] = len(d.in.Nodes)
	d.in.Nodes = append(d.in.Nodes, core.NodeInput{
		ID:       id,
		Position: core.CoordinateInput{pos[0], pos[1]},
		Label:    label,
	})

	return nil
}

// HasNode reports whether id was added.
func (d *Draft) HasNode(id string) bool {
	_, ok := d.nodes[id]
	return ok
}

// NodePosition returns the position of node id.
func (d *Draft) NodePosition(id string) (geom.Coordinate, bool) {
	i, ok := d.nodes[id]
	if !ok {
		return geom.Coordinate{}, false
	}
	p := d.in.Nodes[i].Position

	return geom.C(p[0], p[1]), true
}

// AddEdge adds an edge between existing nodes. weight may be nil.
func (d *Draft) AddEdge(id, from, to string, segments []core.SegmentInput, weight *float64) error {
	if _, dup := d.edges[id]; dup {
		return fmt.Errorf("edge %q: %w", id, ErrDuplicateID)
	}
	for _, end := range []string{from, to} {
		if !d.HasNode(end) {
			return fmt.Errorf("edge %q: endpoint %q: %w", id, end, ErrUnknownNode)
		}
	}
	d.edges[id] = len(d.in.Edges)
	d.in.Edges = append(d.in.Edges, core.EdgeInput{
		ID: id, From: from, To: to,
		Segments: segments,
		Weight:   weight,
	})

	return nil
}

// AddLine adds an edge drawn as a straight line to the "to" node's position.
func (d *Draft) AddLine(id, from, to string, weight *float64) error {
	end, ok := d.NodePosition(to)
	if !ok {
		return fmt.Errorf("edge %q: endpoint %q: %w", id, to, ErrUnknownNode)
	}

	return d.AddEdge(id, from, to, []core.SegmentInput{line(end)}, weight)
}

// HasEdge reports whether id was added.
func (d *Draft) HasEdge(id string) bool {
	_, ok := d.edges[id]
	return ok
}

// AddClip appends a clip. Targets are checked by core.Define.
func (d *Draft) AddClip(c core.ClipInput) {
	d.in.Timelines = append(d.in.Timelines, c)
}

// RemoveClips drops every clip for which drop returns true.
func (d *Draft) RemoveClips(drop func(core.ClipInput) bool) {
	kept := d.in.Timelines[:0]
	for _, c := range d.in.Timelines {
		if !drop(c) {
			kept = append(kept, c)
		}
	}
	d.in.Timelines = kept
}

// SetMeta sets a definition metadata entry.
func (d *Draft) SetMeta(key string, value any) {
	if d.in.Meta == nil {
		d.in.Meta = make(map[string]any)
	}
	d.in.Meta[key] = value
}

// NodeCount returns the number of nodes.
func (d *Draft) NodeCount() int { return len(d.in.Nodes) }

// EdgeCount returns the number of edges.
func (d *Draft) EdgeCount() int { return len(d.in.Edges) }

// Input returns the accumulated raw input. Slices are copied one level deep.
func (d *Draft) Input() core.DefinitionInput {
	out := core.DefinitionInput{
		Nodes:     append([]core.NodeInput(nil), d.in.Nodes...),
		Edges:     append([]core.EdgeInput(nil), d.in.Edges...),
		Timelines: append([]core.ClipInput(nil), d.in.Timelines...),
	}
	if d.in.Meta != nil {
		out.Meta = make(map[string]any, len(d.in.Meta))
		for k, v := range d.in.Meta {
			out.Meta[k] = v
		}
	}

	return out
}

// line returns a straight segment to c.
func line(c geom.Coordinate) core.SegmentInput {
	return core.SegmentInput{Kind: core.SegmentLine, To: core.CoordinateInput{c[0], c[1]}}
}

// drawClip returns a draw clip on edge id.
func drawClip(id string, beat, length float64) core.ClipInput {
	return core.ClipInput{
		ID:         "draw-" + id,
		TargetType: core.TargetEdge,
		TargetID:   id,
		Action:     core.ActionDraw,
		Beat:       beat,
		Length:     core.Float(length),
	}
}

// nodeClip returns a clip with action on node id.
func nodeClip(action core.Action, id string, beat, length float64) core.ClipInput {
	return core.ClipInput{
		ID:         string(action) + "-" + id,
		TargetType: core.TargetNode,
		TargetID:   id,
		Action:     action,
		Beat:       beat,
		Length:     core.Float(length),
	}
}
