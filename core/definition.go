// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// definition.go - the normalized, immutable line-net model.
//
// Immutability model:
//   - All fields are unexported; reads go through methods.
//   - Slice accessors return fresh slices; metadata accessors return deep copies.
//   - Segment, Node, Edge and Clip are values: copying one never exposes
//     internal storage because every reference-typed field stays unexported.

package core

import "github.com/katalvlaran/linenet/geom"

// Segment is one normalized path command.
type Segment struct {
	kind     SegmentKind
	to       geom.Coordinate
	controls []geom.Coordinate
}

// Kind returns the segment kind. Lenient definitions may carry an
// unrecognized kind as authored.
func (s Segment) Kind() SegmentKind { return s.kind }

// To returns the segment end point.
func (s Segment) To() geom.Coordinate { return s.to }

// ControlPointCount returns the number of stored control points.
func (s Segment) ControlPointCount() int { return len(s.controls) }

// ControlPoint returns the i-th control point and whether it exists.
func (s Segment) ControlPoint(i int) (geom.Coordinate, bool) {
	if i < 0 || i >= len(s.controls) {
		return geom.Coordinate{}, false
	}

	return s.controls[i], true
}

// ControlPoints returns a copy of the control points, or nil when none were given.
func (s Segment) ControlPoints() []geom.Coordinate {
	if s.controls == nil {
		return nil
	}
	out := make([]geom.Coordinate, len(s.controls))
	copy(out, s.controls)

	return out
}

// Node is a normalized node.
type Node struct {
	id       string
	position geom.Coordinate
	label    string
	meta     map[string]any
}

// ID returns the node id.
func (n Node) ID() string { return n.id }

// Position returns the node coordinate.
func (n Node) Position() geom.Coordinate { return n.position }

// Label returns the display label, or "" when none was given.
func (n Node) Label() string { return n.label }

// Meta returns a deep copy of the node metadata (nil when absent).
func (n Node) Meta() map[string]any { return cloneMap(n.meta) }

// Edge is a normalized edge.
type Edge struct {
	id        string
	from, to  string
	segments  []Segment
	offset    float64
	hasOffset bool
	weight    float64
	hasWeight bool
	meta      map[string]any
}

// ID returns the edge id.
func (e Edge) ID() string { return e.id }

// From returns the start node id.
func (e Edge) From() string { return e.from }

// To returns the end node id.
func (e Edge) To() string { return e.to }

// SegmentCount returns the number of segments.
func (e Edge) SegmentCount() int { return len(e.segments) }

// Segment returns the i-th segment and whether it exists.
func (e Edge) Segment(i int) (Segment, bool) {
	if i < 0 || i >= len(e.segments) {
		return Segment{}, false
	}

	return e.segments[i], true
}

// Segments returns a copy of the segment list.
func (e Edge) Segments() []Segment {
	out := make([]Segment, len(e.segments))
	copy(out, e.segments)

	return out
}

// Offset returns the start-draw fraction and whether one was given.
func (e Edge) Offset() (float64, bool) { return e.offset, e.hasOffset }

// Weight returns the stroke weight, DefaultEdgeWeight when none was given.
func (e Edge) Weight() float64 {
	if !e.hasWeight {
		return DefaultEdgeWeight
	}

	return e.weight
}

// HasWeight reports whether a weight was given explicitly.
func (e Edge) HasWeight() bool { return e.hasWeight }

// Meta returns a deep copy of the edge metadata (nil when absent).
func (e Edge) Meta() map[string]any { return cloneMap(e.meta) }

// Clip is a normalized timeline clip.
type Clip struct {
	id         string
	targetType TargetType
	targetID   string
	action     Action
	beat       float64
	length     float64
	hasLength  bool
	easing     Easing
	payload    map[string]any
}

// ID returns the clip id.
func (c Clip) ID() string { return c.id }

// TargetType returns node or edge.
func (c Clip) TargetType() TargetType { return c.targetType }

// TargetID returns the id of the targeted node or edge.
func (c Clip) TargetID() string { return c.targetID }

// Action returns the clip action.
func (c Clip) Action() Action { return c.action }

// Beat returns the start beat.
func (c Clip) Beat() float64 { return c.beat }

// Length returns the authored length and whether one was given.
func (c Clip) Length() (float64, bool) { return c.length, c.hasLength }

// Span returns the length, DefaultClipLength when none was given.
func (c Clip) Span() float64 {
	if !c.hasLength {
		return DefaultClipLength
	}

	return c.length
}

// End returns Beat() + Span().
func (c Clip) End() float64 { return c.beat + c.Span() }

// Easing returns the clip easing; the zero Easing when none was given.
func (c Clip) Easing() Easing { return c.easing }

// Payload returns a deep copy of the clip payload (nil when absent).
func (c Clip) Payload() map[string]any { return cloneMap(c.payload) }

// Definition is a validated, immutable line-net scene.
// Only Define produces non-zero Definitions.
type Definition struct {
	nodes        []Node
	edges        []Edge
	timelines    []Clip
	hasTimelines bool
	meta         map[string]any

	nodeIndex map[string]int // first occurrence wins
	edgeIndex map[string]int // first occurrence wins

	issues []Issue // non-empty only for lenient definitions
}

// NodeCount returns the number of nodes.
func (d *Definition) NodeCount() int { return len(d.nodes) }

// NodeAt returns the i-th node in input order.
func (d *Definition) NodeAt(i int) (Node, bool) {
	if i < 0 || i >= len(d.nodes) {
		return Node{}, false
	}

	return d.nodes[i], true
}

// Node looks a node up by id.
func (d *Definition) Node(id string) (Node, bool) {
	i, ok := d.nodeIndex[id]
	if !ok {
		return Node{}, false
	}

	return d.nodes[i], true
}

// HasNode reports whether id names a node.
func (d *Definition) HasNode(id string) bool {
	_, ok := d.nodeIndex[id]
	return ok
}

// Nodes returns a copy of the node list in input order.
func (d *Definition) Nodes() []Node {
	out := make([]Node, len(d.nodes))
	copy(out, d.nodes)

	return out
}

// EdgeCount returns the number of edges.
func (d *Definition) EdgeCount() int { return len(d.edges) }

// EdgeAt returns the i-th edge in input order.
func (d *Definition) EdgeAt(i int) (Edge, bool) {
	if i < 0 || i >= len(d.edges) {
		return Edge{}, false
	}

	return d.edges[i], true
}

// Edge looks an edge up by id.
func (d *Definition) Edge(id string) (Edge, bool) {
	i, ok := d.edgeIndex[id]
	if !ok {
		return Edge{}, false
	}

	return d.edges[i], true
}

// HasEdge reports whether id names an edge.
func (d *Definition) HasEdge(id string) bool {
	_, ok := d.edgeIndex[id]
	return ok
}

// Edges returns a copy of the edge list in input order.
func (d *Definition) Edges() []Edge {
	out := make([]Edge, len(d.edges))
	copy(out, d.edges)

	return out
}

// HasTimelines reports whether the input supplied a timeline list (possibly empty).
func (d *Definition) HasTimelines() bool { return d.hasTimelines }

// ClipCount returns the number of timeline clips.
func (d *Definition) ClipCount() int { return len(d.timelines) }

// ClipAt returns the i-th clip in input order.
func (d *Definition) ClipAt(i int) (Clip, bool) {
	if i < 0 || i >= len(d.timelines) {
		return Clip{}, false
	}

	return d.timelines[i], true
}

// Timelines returns a copy of the clip list, nil when the input had none.
func (d *Definition) Timelines() []Clip {
	if !d.hasTimelines {
		return nil
	}
	out := make([]Clip, len(d.timelines))
	copy(out, d.timelines)

	return out
}

// Meta returns a deep copy of the definition metadata (nil when absent).
func (d *Definition) Meta() map[string]any { return cloneMap(d.meta) }

// MetaValue returns a deep copy of one metadata entry.
func (d *Definition) MetaValue(key string) (any, bool) {
	v, ok := d.meta[key]
	if !ok {
		return nil, false
	}

	return cloneValue(v), true
}

// Issues returns the problems tolerated by a lenient Define. Strict
// definitions always return nil.
func (d *Definition) Issues() []Issue {
	if len(d.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(d.issues))
	copy(out, d.issues)

	return out
}
