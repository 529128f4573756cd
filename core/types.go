// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// types.go - enumerations and the raw input types handed to Define.
//
// Input types are plain mutable structs with yaml/json tags so they can be
// written as Go literals or decoded from scene files. Nothing downstream reads
// them directly; Define copies what it needs.

package core

// SegmentKind selects the path command of a segment.
type SegmentKind string

// Recognized segment kinds. An empty kind is read as SegmentLine.
const (
	SegmentLine      SegmentKind = "line"
	SegmentQuadratic SegmentKind = "quadratic"
	SegmentCubic     SegmentKind = "cubic"
)

// Arity returns the required control-point count and whether k is recognized.
func (k SegmentKind) Arity() (int, bool) {
	switch k {
	case SegmentLine, "":
		return 0, true
	case SegmentQuadratic:
		return 1, true
	case SegmentCubic:
		return 2, true
	default:
		return 0, false
	}
}

// Valid reports whether k is one of the recognized kinds.
func (k SegmentKind) Valid() bool {
	_, ok := k.Arity()
	return ok && k != ""
}

// TargetType selects the collection a clip targets.
type TargetType string

// Clip target types.
const (
	TargetNode TargetType = "node"
	TargetEdge TargetType = "edge"
)

// Valid reports whether t is node or edge.
func (t TargetType) Valid() bool { return t == TargetNode || t == TargetEdge }

// Action names what a clip does to its target. The set is open; these are
// the conventional values understood by the timeline package.
type Action string

// Conventional clip actions.
const (
	ActionDraw        Action = "draw"
	ActionErase       Action = "erase"
	ActionPulse       Action = "pulse"
	ActionHighlight   Action = "highlight"
	ActionDeemphasize Action = "deemphasize"
)

const (
	// DefaultClipLength is the beat length assumed for clips without one.
	DefaultClipLength = 1.0

	// DefaultEdgeWeight is the stroke weight assumed for edges without one.
	DefaultEdgeWeight = 1.0
)

// CoordinateInput is a raw coordinate as authored: it should hold exactly two
// finite numbers, but Define is the one to check.
type CoordinateInput []float64

// SegmentInput is one raw path command of an edge.
type SegmentInput struct {
	Kind          SegmentKind       `yaml:"kind,omitempty" json:"kind,omitempty"`
	To            CoordinateInput   `yaml:"to" json:"to"`
	ControlPoints []CoordinateInput `yaml:"controlPoints,omitempty" json:"controlPoints,omitempty"`
}

// NodeInput is a raw node.
type NodeInput struct {
	ID       string          `yaml:"id" json:"id"`
	Position CoordinateInput `yaml:"position" json:"position"`
	Label    string          `yaml:"label,omitempty" json:"label,omitempty"`
	Meta     map[string]any  `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// EdgeInput is a raw edge. Offset and Weight are optional.
type EdgeInput struct {
	ID       string         `yaml:"id" json:"id"`
	From     string         `yaml:"from" json:"from"`
	To       string         `yaml:"to" json:"to"`
	Segments []SegmentInput `yaml:"segments" json:"segments"`
	Offset   *float64       `yaml:"offset,omitempty" json:"offset,omitempty"`
	Weight   *float64       `yaml:"weight,omitempty" json:"weight,omitempty"`
	Meta     map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// ClipInput is a raw timeline clip. Length and Easing are optional.
type ClipInput struct {
	ID         string         `yaml:"id" json:"id"`
	TargetType TargetType     `yaml:"targetType" json:"targetType"`
	TargetID   string         `yaml:"targetId" json:"targetId"`
	Action     Action         `yaml:"action,omitempty" json:"action,omitempty"`
	Beat       float64        `yaml:"beat" json:"beat"`
	Length     *float64       `yaml:"length,omitempty" json:"length,omitempty"`
	Easing     *Easing        `yaml:"easing,omitempty" json:"easing,omitempty"`
	Payload    map[string]any `yaml:"payload,omitempty" json:"payload,omitempty"`
}

// DefinitionInput is the raw scene description consumed by Define.
type DefinitionInput struct {
	Nodes     []NodeInput    `yaml:"nodes" json:"nodes"`
	Edges     []EdgeInput    `yaml:"edges" json:"edges"`
	Timelines []ClipInput    `yaml:"timelines,omitempty" json:"timelines,omitempty"`
	Meta      map[string]any `yaml:"meta,omitempty" json:"meta,omitempty"`
}

// Float returns a pointer to v, for filling optional input fields in literals.
func Float(v float64) *float64 { return &v }
