// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// define.go - Define: validate, normalize and seal a DefinitionInput.
//
// Contract:
//   - One pass over nodes, edges and clips; every element is checked even
//     after earlier failures, so one call reports every problem.
//   - Strict (default): any issue returns (nil, *DefinitionError).
//   - Lenient: the aggregated message is logged at WARN and the definition is
//     built with best-effort values; Issues() keeps the list.
//   - Nothing from the input is aliased: slices and maps are copied.
//
// Complexity: O(N + E·S + C) time and space for N nodes, E edges with S
// segments each, and C clips.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linenet/geom"
	"go.uber.org/zap"
)

// Define validates in and returns the immutable Definition it describes.
//
// Errors:
//   - *DefinitionError (matching ErrInvalidDefinition and the sentinel of
//     every contained issue kind) in strict mode when any issue was found.
func Define(in DefinitionInput, opts ...Option) (*Definition, error) {
	cfg := newDefineConfig(opts...)

	def, issues := normalize(in)
	if len(issues) == 0 {
		return def, nil
	}

	if cfg.strict {
		return nil, &DefinitionError{Issues: issues}
	}

	msgs := make([]string, len(issues))
	for i, is := range issues {
		msgs[i] = is.String()
	}
	cfg.logger.Warn(formatIssues(issues), zap.Int("issues", len(issues)), zap.Strings("issue", msgs))
	def.issues = issues

	return def, nil
}

// MustDefine is like Define but panics on error. Intended for package-level
// scene literals that are known to be valid.
func MustDefine(in DefinitionInput, opts ...Option) *Definition {
	def, err := Define(in, opts...)
	if err != nil {
		panic(err)
	}

	return def
}

// Validate runs the validation pass only and returns every issue found.
// A nil result means Define(in) would succeed in strict mode.
func Validate(in DefinitionInput) []Issue {
	_, issues := normalize(in)
	if len(issues) == 0 {
		return nil
	}

	return issues
}

// normalize performs the single validation/normalization pass.
func normalize(in DefinitionInput) (*Definition, []Issue) {
	var issues issueList

	def := &Definition{
		nodes:     make([]Node, len(in.Nodes)),
		edges:     make([]Edge, len(in.Edges)),
		meta:      cloneMap(in.Meta),
		nodeIndex: make(map[string]int, len(in.Nodes)),
		edgeIndex: make(map[string]int, len(in.Edges)),
	}

	for i, n := range in.Nodes {
		path := "nodes[" + strconv.Itoa(i) + "]"
		switch _, dup := def.nodeIndex[n.ID]; {
		case n.ID == "":
			issues.add(Issue{Kind: IssueMissingID, Path: path})
		case dup:
			issues.add(Issue{Kind: IssueDuplicateID, Path: path, ID: n.ID})
		default:
			def.nodeIndex[n.ID] = i
		}

		issues.validateCoordinate(n.Position, path+".position")

		def.nodes[i] = Node{
			id:       n.ID,
			position: toCoordinate(n.Position),
			label:    n.Label,
			meta:     cloneMap(n.Meta),
		}
	}

	for i, e := range in.Edges {
		def.edges[i] = normalizeEdge(e, i, def, &issues)
	}

	if in.Timelines != nil {
		def.hasTimelines = true
		def.timelines = make([]Clip, len(in.Timelines))
		for i, c := range in.Timelines {
			def.timelines[i] = normalizeClip(c, i, def, &issues)
		}
	}

	return def, issues
}

func normalizeEdge(e EdgeInput, index int, def *Definition, issues *issueList) Edge {
	path := "edges[" + strconv.Itoa(index) + "]"
	switch _, dup := def.edgeIndex[e.ID]; {
	case e.ID == "":
		issues.add(Issue{Kind: IssueMissingID, Path: path})
	case dup:
		issues.add(Issue{Kind: IssueDuplicateID, Path: path, ID: e.ID})
	default:
		def.edgeIndex[e.ID] = index
	}

	ref := refOrIndex(e.ID, index)
	if !def.HasNode(e.From) {
		issues.add(Issue{Kind: IssueDanglingReference, Path: path + ".from", ID: ref, Ref: e.From})
	}
	if !def.HasNode(e.To) {
		issues.add(Issue{Kind: IssueDanglingReference, Path: path + ".to", ID: ref, Ref: e.To})
	}
	if len(e.Segments) == 0 {
		issues.add(Issue{Kind: IssueMissingSegments, Path: path + ".segments", ID: ref})
	}

	out := Edge{
		id:       e.ID,
		from:     e.From,
		to:       e.To,
		segments: make([]Segment, len(e.Segments)),
		meta:     cloneMap(e.Meta),
	}
	for j, s := range e.Segments {
		out.segments[j] = normalizeSegment(s, path+".segments["+strconv.Itoa(j)+"]", issues)
	}
	if e.Offset != nil {
		out.offset, out.hasOffset = *e.Offset, true
	}
	if e.Weight != nil {
		out.weight, out.hasWeight = *e.Weight, true
	}

	return out
}

// normalizeSegment defaults the kind to line, checks the end point and the
// control-point arity, and copies whatever control points were supplied.
// A wrong count is reported but the points are kept; the sampler substitutes
// missing ones.
func normalizeSegment(s SegmentInput, path string, issues *issueList) Segment {
	kind := s.Kind
	if kind == "" {
		kind = SegmentLine
	}
	arity, known := kind.Arity()
	if !known {
		issues.add(Issue{Kind: IssueUnknownSegmentKind, Path: path + ".kind", Value: string(kind)})
	}

	issues.validateCoordinate(s.To, path+".to")

	if known && arity > 0 {
		if got := len(s.ControlPoints); got != arity {
			issues.add(Issue{
				Kind:  IssueArityMismatch,
				Path:  path + ".controlPoints",
				Value: string(kind),
				Want:  arity,
				Got:   got,
			})
		}
		for k := 0; k < arity && k < len(s.ControlPoints); k++ {
			issues.validateCoordinate(s.ControlPoints[k], fmt.Sprintf("%s.controlPoints[%d]", path, k))
		}
	}

	out := Segment{kind: kind, to: toCoordinate(s.To)}
	if s.ControlPoints != nil {
		out.controls = make([]geom.Coordinate, len(s.ControlPoints))
		for k, cp := range s.ControlPoints {
			out.controls[k] = toCoordinate(cp)
		}
	}

	return out
}

func normalizeClip(c ClipInput, index int, def *Definition, issues *issueList) Clip {
	path := "timelines[" + strconv.Itoa(index) + "]"
	if c.ID == "" {
		issues.add(Issue{Kind: IssueMissingID, Path: path})
	}
	ref := refOrIndex(c.ID, index)

	switch c.TargetType {
	case TargetNode:
		if !def.HasNode(c.TargetID) {
			issues.add(Issue{Kind: IssueDanglingReference, Path: path + ".targetId", ID: ref, Ref: c.TargetID})
		}
	case TargetEdge:
		if !def.HasEdge(c.TargetID) {
			issues.add(Issue{Kind: IssueDanglingReference, Path: path + ".targetId", ID: ref, Ref: c.TargetID})
		}
	default:
		issues.add(Issue{Kind: IssueInvalidTargetType, Path: path + ".targetType", ID: ref, Value: string(c.TargetType)})
	}

	issues.validateFinite(c.Beat, path+".beat", ref)
	if c.Length != nil {
		issues.validateFinite(*c.Length, path+".length", ref)
	}

	out := Clip{
		id:         c.ID,
		targetType: c.TargetType,
		targetID:   c.TargetID,
		action:     c.Action,
		beat:       c.Beat,
		payload:    cloneMap(c.Payload),
	}
	if c.Length != nil {
		out.length, out.hasLength = *c.Length, true
	}
	if c.Easing != nil {
		out.easing = *c.Easing
	}

	return out
}
