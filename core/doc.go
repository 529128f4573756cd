// SPDX-License-Identifier: MIT

// Package core defines the line-net scene model: raw input types supplied by
// scene authors, the validated immutable Definition, and Define, the single
// producer of Definition values.
//
// A line-net is a small directed graph drawn as animated vector strokes.
// Nodes sit at normalized canvas coordinates; edges connect two nodes through
// an ordered path of line, quadratic and cubic segments; timeline clips bind an
// action (draw, pulse, highlight, ...) to a node or edge over a beat interval.
//
// Lifecycle:
//
//	DefinitionInput ──Define──▶ *Definition (immutable) ──▶ timeline / sampler
//
// Define validates the whole input in one pass and accumulates every problem
// as an Issue instead of stopping at the first. In strict mode (the default)
// any issue rejects the input with a *DefinitionError listing all of them. In
// lenient mode the same message is logged through zap and construction
// continues with best-effort defaults; the issues stay readable through
// (*Definition).Issues.
//
// Immutability:
//
// Definition and its parts (Node, Edge, Segment, Clip) expose their data only
// through methods. Slices and metadata maps are copied on the way in and on
// the way out, so neither the caller's original input nor a returned value can
// be used to mutate a Definition after construction.
//
// Errors:
//
//	ErrInvalidDefinition   - wraps every strict-mode rejection.
//	ErrMissingID           - a node, edge or clip has an empty id.
//	ErrDuplicateID         - a node or edge id was already used.
//	ErrDanglingReference   - an edge endpoint or clip target does not resolve.
//	ErrInvalidCoordinate   - a coordinate is not two finite numbers.
//	ErrMissingSegments     - an edge has no segments.
//	ErrUnknownSegmentKind  - a segment kind is not line, quadratic or cubic.
//	ErrArityMismatch       - a curve has the wrong number of control points.
//	ErrInvalidTargetType   - a clip targetType is not node or edge.
//	ErrNonFiniteNumber     - a clip beat or length is NaN or ±Inf.
package core
