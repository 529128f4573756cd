// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// errors.go - sentinel errors, the tagged Issue type and DefinitionError.
//
// Error policy:
//   - Sentinels are package-level and never carry formatted parameters.
//   - Context lives in Issue fields, not in the sentinel text.
//   - Callers branch with errors.Is; DefinitionError unwraps to every sentinel
//     present among its issues plus ErrInvalidDefinition.

package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for definition validation.
var (
	// ErrInvalidDefinition is matched by every strict-mode rejection.
	ErrInvalidDefinition = errors.New("core: invalid line-net definition")

	// ErrMissingID indicates a node, edge or clip without an id.
	ErrMissingID = errors.New("core: missing id")

	// ErrDuplicateID indicates a node or edge id used more than once.
	ErrDuplicateID = errors.New("core: duplicate id")

	// ErrDanglingReference indicates an edge endpoint or clip target that does not resolve.
	ErrDanglingReference = errors.New("core: dangling reference")

	// ErrInvalidCoordinate indicates a coordinate that is not two finite numbers.
	ErrInvalidCoordinate = errors.New("core: invalid coordinate")

	// ErrMissingSegments indicates an edge with an empty segment list.
	ErrMissingSegments = errors.New("core: edge has no segments")

	// ErrUnknownSegmentKind indicates a segment kind outside line/quadratic/cubic.
	ErrUnknownSegmentKind = errors.New("core: unknown segment kind")

	// ErrArityMismatch indicates a curve segment with the wrong control-point count.
	ErrArityMismatch = errors.New("core: control point arity mismatch")

	// ErrInvalidTargetType indicates a clip targetType outside node/edge.
	ErrInvalidTargetType = errors.New("core: invalid clip target type")

	// ErrNonFiniteNumber indicates a NaN or infinite clip beat or length.
	ErrNonFiniteNumber = errors.New("core: non-finite number")
)

// IssueKind classifies a validation problem.
type IssueKind int

// Issue kinds, one per validation rule.
const (
	IssueMissingID IssueKind = iota + 1
	IssueDuplicateID
	IssueDanglingReference
	IssueInvalidCoordinate
	IssueMissingSegments
	IssueUnknownSegmentKind
	IssueArityMismatch
	IssueInvalidTargetType
	IssueNonFiniteNumber
)

var issueKindNames = map[IssueKind]string{
	IssueMissingID:          "missing-id",
	IssueDuplicateID:        "duplicate-id",
	IssueDanglingReference:  "dangling-reference",
	IssueInvalidCoordinate:  "invalid-coordinate",
	IssueMissingSegments:    "missing-segments",
	IssueUnknownSegmentKind: "unknown-segment-kind",
	IssueArityMismatch:      "arity-mismatch",
	IssueInvalidTargetType:  "invalid-target-type",
	IssueNonFiniteNumber:    "non-finite-number",
}

var issueKindErrors = map[IssueKind]error{
	IssueMissingID:          ErrMissingID,
	IssueDuplicateID:        ErrDuplicateID,
	IssueDanglingReference:  ErrDanglingReference,
	IssueInvalidCoordinate:  ErrInvalidCoordinate,
	IssueMissingSegments:    ErrMissingSegments,
	IssueUnknownSegmentKind: ErrUnknownSegmentKind,
	IssueArityMismatch:      ErrArityMismatch,
	IssueInvalidTargetType:  ErrInvalidTargetType,
	IssueNonFiniteNumber:    ErrNonFiniteNumber,
}

// String returns the kebab-case name of k.
func (k IssueKind) String() string {
	if name, ok := issueKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("IssueKind(%d)", int(k))
}

// Err returns the sentinel error matching k, or ErrInvalidDefinition for unknown kinds.
func (k IssueKind) Err() error {
	if err, ok := issueKindErrors[k]; ok {
		return err
	}

	return ErrInvalidDefinition
}

// Issue is one validation problem found by Define.
//
// Path locates the offending field ("edges[2].segments[0].to"). ID names the
// owning node/edge/clip when it has one. Ref is the unresolved id for
// dangling references. Want/Got carry control-point counts for arity
// mismatches. Value holds the raw offending value for kind/targetType errors.
type Issue struct {
	Kind  IssueKind
	Path  string
	ID    string
	Ref   string
	Want  int
	Got   int
	Value string
}

// Error implements error so a single Issue can be returned or wrapped.
func (i Issue) Error() string { return i.String() }

// Unwrap exposes the sentinel of the issue kind.
func (i Issue) Unwrap() error { return i.Kind.Err() }

// String renders a human-readable message for the issue.
func (i Issue) String() string {
	switch i.Kind {
	case IssueMissingID:
		return fmt.Sprintf("%s: missing id", i.Path)
	case IssueDuplicateID:
		return fmt.Sprintf("%s: duplicate id %q", i.Path, i.ID)
	case IssueDanglingReference:
		return fmt.Sprintf("%s: %q references undefined id %q", i.Path, i.ID, i.Ref)
	case IssueInvalidCoordinate:
		return fmt.Sprintf("%s: %s", i.Path, i.Value)
	case IssueMissingSegments:
		return fmt.Sprintf("%s: edge %q has no segments", i.Path, i.ID)
	case IssueUnknownSegmentKind:
		return fmt.Sprintf("%s: unknown segment kind %q", i.Path, i.Value)
	case IssueArityMismatch:
		return fmt.Sprintf("%s: %s segment needs exactly %d control point(s), got %d", i.Path, i.Value, i.Want, i.Got)
	case IssueInvalidTargetType:
		return fmt.Sprintf("%s: invalid targetType %q", i.Path, i.Value)
	case IssueNonFiniteNumber:
		return fmt.Sprintf("%s: must be a finite number, got %s", i.Path, i.Value)
	default:
		return fmt.Sprintf("%s: %s", i.Path, i.Kind)
	}
}

// DefinitionError reports every issue found while validating one input.
type DefinitionError struct {
	Issues []Issue
}

// Error joins all issues, one per line, under a common header.
func (e *DefinitionError) Error() string {
	return formatIssues(e.Issues)
}

// Unwrap returns ErrInvalidDefinition followed by the distinct sentinels of
// the contained issues, so errors.Is works for any of them.
func (e *DefinitionError) Unwrap() []error {
	out := make([]error, 0, len(e.Issues)+1)
	out = append(out, ErrInvalidDefinition)
	seen := make(map[IssueKind]struct{}, len(e.Issues))
	for _, is := range e.Issues {
		if _, dup := seen[is.Kind]; dup {
			continue
		}
		seen[is.Kind] = struct{}{}
		out = append(out, is.Kind.Err())
	}

	return out
}

// Has reports whether any issue is of kind k.
func (e *DefinitionError) Has(k IssueKind) bool {
	for _, is := range e.Issues {
		if is.Kind == k {
			return true
		}
	}

	return false
}

// formatIssues builds the aggregated message used both for strict errors and
// lenient warnings.
func formatIssues(issues []Issue) string {
	var b strings.Builder
	b.WriteString("line-net definition validation failed:")
	for _, is := range issues {
		b.WriteString("\n- ")
		b.WriteString(is.String())
	}

	return b.String()
}
