// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// validators.go - per-field checks used by the normalization pass.
//
// Each helper appends zero or more Issues to the shared list and never stops
// the pass; Define decides afterwards what the list means.

package core

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/linenet/geom"
)

// issueList accumulates issues for one Define pass.
type issueList []Issue

func (l *issueList) add(is Issue) { *l = append(*l, is) }

// validateCoordinate checks that c holds exactly two finite numbers.
func (l *issueList) validateCoordinate(c CoordinateInput, path string) {
	if len(c) != 2 {
		l.add(Issue{
			Kind:  IssueInvalidCoordinate,
			Path:  path,
			Value: fmt.Sprintf("must be a 2-element array, got %d element(s)", len(c)),
		})
		return
	}
	for i, v := range c {
		if !geom.IsFinite(v) {
			l.add(Issue{
				Kind:  IssueInvalidCoordinate,
				Path:  path + "[" + strconv.Itoa(i) + "]",
				Value: "must be a finite number, got " + formatFloat(v),
			})
		}
	}
}

// validateFinite checks that v is neither NaN nor ±Inf.
func (l *issueList) validateFinite(v float64, path, id string) {
	if geom.IsFinite(v) {
		return
	}
	l.add(Issue{Kind: IssueNonFiniteNumber, Path: path, ID: id, Value: formatFloat(v)})
}

// toCoordinate copies the first two components of c; missing ones read as 0.
func toCoordinate(c CoordinateInput) geom.Coordinate {
	var out geom.Coordinate
	copy(out[:], c)

	return out
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// refOrIndex names an element by id, falling back to its index.
func refOrIndex(id string, index int) string {
	if id != "" {
		return id
	}

	return "#" + strconv.Itoa(index)
}
