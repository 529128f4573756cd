// SPDX-License-Identifier: MIT
// Package: linenet/core
//
// easing.go - the clip easing value: a keyword or cubic-bezier parameters.
//
// Wire forms (YAML and JSON):
//   - a string keyword:           easing: ease-in-out
//   - four cubic-bezier numbers:  easing: [0.7, 0, 0.3, 1]

package core

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Easing is either a keyword or a cubic-bezier control tuple (x1, y1, x2, y2).
// The zero value means "no easing given".
type Easing struct {
	keyword  string
	bezier   [4]float64
	isBezier bool
}

// EaseKeyword returns a keyword easing such as "ease-in-out".
func EaseKeyword(name string) Easing { return Easing{keyword: name} }

// EaseBezier returns a cubic-bezier easing.
func EaseBezier(x1, y1, x2, y2 float64) Easing {
	return Easing{bezier: [4]float64{x1, y1, x2, y2}, isBezier: true}
}

// IsZero reports whether no easing was given.
func (e Easing) IsZero() bool { return !e.isBezier && e.keyword == "" }

// Keyword returns the keyword and true when e is a keyword easing.
func (e Easing) Keyword() (string, bool) {
	if e.isBezier || e.keyword == "" {
		return "", false
	}

	return e.keyword, true
}

// Bezier returns the control tuple and true when e is a cubic-bezier easing.
func (e Easing) Bezier() ([4]float64, bool) { return e.bezier, e.isBezier }

// String renders the keyword or "cubic-bezier(x1, y1, x2, y2)".
func (e Easing) String() string {
	if e.isBezier {
		return fmt.Sprintf("cubic-bezier(%g, %g, %g, %g)", e.bezier[0], e.bezier[1], e.bezier[2], e.bezier[3])
	}

	return e.keyword
}

// MarshalJSON encodes a keyword as a string and a bezier as a 4-element array.
func (e Easing) MarshalJSON() ([]byte, error) {
	if e.isBezier {
		return json.Marshal(e.bezier)
	}

	return json.Marshal(e.keyword)
}

// UnmarshalJSON accepts a string or an array of exactly four numbers.
func (e *Easing) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*e = EaseKeyword(name)
		return nil
	}
	var params []float64
	if err := json.Unmarshal(data, &params); err != nil {
		return fmt.Errorf("core: easing must be a string or 4 numbers: %w", err)
	}

	return e.setBezier(params)
}

// MarshalYAML mirrors MarshalJSON.
func (e Easing) MarshalYAML() (interface{}, error) {
	if e.isBezier {
		return e.bezier[:], nil
	}

	return e.keyword, nil
}

// UnmarshalYAML accepts a scalar keyword or a sequence of exactly four numbers.
func (e *Easing) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*e = EaseKeyword(value.Value)
		return nil
	case yaml.SequenceNode:
		var params []float64
		if err := value.Decode(&params); err != nil {
			return fmt.Errorf("core: easing line %d: %w", value.Line, err)
		}
		return e.setBezier(params)
	default:
		return fmt.Errorf("core: easing line %d: must be a string or 4 numbers", value.Line)
	}
}

func (e *Easing) setBezier(params []float64) error {
	if len(params) != 4 {
		return fmt.Errorf("core: cubic-bezier easing needs 4 numbers, got %d", len(params))
	}
	*e = EaseBezier(params[0], params[1], params[2], params[3])

	return nil
}
