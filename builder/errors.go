// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context with %w: "<Method>: <detail>: %w".
//   - Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import "errors"

// ErrTooFewNodes indicates that a size parameter (n, rows, cols, layers,
// segments) is below the constructor's minimum.
var ErrTooFewNodes = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidParameter indicates a non-finite or otherwise meaningless
// numeric constructor argument.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrDuplicateID indicates that a constructor tried to add a node or edge
// whose id already exists in the draft with different content.
var ErrDuplicateID = errors.New("builder: duplicate id")

// ErrUnknownNode indicates an edge endpoint or cascade root that is not in the draft.
var ErrUnknownNode = errors.New("builder: unknown node")

// ErrConstructFailed indicates that construction could not complete, e.g. a
// nil constructor or a draft rejected by core.Define.
var ErrConstructFailed = errors.New("builder: construction failed")
