// SPDX-License-Identifier: MIT
// Package: linenet/builder
//
// validators.go - parameter checks shared by constructors.

package builder

import (
	"fmt"
	"math"
)

// validateMin ensures got ≥ min.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewNodes)
	}

	return nil
}

// validateProbability enforces p ∈ [0, 1].
func validateProbability(method string, p float64) error {
	if !(p >= 0 && p <= 1) {
		return fmt.Errorf("%s: p=%g not in [0,1]: %w", method, p, ErrInvalidProbability)
	}

	return nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(method, name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s: %s=%g: %w", method, name, v, ErrInvalidParameter)
	}

	return nil
}
