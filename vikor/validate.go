// Package vikor - input validation shared by the ranking entry point.
//
// Design principles (matching the rest of the module):
//   - Deterministic, side-effect free checks.
//   - No panics on user input - only sentinel errors from errors.go.
//   - Everything is verified before any arithmetic runs, so a failed call
//     performs no computation at all.
package vikor

import (
	"fmt"
	"math"
)

// validateInputs checks the matrix, criteria and options against the input
// contract. Returns (m, n) on success.
//
// Check order (fixed, documented so tests can rely on it):
// emptiness -> row alignment -> criteria alignment -> labels alignment ->
// finiteness/negativity -> strategy coefficient.
//
// Complexity: O(m·n) time, O(1) space.
func validateInputs(matrix [][]float64, criteria []Criterion, opts Options) (int, int, error) {
	m := len(matrix)
	if m == 0 {
		return 0, 0, fmt.Errorf("validateInputs: %w", ErrEmptyInput)
	}

	n := len(matrix[0])
	if n == 0 {
		return 0, 0, fmt.Errorf("validateInputs: %w", ErrEmptyInput)
	}

	// Every row must match the width of the first one.
	for i := 1; i < m; i++ {
		if len(matrix[i]) != n {
			return 0, 0, fmt.Errorf("validateInputs: row %d has %d cells, want %d: %w",
				i, len(matrix[i]), n, ErrShapeMismatch)
		}
	}

	if len(criteria) != n {
		return 0, 0, fmt.Errorf("validateInputs: %d criteria for %d columns: %w",
			len(criteria), n, ErrShapeMismatch)
	}

	if opts.Labels != nil && len(opts.Labels) != m {
		return 0, 0, fmt.Errorf("validateInputs: %d labels for %d alternatives: %w",
			len(opts.Labels), m, ErrShapeMismatch)
	}

	for j, c := range criteria {
		if !isFinite(c.Weight) {
			return 0, 0, fmt.Errorf("validateInputs: weight of criterion %d: %w", j, ErrNonFiniteValue)
		}
		if c.Weight < 0 {
			return 0, 0, fmt.Errorf("validateInputs: weight of criterion %d: %w", j, ErrNegativeWeight)
		}
	}

	for i := range matrix {
		for j, v := range matrix[i] {
			if !isFinite(v) {
				return 0, 0, fmt.Errorf("validateInputs: cell (%d,%d): %w", i, j, ErrNonFiniteValue)
			}
		}
	}

	if v := opts.StrategyCoefficient; !isFinite(v) || v < 0 || v > 1 {
		return 0, 0, fmt.Errorf("validateInputs: v=%v: %w", v, ErrStrategyCoefficient)
	}

	return m, n, nil
}

// isFinite reports whether v is neither NaN nor ±Inf.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
