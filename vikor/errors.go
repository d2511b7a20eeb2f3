package vikor

import "errors"

// Sentinel errors returned by Rank. All of them describe invalid input;
// detection is eager (before any computation) and aborts the whole call —
// there are no partial results. Callers branch with errors.Is.
var (
	// ErrEmptyInput indicates an empty decision matrix: zero alternatives
	// or zero criteria.
	ErrEmptyInput = errors.New("vikor: matrix must have at least one row and one column")

	// ErrShapeMismatch indicates misaligned collections: matrix rows of
	// unequal length, criteria count differing from the column count, or a
	// label slice whose length differs from the row count.
	ErrShapeMismatch = errors.New("vikor: criteria, labels and matrix dimensions must align")

	// ErrNegativeWeight indicates a criterion weight below zero.
	ErrNegativeWeight = errors.New("vikor: criterion weight must be non-negative")

	// ErrNonFiniteValue indicates a NaN or ±Inf in a matrix cell or weight.
	ErrNonFiniteValue = errors.New("vikor: NaN or Inf encountered")

	// ErrStrategyCoefficient indicates a strategy coefficient outside [0,1].
	ErrStrategyCoefficient = errors.New("vikor: strategy coefficient must lie in [0,1]")
)
