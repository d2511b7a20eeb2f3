package decision

import "errors"

// Sentinel errors for decision-table assembly and file loading. Numeric
// validity (finiteness, negative weights, strategy range) is the vikor
// core's job and surfaces through Table.Rank as vikor sentinels.
var (
	// ErrNoCriteria indicates a table built without a single criterion.
	ErrNoCriteria = errors.New("decision: at least one criterion is required")

	// ErrNoAlternatives indicates a table built without a single alternative.
	ErrNoAlternatives = errors.New("decision: at least one alternative is required")

	// ErrRowWidth indicates an alternative whose value count differs from
	// the criterion count.
	ErrRowWidth = errors.New("decision: alternative values must match criterion count")

	// ErrLabelCount indicates a label list whose length differs from the
	// matrix row count (YAML files with explicit alternatives).
	ErrLabelCount = errors.New("decision: alternative labels must match matrix rows")

	// ErrBadPolarity indicates a polarity string other than "benefit"/"cost".
	ErrBadPolarity = errors.New("decision: polarity must be \"benefit\" or \"cost\"")
)
