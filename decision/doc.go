// Package decision is the input boundary in front of the vikor core: it
// assembles the three aligned collections the Ranker needs (matrix, weighted
// criteria, alternative labels), normalizes weights, and loads decision
// tables from YAML files.
//
// The split of responsibilities is deliberate:
//
//   - decision owns everything a front-end would do before the call —
//     collecting rows, naming alternatives, dividing weights by their sum
//     so they total 1 (NormalizeWeights) — and shape-checks it eagerly.
//   - vikor.Rank stays a pure function of already-prepared input; it never
//     normalizes and performs its own numeric validation.
//
// A zero raw weight sum is not an error: it means "no normalization
// possible" and the weights pass through unchanged, which the core answers
// with an all-zero, all-tied ranking.
//
// ⚙️ Usage:
//
//	tbl, err := decision.NewBuilder().
//	    Criterion("Price", 0.4, vikor.Cost).
//	    Criterion("RAM", 0.6, vikor.Benefit).
//	    Alternative("Zephyrus", 1200, 16).
//	    Alternative("Air", 999, 8).
//	    Strategy(0.5).
//	    Build()
//	if err != nil { ... }
//	res, err := tbl.Rank()
//
// Or from a YAML decision file:
//
//	strategy: 0.5
//	alternatives: [Zephyrus, Air]
//	criteria:
//	  - name: Price
//	    weight: 0.4
//	    polarity: cost
//	  - name: RAM
//	    weight: 0.6
//	    polarity: benefit
//	matrix:
//	  - [1200, 16]
//	  - [999, 8]
//
//	tbl, err := decision.LoadYAML(file)
//
// Errors (sentinel, matched via errors.Is): ErrNoCriteria,
// ErrNoAlternatives, ErrRowWidth, ErrLabelCount, ErrBadPolarity.
package decision
