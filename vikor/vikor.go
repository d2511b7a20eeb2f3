package vikor

import (
	"math"
	"sort"
	"strconv"
)

// rangeTol is the tolerance below which a per-criterion spread |f* − f-| or
// an S/R range is treated as degenerate. Rank ties, in contrast, use exact
// float equality; the two tolerances are intentionally NOT unified, because
// unifying them would change results on boundary inputs.
const rangeTol = 1e-9

// Rank runs the VIKOR method over an m×n decision matrix (row i =
// alternative i, column j = criterion j) and the aligned criteria slice.
//
// Algorithm (deterministic, no I/O, O(m·n) time, O(m+n) extra space):
//
//  1. Reference points. For each criterion j the ideal f*[j] is the column
//     max (Benefit) or min (Cost); the anti-ideal f-[j] is the opposite.
//  2. Aggregation. For each alternative the weighted normalized distances
//     to f* are summed into S (group utility) and maxed into R (individual
//     regret). A criterion whose column has no spread (|f*−f-| < 1e-9)
//     contributes 0: it cannot discriminate alternatives and must not
//     distort S or R.
//  3. Compromise index. Q = v·(S−S*)/(S-−S*) + (1−v)·(R−R*)/(R-−R*), with
//     either term forced to 0 when its range is degenerate (< 1e-9).
//  4. Ranking. Scores are sorted ascending by Q (stable: ties keep input
//     order) and assigned competition ranks on exact Q equality.
//
// Rank is pure: it owns no state, mutates none of its inputs, and returns
// freshly allocated slices, so concurrent calls with different inputs need
// no coordination.
//
// Errors (all detected before any computation, via errors.Is):
//   - ErrEmptyInput          — m < 1 or n < 1.
//   - ErrShapeMismatch       — ragged matrix, len(criteria) != n, or a
//     label slice of the wrong length.
//   - ErrNegativeWeight      — a criterion weight below zero.
//   - ErrNonFiniteValue      — NaN or ±Inf in a cell or weight.
//   - ErrStrategyCoefficient — v outside [0,1].
func Rank(matrix [][]float64, criteria []Criterion, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	m, n, err := validateInputs(matrix, criteria, o)
	if err != nil {
		return nil, err
	}

	// Stage 1: per-criterion reference points.
	ideal, antiIdeal := referencePoints(matrix, criteria, n)

	// Stage 2: group utility S and individual regret R per alternative.
	s := make([]float64, m)
	r := make([]float64, m)
	for i := 0; i < m; i++ {
		ri := math.Inf(-1)
		for j := 0; j < n; j++ {
			c := contribution(matrix[i][j], ideal[j], antiIdeal[j], criteria[j])
			s[i] += c
			if c > ri {
				ri = c
			}
		}
		r[i] = ri
	}

	// Stage 3: compromise index Q.
	sStar, sMinus := minMax(s)
	rStar, rMinus := minMax(r)
	v := o.StrategyCoefficient

	q := make([]float64, m)
	for i := 0; i < m; i++ {
		var sTerm, rTerm float64
		if math.Abs(sMinus-sStar) >= rangeTol {
			sTerm = (s[i] - sStar) / (sMinus - sStar)
		}
		if math.Abs(rMinus-rStar) >= rangeTol {
			rTerm = (r[i] - rStar) / (rMinus - rStar)
		}
		q[i] = v*sTerm + (1-v)*rTerm
	}

	// Stage 4: sort ascending by Q and assign competition ranks.
	scores := make([]Score, m)
	for i := 0; i < m; i++ {
		scores[i] = Score{Label: label(o.Labels, i), S: s[i], R: r[i], Q: q[i]}
	}
	sort.SliceStable(scores, func(a, b int) bool { return scores[a].Q < scores[b].Q })
	for k := range scores {
		// Exact equality on purpose: a rank tie requires bit-identical Q.
		if k > 0 && scores[k].Q == scores[k-1].Q {
			scores[k].Rank = scores[k-1].Rank
		} else {
			scores[k].Rank = k + 1
		}
	}

	weights := make([]float64, n)
	for j, c := range criteria {
		weights[j] = c.Weight
	}

	return &Result{Scores: scores, Ideal: ideal, AntiIdeal: antiIdeal, Weights: weights}, nil
}

// referencePoints extracts f* and f- for every criterion: column max/min for
// Benefit, min/max for Cost. Computed once per run over the full column.
func referencePoints(matrix [][]float64, criteria []Criterion, n int) (ideal, antiIdeal []float64) {
	ideal = make([]float64, n)
	antiIdeal = make([]float64, n)

	for j := 0; j < n; j++ {
		lo, hi := matrix[0][j], matrix[0][j]
		for i := 1; i < len(matrix); i++ {
			v := matrix[i][j]
			if v < lo {
				lo = v
			}
			if v > hi {
				hi = v
			}
		}
		if criteria[j].Polarity == Cost {
			ideal[j], antiIdeal[j] = lo, hi
		} else {
			ideal[j], antiIdeal[j] = hi, lo
		}
	}

	return ideal, antiIdeal
}

// contribution computes the weighted normalized distance of one cell from
// the criterion's ideal value.
//
// The distance is signed, not absolute: (f* − value)/denom for Benefit and
// (value − f*)/denom for Cost. Because f* is derived from the same column,
// both forms are ≥ 0 for every valid input; taking an absolute value here
// would silently change results on inputs that violate that derivation, so
// the signed form is kept.
func contribution(value, ideal, antiIdeal float64, c Criterion) float64 {
	denom := math.Abs(ideal - antiIdeal)
	if denom < rangeTol {
		// Constant column: no discriminating power, zero contribution.
		return 0
	}

	var d float64
	if c.Polarity == Cost {
		d = (value - ideal) / denom
	} else {
		d = (ideal - value) / denom
	}

	return c.Weight * d
}

// minMax returns the minimum and maximum of a non-empty slice.
func minMax(xs []float64) (lo, hi float64) {
	lo, hi = xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}

	return lo, hi
}

// label returns labels[i] when labels were supplied, or the generated
// fallback "A1".."Am" otherwise.
func label(labels []string, i int) string {
	if labels != nil {
		return labels[i]
	}

	return "A" + strconv.Itoa(i+1)
}
