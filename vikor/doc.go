// Package vikor implements the VIKOR multi-criteria compromise-ranking
// method: given m alternatives scored on n weighted criteria of mixed
// polarity, it orders the alternatives by how well they balance closeness
// to the ideal solution against worst-case deviation from it.
//
// 🚀 What is VIKOR?
//
//	VIKOR (VIšekriterijumsko KOmpromisno Rangiranje) ranks alternatives by
//	a compromise index Q built from two per-alternative measures:
//	  • S — group utility: the weighted sum of normalized distances to the
//	    per-criterion ideal values (overall closeness, smaller is better)
//	  • R — individual regret: the single largest weighted distance (the
//	    worst shortfall on any one criterion, smaller is better)
//	Q = v·sTerm + (1−v)·rTerm blends the two; the strategy coefficient
//	v ∈ [0,1] (default 0.5) decides whether consensus or worst-case regret
//	dominates. The alternative with the smallest Q is the compromise
//	recommendation.
//
// ✨ Key features:
//   - benefit and cost criteria side by side (per-criterion polarity)
//   - degenerate inputs handled, not rejected: constant columns contribute
//     zero, fully tied S or R collapses the matching Q term to zero
//   - competition ("min") ranking: exactly equal Q values share a rank
//   - pure function — no I/O, no shared state, safe for concurrent calls
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mcdm/vikor"
//
//	criteria := []vikor.Criterion{
//	    {Name: "Price", Weight: 0.4, Polarity: vikor.Cost},
//	    {Name: "RAM", Weight: 0.6, Polarity: vikor.Benefit},
//	}
//	matrix := [][]float64{
//	    {1200, 16}, // Zephyrus
//	    {999, 8},   // Air
//	}
//	res, err := vikor.Rank(matrix, criteria,
//	    vikor.WithLabels("Zephyrus", "Air"),
//	    vikor.WithStrategyCoefficient(0.5),
//	)
//
// Weight normalization (dividing by the sum so weights total 1) is a
// boundary-layer concern and lives in the decision package; Rank takes the
// weights it is given. A zero-sum weight vector is valid input and yields
// S = R = Q = 0 for every alternative.
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m + n)
//
// Errors (sentinel, matched via errors.Is): ErrEmptyInput,
// ErrShapeMismatch, ErrNegativeWeight, ErrNonFiniteValue,
// ErrStrategyCoefficient. All are detected eagerly; a failing call performs
// no computation and returns no partial result.
package vikor
