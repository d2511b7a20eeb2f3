// Package vikor defines the data model and configuration options for the
// VIKOR compromise-ranking method.
//
// VIKOR ranks m alternatives evaluated against n criteria of mixed polarity
// (benefit vs. cost). For each alternative it derives:
//
//	S — group utility: weighted sum of normalized distances to the ideal
//	    solution across all criteria (smaller is better).
//	R — individual regret: the single worst weighted distance (smaller is
//	    better).
//	Q — compromise index: a convex combination of normalized S and R,
//	    Q = v·sTerm + (1−v)·rTerm, the final ranking key.
//
// The strategy coefficient v ∈ [0,1] balances consensus (S) against
// worst-case regret (R); v = 0.5 gives them equal say.
package vikor

// Polarity states whether larger or smaller raw values of a criterion are
// preferable.
type Polarity int

const (
	// Benefit criteria prefer larger raw values (RAM, battery life, ...).
	Benefit Polarity = iota

	// Cost criteria prefer smaller raw values (price, weight, ...).
	Cost
)

// String returns the lower-case name used in decision files and tables.
func (p Polarity) String() string {
	if p == Cost {
		return "cost"
	}

	return "benefit"
}

// Criterion describes one attribute the alternatives are scored on.
//
// Name is display-only; it never influences the computation. Weight must be
// non-negative and finite. Callers that want weights summing to 1 should
// normalize before ranking (see the decision package); Rank itself treats
// weights as given.
type Criterion struct {
	Name     string
	Weight   float64
	Polarity Polarity
}

// Score is the outcome for a single alternative. Immutable after Rank
// returns; never shared between results.
//
// Rank uses competition ("min") ranking: alternatives with exactly equal Q
// share a rank, which equals 1 + the count of alternatives with strictly
// smaller Q.
type Score struct {
	Label string  // alternative label (given or generated "A1".."Am")
	S     float64 // group utility measure
	R     float64 // individual regret measure
	Q     float64 // compromise index
	Rank  int     // 1-based competition rank
}

// Result is the full outcome of one ranking run.
//
// Scores is sorted ascending by Q (best first); ties keep the input order of
// the alternatives. Ideal and AntiIdeal hold the per-criterion f* and f-
// reference values. Weights is a copy of the weight vector actually used.
// All slices are freshly allocated per run, so concurrent calls never share
// state.
type Result struct {
	Scores    []Score
	Ideal     []float64
	AntiIdeal []float64
	Weights   []float64
}

// Best returns the top-ranked score (the compromise recommendation).
// Result always holds at least one score, since Rank rejects empty input.
func (r *Result) Best() Score {
	return r.Scores[0]
}

// Options configures a ranking run. Zero value is NOT ready to use; start
// from DefaultOptions or pass Option values to Rank.
type Options struct {
	// StrategyCoefficient is v in Q = v·sTerm + (1−v)·rTerm. Must lie in
	// [0,1]; Rank fails with ErrStrategyCoefficient otherwise. Default 0.5.
	StrategyCoefficient float64

	// Labels names the alternatives, aligned with matrix rows. If empty,
	// Rank generates "A1".."Am". A non-empty slice of the wrong length
	// fails with ErrShapeMismatch.
	Labels []string
}

// Option is a functional option for configuring Rank.
type Option func(*Options)

// WithStrategyCoefficient sets v, the weight of group utility versus
// individual regret in Q. Values v > 0.5 favor consensus, v < 0.5 favor
// minimizing worst-case regret. Validated in Rank, not here.
func WithStrategyCoefficient(v float64) Option {
	return func(o *Options) {
		o.StrategyCoefficient = v
	}
}

// WithLabels sets the alternative labels, aligned with matrix rows.
func WithLabels(labels ...string) Option {
	return func(o *Options) {
		o.Labels = labels
	}
}

// DefaultOptions returns the canonical defaults: v = 0.5 (equal weight to
// group utility and individual regret) and generated labels.
func DefaultOptions() Options {
	return Options{StrategyCoefficient: DefaultStrategyCoefficient}
}

// DefaultStrategyCoefficient is the conventional v used when the caller has
// no preference between consensus and regret.
const DefaultStrategyCoefficient = 0.5
