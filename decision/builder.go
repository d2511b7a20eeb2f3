package decision

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/mcdm/vikor"
)

// Table is a fully assembled decision problem, ready for the core.
// Criteria weights are already normalized (sum 1 when the raw sum was
// positive, passed through otherwise).
type Table struct {
	Alternatives []string
	Criteria     []vikor.Criterion
	Matrix       [][]float64
	Strategy     float64
}

// Rank hands the table to the vikor core. Pure pass-through: any remaining
// numeric problems (NaN cells, negative weights, strategy out of range)
// surface here as vikor sentinels.
func (t *Table) Rank() (*vikor.Result, error) {
	return vikor.Rank(t.Matrix, t.Criteria,
		vikor.WithLabels(t.Alternatives...),
		vikor.WithStrategyCoefficient(t.Strategy),
	)
}

// Builder assembles a Table incrementally. Methods chain and never fail;
// all validation happens in Build so error handling stays in one place.
type Builder struct {
	criteria []vikor.Criterion
	labels   []string
	rows     [][]float64
	strategy float64
}

// NewBuilder returns an empty builder with the default strategy
// coefficient (0.5).
func NewBuilder() *Builder {
	return &Builder{strategy: vikor.DefaultStrategyCoefficient}
}

// Criterion appends a criterion column. Weights are raw here; Build
// normalizes them.
func (b *Builder) Criterion(name string, weight float64, p vikor.Polarity) *Builder {
	b.criteria = append(b.criteria, vikor.Criterion{Name: name, Weight: weight, Polarity: p})

	return b
}

// Alternative appends a matrix row with its label. An empty label gets the
// positional fallback "A1".."Am" at Build time.
func (b *Builder) Alternative(label string, values ...float64) *Builder {
	b.labels = append(b.labels, label)
	b.rows = append(b.rows, values)

	return b
}

// Strategy sets the strategy coefficient v. Range checking is left to the
// core so the builder and direct vikor.Rank callers fail identically.
func (b *Builder) Strategy(v float64) *Builder {
	b.strategy = v

	return b
}

// Build validates shape, normalizes weights and produces the Table.
//
// Errors: ErrNoCriteria, ErrNoAlternatives, ErrRowWidth (with the row index
// attached via %w wrapping).
func (b *Builder) Build() (*Table, error) {
	n := len(b.criteria)
	if n == 0 {
		return nil, fmt.Errorf("Build: %w", ErrNoCriteria)
	}
	if len(b.rows) == 0 {
		return nil, fmt.Errorf("Build: %w", ErrNoAlternatives)
	}

	matrix := make([][]float64, len(b.rows))
	labels := make([]string, len(b.rows))
	for i, row := range b.rows {
		if len(row) != n {
			return nil, fmt.Errorf("Build: alternative %d has %d values, want %d: %w",
				i, len(row), n, ErrRowWidth)
		}
		matrix[i] = append([]float64(nil), row...)
		labels[i] = b.labels[i]
		if labels[i] == "" {
			labels[i] = "A" + strconv.Itoa(i+1)
		}
	}

	criteria := append([]vikor.Criterion(nil), b.criteria...)
	weights := make([]float64, n)
	for j, c := range criteria {
		weights[j] = c.Weight
	}
	for j, w := range NormalizeWeights(weights) {
		criteria[j].Weight = w
	}

	return &Table{
		Alternatives: labels,
		Criteria:     criteria,
		Matrix:       matrix,
		Strategy:     b.strategy,
	}, nil
}

// NormalizeWeights divides every weight by the raw sum so the result totals
// 1, and returns a fresh slice. When the raw sum is not positive the input
// is returned as an unmodified copy: a zero-sum vector signals "no
// normalization possible" and is legitimate input for the core, not an
// error.
func NormalizeWeights(weights []float64) []float64 {
	out := append([]float64(nil), weights...)

	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum > 0 {
		for i := range out {
			out[i] /= sum
		}
	}

	return out
}
