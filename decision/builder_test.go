package decision_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/vikor"
)

const eps = 1e-12

func TestBuilder_BuildNormalizesWeights(t *testing.T) {
	tbl, err := decision.NewBuilder().
		Criterion("Price", 2, vikor.Cost).
		Criterion("RAM", 6, vikor.Benefit).
		Alternative("X", 1200, 16).
		Alternative("Y", 999, 8).
		Build()
	require.NoError(t, err)

	assert.InDelta(t, 0.25, tbl.Criteria[0].Weight, eps)
	assert.InDelta(t, 0.75, tbl.Criteria[1].Weight, eps)
	assert.Equal(t, []string{"X", "Y"}, tbl.Alternatives)
	assert.Equal(t, [][]float64{{1200, 16}, {999, 8}}, tbl.Matrix)
	assert.Equal(t, vikor.DefaultStrategyCoefficient, tbl.Strategy)
}

func TestBuilder_EmptyLabelsGetGeneratedNames(t *testing.T) {
	tbl, err := decision.NewBuilder().
		Criterion("C", 1, vikor.Benefit).
		Alternative("", 1).
		Alternative("Named", 2).
		Alternative("", 3).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []string{"A1", "Named", "A3"}, tbl.Alternatives)
}

func TestBuilder_BuildErrors(t *testing.T) {
	t.Run("no criteria", func(t *testing.T) {
		_, err := decision.NewBuilder().Alternative("X", 1).Build()
		assert.ErrorIs(t, err, decision.ErrNoCriteria)
	})

	t.Run("no alternatives", func(t *testing.T) {
		_, err := decision.NewBuilder().Criterion("C", 1, vikor.Benefit).Build()
		assert.ErrorIs(t, err, decision.ErrNoAlternatives)
	})

	t.Run("row width", func(t *testing.T) {
		_, err := decision.NewBuilder().
			Criterion("C1", 1, vikor.Benefit).
			Criterion("C2", 1, vikor.Benefit).
			Alternative("X", 1).
			Build()
		assert.ErrorIs(t, err, decision.ErrRowWidth)
	})
}

// TestBuilder_RankEndToEnd runs the whole boundary + core pipeline: raw
// weights (0.2, 0.2) normalize to (0.5, 0.5) and reproduce the canonical
// ranking.
func TestBuilder_RankEndToEnd(t *testing.T) {
	tbl, err := decision.NewBuilder().
		Criterion("C1", 0.2, vikor.Benefit).
		Criterion("C2", 0.2, vikor.Benefit).
		Alternative("Low", 1, 2).
		Alternative("High", 3, 4).
		Build()
	require.NoError(t, err)

	res, err := tbl.Rank()
	require.NoError(t, err)

	assert.Equal(t, "High", res.Best().Label)
	assert.Equal(t, 1.0, res.Scores[1].S)
	assert.Equal(t, 0.5, res.Scores[1].R)
}

// TestBuilder_RankSurfacesCoreErrors shows the numeric checks stay with the
// core: a bad strategy coefficient passes Build and fails in Rank.
func TestBuilder_RankSurfacesCoreErrors(t *testing.T) {
	tbl, err := decision.NewBuilder().
		Criterion("C", 1, vikor.Benefit).
		Alternative("X", 1).
		Strategy(2).
		Build()
	require.NoError(t, err)

	_, err = tbl.Rank()
	assert.ErrorIs(t, err, vikor.ErrStrategyCoefficient)
}

func TestNormalizeWeights(t *testing.T) {
	t.Run("positive sum divides through", func(t *testing.T) {
		got := decision.NormalizeWeights([]float64{1, 3})
		assert.InDelta(t, 0.25, got[0], eps)
		assert.InDelta(t, 0.75, got[1], eps)

		var sum float64
		for _, w := range got {
			sum += w
		}
		assert.InDelta(t, 1.0, sum, eps)
	})

	t.Run("zero sum passes through", func(t *testing.T) {
		got := decision.NormalizeWeights([]float64{0, 0, 0})
		assert.Equal(t, []float64{0, 0, 0}, got)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		in := []float64{2, 2}
		_ = decision.NormalizeWeights(in)
		assert.Equal(t, []float64{2, 2}, in)
	})
}

// TestNormalizeWeights_ZeroSumRanking is the degenerate end-to-end case:
// unnormalizable weights reach the core untouched and every alternative
// ties at rank 1 with S = R = Q = 0.
func TestNormalizeWeights_ZeroSumRanking(t *testing.T) {
	tbl, err := decision.NewBuilder().
		Criterion("C1", 0, vikor.Benefit).
		Criterion("C2", 0, vikor.Cost).
		Alternative("X", 1, 9).
		Alternative("Y", 5, 3).
		Build()
	require.NoError(t, err)

	assert.Equal(t, []float64{0, 0}, []float64{tbl.Criteria[0].Weight, tbl.Criteria[1].Weight})

	res, err := tbl.Rank()
	require.NoError(t, err)
	for _, sc := range res.Scores {
		assert.Equal(t, 0.0, sc.S)
		assert.Equal(t, 0.0, sc.R)
		assert.Equal(t, 0.0, sc.Q)
		assert.Equal(t, 1, sc.Rank)
	}
}
