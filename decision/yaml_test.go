package decision_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/vikor"
)

const laptopYAML = `
strategy: 0.5
alternatives: [Zephyrus, Air, Budget]
criteria:
  - name: Price
    weight: 0.4
    polarity: cost
  - name: RAM
    weight: 0.6
    polarity: benefit
matrix:
  - [100, 8]
  - [80, 6]
  - [60, 4]
`

func TestLoadYAML_FullFile(t *testing.T) {
	tbl, err := decision.LoadYAML(strings.NewReader(laptopYAML))
	require.NoError(t, err)

	assert.Equal(t, []string{"Zephyrus", "Air", "Budget"}, tbl.Alternatives)
	assert.Equal(t, 0.5, tbl.Strategy)
	assert.Equal(t, "Price", tbl.Criteria[0].Name)
	assert.Equal(t, vikor.Cost, tbl.Criteria[0].Polarity)
	assert.Equal(t, vikor.Benefit, tbl.Criteria[1].Polarity)
	assert.InDelta(t, 0.4, tbl.Criteria[0].Weight, eps)
	assert.InDelta(t, 0.6, tbl.Criteria[1].Weight, eps)

	res, err := tbl.Rank()
	require.NoError(t, err)
	assert.Equal(t, "Zephyrus", res.Best().Label)
}

func TestLoadYAML_Defaults(t *testing.T) {
	// No strategy, no labels: v falls back to 0.5 and labels to "A1"..
	tbl, err := decision.LoadYAML(strings.NewReader(`
criteria:
  - name: C
    weight: 1
    polarity: benefit
matrix:
  - [1]
  - [2]
`))
	require.NoError(t, err)

	assert.Equal(t, vikor.DefaultStrategyCoefficient, tbl.Strategy)
	assert.Equal(t, []string{"A1", "A2"}, tbl.Alternatives)
}

func TestLoadYAML_NormalizesRawWeights(t *testing.T) {
	tbl, err := decision.LoadYAML(strings.NewReader(`
criteria:
  - name: C1
    weight: 2
    polarity: benefit
  - name: C2
    weight: 2
    polarity: cost
matrix:
  - [1, 2]
`))
	require.NoError(t, err)

	assert.InDelta(t, 0.5, tbl.Criteria[0].Weight, eps)
	assert.InDelta(t, 0.5, tbl.Criteria[1].Weight, eps)
}

func TestLoadYAML_Errors(t *testing.T) {
	t.Run("bad polarity", func(t *testing.T) {
		_, err := decision.LoadYAML(strings.NewReader(`
criteria:
  - name: C
    weight: 1
    polarity: sideways
matrix:
  - [1]
`))
		assert.ErrorIs(t, err, decision.ErrBadPolarity)
	})

	t.Run("label count mismatch", func(t *testing.T) {
		_, err := decision.LoadYAML(strings.NewReader(`
alternatives: [onlyone]
criteria:
  - name: C
    weight: 1
    polarity: cost
matrix:
  - [1]
  - [2]
`))
		assert.ErrorIs(t, err, decision.ErrLabelCount)
	})

	t.Run("ragged matrix row", func(t *testing.T) {
		_, err := decision.LoadYAML(strings.NewReader(`
criteria:
  - name: C1
    weight: 1
    polarity: cost
  - name: C2
    weight: 1
    polarity: benefit
matrix:
  - [1, 2]
  - [3]
`))
		assert.ErrorIs(t, err, decision.ErrRowWidth)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := decision.LoadYAML(strings.NewReader(`
criterias: []
`))
		assert.Error(t, err)
	})

	t.Run("empty file", func(t *testing.T) {
		_, err := decision.LoadYAML(strings.NewReader(""))
		assert.Error(t, err)
	})
}

func TestParsePolarity(t *testing.T) {
	for in, want := range map[string]vikor.Polarity{
		"benefit": vikor.Benefit,
		"Benefit": vikor.Benefit,
		" COST ":  vikor.Cost,
		"cost":    vikor.Cost,
	} {
		got, err := decision.ParsePolarity(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := decision.ParsePolarity("neutral")
	assert.ErrorIs(t, err, decision.ErrBadPolarity)
}
