package decision

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mcdm/vikor"
)

// fileSpec mirrors the YAML decision-file layout. Strategy is a pointer so
// "absent" and "0" stay distinguishable; alternatives are optional.
type fileSpec struct {
	Strategy     *float64        `yaml:"strategy"`
	Alternatives []string        `yaml:"alternatives"`
	Criteria     []fileCriterion `yaml:"criteria"`
	Matrix       [][]float64     `yaml:"matrix"`
}

type fileCriterion struct {
	Name     string  `yaml:"name"`
	Weight   float64 `yaml:"weight"`
	Polarity string  `yaml:"polarity"`
}

// LoadYAML reads a decision file, shape-checks it and returns a Table with
// normalized weights. Unknown YAML fields are rejected so typos fail loudly.
//
// Errors: ErrNoCriteria, ErrNoAlternatives, ErrRowWidth, ErrLabelCount,
// ErrBadPolarity, plus wrapped yaml decode errors.
func LoadYAML(r io.Reader) (*Table, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var spec fileSpec
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("LoadYAML: %w", err)
	}

	if spec.Alternatives != nil && len(spec.Alternatives) != len(spec.Matrix) {
		return nil, fmt.Errorf("LoadYAML: %d labels for %d matrix rows: %w",
			len(spec.Alternatives), len(spec.Matrix), ErrLabelCount)
	}

	b := NewBuilder()
	if spec.Strategy != nil {
		b.Strategy(*spec.Strategy)
	}

	for _, c := range spec.Criteria {
		p, err := ParsePolarity(c.Polarity)
		if err != nil {
			return nil, fmt.Errorf("LoadYAML: criterion %q: %w", c.Name, err)
		}
		b.Criterion(c.Name, c.Weight, p)
	}

	for i, row := range spec.Matrix {
		label := ""
		if spec.Alternatives != nil {
			label = spec.Alternatives[i]
		}
		b.Alternative(label, row...)
	}

	tbl, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("LoadYAML: %w", err)
	}

	return tbl, nil
}

// ParsePolarity maps the decision-file strings onto the core enum.
// Matching is case-insensitive; anything but "benefit"/"cost" fails with
// ErrBadPolarity.
func ParsePolarity(s string) (vikor.Polarity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "benefit":
		return vikor.Benefit, nil
	case "cost":
		return vikor.Cost, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrBadPolarity)
	}
}
