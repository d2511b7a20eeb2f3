// Package export renders vikor results for downstream consumers: a stable
// CSV contract and human-readable text tables.
//
// The CSV column set and order — Alternative,S,R,Q,Rank, rows in ranked
// order — is the one observable external contract of the module and must
// not change: exported files are consumed by existing spreadsheets and
// pipelines. Values are written with full float precision; the text tables,
// meant for terminals, round to 4 decimals instead.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/katalvlaran/mcdm/vikor"
)

// WriteCSV writes the ranked result as CSV with the stable column contract
// Alternative,S,R,Q,Rank. Scores appear in ranked (ascending Q) order.
func WriteCSV(w io.Writer, res *vikor.Result) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Alternative", "S", "R", "Q", "Rank"}); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	for _, sc := range res.Scores {
		rec := []string{
			sc.Label,
			formatFloat(sc.S),
			formatFloat(sc.R),
			formatFloat(sc.Q),
			strconv.Itoa(sc.Rank),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("WriteCSV: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// WriteTable renders the ranked result as an aligned text table with S, R
// and Q rounded to 4 decimals.
func WriteTable(w io.Writer, res *vikor.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Rank\tAlternative\tS\tR\tQ")
	for _, sc := range res.Scores {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\n", sc.Rank, sc.Label, sc.S, sc.R, sc.Q)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("WriteTable: %w", err)
	}

	return nil
}

// WriteReferenceTable renders the per-criterion reference values: polarity,
// ideal f*, anti-ideal f-, and the weight actually used by the run.
// criteria must be the slice passed to Rank, aligned with res; a length
// mismatch fails with vikor.ErrShapeMismatch.
func WriteReferenceTable(w io.Writer, criteria []vikor.Criterion, res *vikor.Result) error {
	if len(criteria) != len(res.Ideal) {
		return fmt.Errorf("WriteReferenceTable: %d criteria for %d reference values: %w",
			len(criteria), len(res.Ideal), vikor.ErrShapeMismatch)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "Criterion\tType\tf*\tf-\tWeight")
	for j, c := range criteria {
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.4f\t%.4f\n",
			c.Name, c.Polarity, res.Ideal[j], res.AntiIdeal[j], res.Weights[j])
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("WriteReferenceTable: %w", err)
	}

	return nil
}

// formatFloat renders with the shortest representation that round-trips,
// preserving full precision in exported files.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
