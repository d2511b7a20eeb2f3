package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mcdm/decision"
	"github.com/katalvlaran/mcdm/export"
	"github.com/katalvlaran/mcdm/vikor"
)

func newRankCommand() *cobra.Command {
	var (
		csvPath  string
		strategy float64
	)

	cmd := &cobra.Command{
		Use:   "rank <decision.yaml>",
		Short: "Rank the alternatives in a YAML decision file",
		Long: `Rank loads a YAML decision file, normalizes the criterion weights so they
sum to 1 (weights with a zero sum pass through unchanged), runs VIKOR and
prints the per-criterion reference values (f*, f-) followed by the ranked
table. The alternative with the smallest compromise index Q is the
recommendation.

With --csv the ranked result is also written as a CSV file with the columns
Alternative,S,R,Q,Rank, in ranked order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return rankCommandE(cmd, args[0], csvPath, strategy)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "Write the ranked result as CSV to this file")
	cmd.Flags().Float64Var(&strategy, "strategy", vikor.DefaultStrategyCoefficient,
		"Strategy coefficient v in [0,1]; overrides the file value")

	return cmd
}

func rankCommandE(cmd *cobra.Command, path, csvPath string, strategy float64) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open decision file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	tbl, err := decision.LoadYAML(f)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("strategy") {
		tbl.Strategy = strategy
	}

	res, err := tbl.Rank()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err = export.WriteReferenceTable(out, tbl.Criteria, res); err != nil {
		return err
	}
	fmt.Fprintln(out)
	if err = export.WriteTable(out, res); err != nil {
		return err
	}
	best := res.Best()
	fmt.Fprintf(out, "\nBest compromise: %s (Q=%.4f)\n", best.Label, best.Q)

	if csvPath != "" {
		var cf *os.File
		if cf, err = os.Create(csvPath); err != nil {
			return fmt.Errorf("create CSV file: %w", err)
		}
		if err = export.WriteCSV(cf, res); err != nil {
			cf.Close() //nolint:errcheck

			return err
		}
		if err = cf.Close(); err != nil {
			return fmt.Errorf("close CSV file: %w", err)
		}
		fmt.Fprintf(out, "CSV written to %s\n", csvPath)
	}

	return nil
}
