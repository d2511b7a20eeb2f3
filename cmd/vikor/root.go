package main

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vikor",
		Short: "Rank alternatives with the VIKOR compromise method",
		Long: `vikor is a small decision-support tool: give it a YAML decision file
(alternatives, weighted benefit/cost criteria, a value matrix) and it ranks
the alternatives by the VIKOR compromise index Q, balancing overall
closeness to the ideal solution against worst-case regret.`,
		Version:      version,
		SilenceUsage: true,
	}

	cmd.AddCommand(newRankCommand())

	return cmd
}

func execute() error {
	return newRootCommand().Execute()
}
