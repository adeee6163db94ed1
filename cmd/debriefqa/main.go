package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/n8dizzle/debrief-tools/internal/interfaces/cli/debrief"
	"github.com/n8dizzle/debrief-tools/internal/interfaces/cli/run"
	"github.com/n8dizzle/debrief-tools/internal/interfaces/cli/spotcheck"
	"github.com/n8dizzle/debrief-tools/internal/interfaces/cli/ticket"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "debriefqa",
		Short: "Debrief QA - dispatcher debrief and spot-check tooling",
		Long:  `Debrief QA tracks post-job dispatcher debriefs, samples them for manager spot checks, and reports dispatcher accuracy.`,
	}

	rootCmd.AddCommand(
		run.NewCommand(),
		ticket.NewCommand(),
		debrief.NewCommand(),
		spotcheck.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
