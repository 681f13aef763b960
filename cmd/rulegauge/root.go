package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rulegauge",
		Short: "rulegauge - conformance diagnostics for data-quality rules",
		Long: `rulegauge runs a fixed rubric of completeness checks against
data-quality rule definitions and reports which maturity bar each rule
currently satisfies (experimental, beta, or production).

Evidence about each rule (declared examples, executed test results per
backend, renderer and metric inventories, code-owner attestations) is
supplied as a YAML bundle; rulegauge never executes the rules itself.`,
		Version:      version,
		SilenceUsage: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newDiagnoseCommand())
	cmd.AddCommand(newManifestCommand())

	return cmd
}

func execute() error {
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
