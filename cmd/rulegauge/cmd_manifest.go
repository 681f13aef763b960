package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rulegauge/rulegauge/internal/diagnostics"
	"github.com/rulegauge/rulegauge/internal/evidence"
	"github.com/rulegauge/rulegauge/internal/manifest"
)

func newManifestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest <bundle.yaml> [bundle.yaml...]",
		Short: "Aggregate rule diagnostics into a package-level manifest",
		Long: `Diagnose every given evidence bundle and roll the serialized reports up
into one package manifest: per-maturity counts, the package's overall
maturity (the most frequent tier across rules), and the deduped
contributor and requirement sets.

Output goes to stdout unless --output is given; an --output path ending
in .gz is gzip-compressed:
  rulegauge manifest evidence/*.yaml --package my-rules
  rulegauge manifest evidence/*.yaml --output manifest.json.gz`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runManifest,
		SilenceErrors: true,
	}
	cmd.Flags().String("package", "rulegauge-package", "Package name recorded in the manifest")
	cmd.Flags().String("output", "", "Write the manifest to this file instead of stdout")
	return cmd
}

func runManifest(cmd *cobra.Command, args []string) error {
	packageName, err := cmd.Flags().GetString("package")
	if err != nil {
		return err
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	docs := make([]*diagnostics.Document, len(args))
	var eg errgroup.Group
	for i, path := range args {
		eg.Go(func() error {
			ev, err := evidence.Load(path)
			if err != nil {
				return err
			}
			docs[i] = diagnostics.New(ev).Document()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	m := manifest.Build(packageName, docs)

	if output == "" {
		return manifest.Encode(m, cmd.OutOrStdout())
	}
	if err := manifest.Write(m, output); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote manifest for %d unit(s) to %s\n", len(docs), output) //nolint:errcheck
	return nil
}
