package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rulegauge/rulegauge/internal/diagnostics"
	"github.com/rulegauge/rulegauge/internal/evidence"
)

func newDiagnoseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diagnose <bundle.yaml> [bundle.yaml...]",
		Short: "Run the completeness checklist against rule evidence bundles",
		Long: `Run the full completeness rubric against one or more rule evidence
bundles and print a maturity checklist per rule.

Each bundle is validated against the evidence schema, diagnosed
independently, and reported in input order:
  rulegauge diagnose evidence/expect_column_values_to_be_between.yaml
  rulegauge diagnose evidence/*.yaml --format json
  rulegauge diagnose evidence/*.yaml --require beta`,
		Args:          cobra.MinimumNArgs(1),
		RunE:          runDiagnose,
		SilenceErrors: true,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	cmd.Flags().String("require", "", "Fail unless every unit satisfies this maturity tier (experimental | beta | production)")
	return cmd
}

// --- JSON output structs ---

type diagnoseJSONReport struct {
	Timestamp string           `json:"timestamp"`
	Units     []unitJSONReport `json:"units"`
}

type unitJSONReport struct {
	Source            string                `json:"source"`
	SatisfiedMaturity diagnostics.Maturity  `json:"satisfied_maturity"`
	Report            *diagnostics.Document `json:"report"`
}

func runDiagnose(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid format %q: expected text or json", format)
	}

	requireFlag, err := cmd.Flags().GetString("require")
	if err != nil {
		return err
	}
	var required diagnostics.Maturity
	if requireFlag != "" {
		required, err = diagnostics.ParseMaturity(requireFlag)
		if err != nil {
			return err
		}
	}

	// Each bundle's diagnosis is independent, so they run concurrently;
	// results slot back in by index to keep output in input order.
	reports := make([]*diagnostics.DiagnosticReport, len(args))
	var eg errgroup.Group
	for i, path := range args {
		eg.Go(func() error {
			ev, err := evidence.Load(path)
			if err != nil {
				return err
			}
			reports[i] = diagnostics.New(ev)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := outputDiagnoseJSON(w, args, reports); err != nil {
			return err
		}
	default:
		for i, report := range reports {
			if i > 0 {
				fmt.Fprintln(w) //nolint:errcheck
			}
			fmt.Fprint(w, report.GenerateChecklist()) //nolint:errcheck
		}
		if len(reports) > 1 {
			printDiagnoseSummaryTable(w, reports)
		}
	}

	if requireFlag == "" {
		return nil
	}
	var below []string
	for _, report := range reports {
		if !report.SatisfiedMaturity().AtLeast(required) {
			below = append(below, report.Description.CamelName)
		}
	}
	if len(below) > 0 {
		return &MaturityShortfallError{
			Message: fmt.Sprintf("%d unit(s) below %s: %s", len(below), required, strings.Join(below, ", ")),
		}
	}
	return nil
}

func outputDiagnoseJSON(w io.Writer, sources []string, reports []*diagnostics.DiagnosticReport) error {
	out := diagnoseJSONReport{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Units:     make([]unitJSONReport, 0, len(reports)),
	}
	for i, report := range reports {
		out.Units = append(out.Units, unitJSONReport{
			Source:            sources[i],
			SatisfiedMaturity: report.SatisfiedMaturity(),
			Report:            report.Document(),
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printDiagnoseSummaryTable(w io.Writer, reports []*diagnostics.DiagnosticReport) {
	const maxNameWidth = 40
	const minNameWidth = 10

	// Compute dynamic column width from the longest unit name.
	nameWidth := len("Unit")
	for _, r := range reports {
		n := displayName(r)
		if runeLen := utf8.RuneCountInString(n); runeLen > nameWidth {
			nameWidth = runeLen
		}
	}
	if nameWidth > maxNameWidth {
		nameWidth = maxNameWidth
	}
	if nameWidth < minNameWidth {
		nameWidth = minNameWidth
	}

	const colTier = 14
	const colChecks = 12
	totalWidth := nameWidth + colTier + 3*colChecks + 8 // 8 = 4 gaps × 2 spaces

	fmt.Fprintf(w, "\n")                                      //nolint:errcheck
	fmt.Fprintf(w, "%s\n", strings.Repeat("═", totalWidth))   //nolint:errcheck
	fmt.Fprintf(w, " DIAGNOSE SUMMARY\n")                     //nolint:errcheck
	fmt.Fprintf(w, "%s\n\n", strings.Repeat("═", totalWidth)) //nolint:errcheck

	fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
		padRight("Unit", nameWidth),
		padRight("Maturity", colTier),
		padRight("Experimental", colChecks),
		padRight("Beta", colChecks),
		"Production")
	fmt.Fprintf(w, "%s\n", strings.Repeat("─", totalWidth)) //nolint:errcheck

	for _, r := range reports {
		fmt.Fprintf(w, "%s  %s  %s  %s  %s\n", //nolint:errcheck
			padRight(truncateName(displayName(r), nameWidth), nameWidth),
			padRight(r.SatisfiedMaturity().String(), colTier),
			padRight(tallyChecks(r.MaturityChecklist.Experimental), colChecks),
			padRight(tallyChecks(r.MaturityChecklist.Beta), colChecks),
			tallyChecks(r.MaturityChecklist.Production))
	}
	fmt.Fprintf(w, "\n") //nolint:errcheck
}

func displayName(r *diagnostics.DiagnosticReport) string {
	if r.Description.CamelName != "" {
		return r.Description.CamelName
	}
	return "unnamed"
}

// tallyChecks formats a tier's checks as "passed/total".
func tallyChecks(checks []diagnostics.CheckMessage) string {
	passed := 0
	for _, c := range checks {
		if c.Passed {
			passed++
		}
	}
	return fmt.Sprintf("%d/%d", passed, len(checks))
}

// truncateName shortens a name to maxLen runes, replacing the last rune with "…" if needed.
func truncateName(name string, maxLen int) string {
	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}
	return string(runes[:maxLen-1]) + "…"
}

// padRight pads s with spaces so its terminal display width reaches width.
func padRight(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-sw)
}
