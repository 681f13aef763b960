// Package diagnostics runs a fixed rubric of completeness checks against
// a checked unit's gathered evidence and aggregates the outcomes into an
// immutable diagnostic report.
//
// The report has two external-facing views: Document produces the JSON
// object consumed by the gallery/manifest side, and GenerateChecklist
// produces CLI-style text to assist rule development.
package diagnostics

import (
	"maps"
	"slices"
)

// DiagnosticReport is the immutable aggregate of all evidence gathered
// for one checked unit, plus the maturity checklist derived from it. New
// is the only constructor; no field is mutated after it returns.
type DiagnosticReport struct {
	Examples          []ExampleGroup
	LibraryMetadata   LibraryMetadata
	Description       Description
	ExecutionEngines  map[string]bool
	RendererNames     []string
	MetricNames       []string
	TestResults       []TestResult
	Errors            []ErrorRecord
	MaturityChecklist MaturityMessages
}

// New evaluates the full rubric against ev and freezes the result. Nested
// collections are copied so later mutation of caller-held state cannot
// leak into the report.
func New(ev Evidence) *DiagnosticReport {
	return &DiagnosticReport{
		Examples:         copyExampleGroups(ev.Examples),
		LibraryMetadata:  copyLibraryMetadata(ev.LibraryMetadata),
		Description:      ev.Description,
		ExecutionEngines: maps.Clone(ev.ExecutionEngines),
		RendererNames:    slices.Clone(ev.RendererNames),
		MetricNames:      slices.Clone(ev.MetricNames),
		TestResults:      slices.Clone(ev.TestResults),
		Errors:           slices.Clone(ev.Errors),
		MaturityChecklist: MaturityMessages{
			Experimental: runCheckers(ExperimentalCheckers(), ev),
			Beta:         runCheckers(BetaCheckers(), ev),
			Production:   runCheckers(ProductionCheckers(), ev),
		},
	}
}

// GenerateChecklist renders the maturity checklist in CLI-appropriate
// string format.
func (r *DiagnosticReport) GenerateChecklist() string {
	return ConvertChecksIntoOutput(r.Description.CamelName, r.MaturityChecklist)
}

// SatisfiedMaturity returns the highest tier whose checks, and the checks
// of every tier below it, all pass. A unit failing any experimental check
// is concept-only.
func (r *DiagnosticReport) SatisfiedMaturity() Maturity {
	satisfied := MaturityConceptOnly
	tiers := []struct {
		maturity Maturity
		checks   []CheckMessage
	}{
		{MaturityExperimental, r.MaturityChecklist.Experimental},
		{MaturityBeta, r.MaturityChecklist.Beta},
		{MaturityProduction, r.MaturityChecklist.Production},
	}
	for _, tier := range tiers {
		for _, check := range tier.checks {
			if !check.Passed {
				return satisfied
			}
		}
		satisfied = tier.maturity
	}
	return satisfied
}

func copyExampleGroups(groups []ExampleGroup) []ExampleGroup {
	out := make([]ExampleGroup, len(groups))
	for i, g := range groups {
		cases := make([]ExampleCase, len(g.Cases))
		for j, c := range g.Cases {
			cases[j] = ExampleCase{
				Title:  c.Title,
				Input:  maps.Clone(c.Input),
				Output: maps.Clone(c.Output),
			}
		}
		out[i] = ExampleGroup{Name: g.Name, Cases: cases}
	}
	return out
}

func copyLibraryMetadata(md LibraryMetadata) LibraryMetadata {
	md.Tags = slices.Clone(md.Tags)
	md.Contributors = slices.Clone(md.Contributors)
	md.Requirements = slices.Clone(md.Requirements)
	return md
}

func copyMaturityMessages(mm MaturityMessages) MaturityMessages {
	return MaturityMessages{
		Experimental: copyCheckMessages(mm.Experimental),
		Beta:         copyCheckMessages(mm.Beta),
		Production:   copyCheckMessages(mm.Production),
	}
}

func copyCheckMessages(checks []CheckMessage) []CheckMessage {
	out := make([]CheckMessage, len(checks))
	for i, check := range checks {
		check.SubMessages = slices.Clone(check.SubMessages)
		out[i] = check
	}
	return out
}
