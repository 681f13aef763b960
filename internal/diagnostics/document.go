package diagnostics

import (
	"maps"
	"slices"
	"sort"
)

// Document is the plain-data projection of a DiagnosticReport, shaped for
// JSON transport to the gallery and manifest side. It adds one derived
// convenience field, ExecutionEnginesList, and copies everything else
// without re-evaluating any check.
type Document struct {
	Examples             []ExampleGroup   `json:"examples"`
	LibraryMetadata      LibraryMetadata  `json:"library_metadata"`
	Description          Description      `json:"description"`
	ExecutionEngines     map[string]bool  `json:"execution_engines"`
	ExecutionEnginesList []string         `json:"execution_engines_list"`
	RendererNames        []string         `json:"renderer_names"`
	MetricNames          []string         `json:"metric_names"`
	TestResults          []TestResult     `json:"test_results"`
	Errors               []ErrorRecord    `json:"errors"`
	MaturityChecklist    MaturityMessages `json:"maturity_checklist"`
}

// Document converts the report into its transport shape. The returned
// value shares no memory with the report.
func (r *DiagnosticReport) Document() *Document {
	engines := make([]string, 0, len(r.ExecutionEngines))
	for name, applicable := range r.ExecutionEngines {
		if applicable {
			engines = append(engines, name)
		}
	}
	sort.Strings(engines)

	return &Document{
		Examples:             copyExampleGroups(r.Examples),
		LibraryMetadata:      copyLibraryMetadata(r.LibraryMetadata),
		Description:          r.Description,
		ExecutionEngines:     maps.Clone(r.ExecutionEngines),
		ExecutionEnginesList: engines,
		RendererNames:        slices.Clone(r.RendererNames),
		MetricNames:          slices.Clone(r.MetricNames),
		TestResults:          slices.Clone(r.TestResults),
		Errors:               slices.Clone(r.Errors),
		MaturityChecklist:    copyMaturityMessages(r.MaturityChecklist),
	}
}
