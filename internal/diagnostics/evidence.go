package diagnostics

import "github.com/rulegauge/rulegauge/internal/unit"

// Evidence is the full, typed input to one diagnostics run. It is
// assembled once by an evidence-gathering layer (see internal/evidence)
// and treated as read-only by every check.
type Evidence struct {
	// Unit is the live checked unit, used only for capability queries and
	// configuration validation. Nil when the rule type could not be
	// resolved, which downgrades the input-validation check.
	Unit unit.Unit

	Examples         []ExampleGroup
	LibraryMetadata  LibraryMetadata
	Description      Description
	ExecutionEngines map[string]bool
	RendererNames    []string
	MetricNames      []string
	TestResults      []TestResult
	Errors           []ErrorRecord
}

// ExampleGroup is a named batch of declared example cases sharing test
// data.
type ExampleGroup struct {
	Name  string        `json:"name"`
	Cases []ExampleCase `json:"cases"`
}

// ExampleCase is one declared test case with its expected outcome.
type ExampleCase struct {
	Title  string         `json:"title"`
	Input  map[string]any `json:"input"`
	Output map[string]any `json:"output"`
}

// Success returns the declared success expectation and whether one is
// present. Cases without a boolean "success" output are neither positive
// nor negative.
func (c ExampleCase) Success() (value, ok bool) {
	v, present := c.Output["success"]
	if !present {
		return false, false
	}
	b, isBool := v.(bool)
	return b, isBool
}

// LibraryMetadata carries code-owner attestations about the rule.
type LibraryMetadata struct {
	Maturity             Maturity `json:"maturity"`
	Tags                 []string `json:"tags"`
	Contributors         []string `json:"contributors"`
	Requirements         []string `json:"requirements"`
	HasFullTestSuite     bool     `json:"has_full_test_suite"`
	ManuallyReviewedCode bool     `json:"manually_reviewed_code"`

	// PassedChecks is computed by the metadata collaborator that gathered
	// this bundle, not by the engine.
	PassedChecks bool `json:"library_metadata_passed_checks"`
}

// Description carries the rule's introspected documentation.
type Description struct {
	CamelName        string `json:"camel_name"`
	ShortDescription string `json:"short_description"`
}

// TestResult records one executed test outcome on one backend.
type TestResult struct {
	Backend    string `json:"backend"`
	TestTitle  string `json:"test_title"`
	TestPassed bool   `json:"test_passed"`
}

// ErrorRecord captures a failure raised while gathering evidence or
// executing a test against a backend.
type ErrorRecord struct {
	Message    string `json:"error_msg"`
	StackTrace string `json:"stack_trace,omitempty"`
	TestTitle  string `json:"test_title,omitempty"`
	Backend    string `json:"test_backend,omitempty"`
}
