package diagnostics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rulegauge/rulegauge/internal/unit"
)

func TestConvertChecksIntoOutputIndentation(t *testing.T) {
	mm := MaturityMessages{
		Experimental: []CheckMessage{
			{Message: "first check", Passed: true},
			{
				Message: "second check",
				Passed:  false,
				SubMessages: []SubMessage{
					{Message: "sub pass", Passed: true},
					{Message: "sub fail", Passed: false},
				},
			},
		},
	}

	want := strings.Join([]string{
		"Completeness checklist for ExpectSomething:",
		" ✔ first check",
		"   second check",
		"    ✔ sub pass",
		"      sub fail",
		"",
	}, "\n")
	require.Equal(t, want, ConvertChecksIntoOutput("ExpectSomething", mm))
}

// sampleEvidence covers every tier: pandas fully passing, sqlalchemy
// failing, docstring and metadata present, validation accepted.
func sampleEvidence() Evidence {
	return Evidence{
		Unit: &stubUnit{
			name:     "expect_widget",
			declares: true,
			validate: func(unit.Configuration) (bool, error) { return true, nil },
		},
		Examples: []ExampleGroup{{
			Name:  "basic",
			Cases: []ExampleCase{makeCase("pos", true), makeCase("neg", false)},
		}},
		LibraryMetadata: LibraryMetadata{
			Maturity:     MaturityBeta,
			Contributors: []string{"@alice", "@bob"},
			Requirements: []string{"pandas>=1.0"},
			PassedChecks: true,
		},
		Description: Description{
			CamelName:        "ExpectWidget",
			ShortDescription: "Expect widgets to be valid.",
		},
		ExecutionEngines: map[string]bool{"sqlalchemy": true, "pandas": true, "spark": false},
		RendererNames:    []string{"_diagnostic_renderer", "_prescriptive_renderer"},
		MetricNames:      []string{"widget.valid"},
		TestResults:      mixedBackendResults(),
	}
}

func TestGenerateChecklistFullReport(t *testing.T) {
	report := New(sampleEvidence())

	want := strings.Join([]string{
		"Completeness checklist for ExpectWidget:",
		" ✔ Has a library_metadata object",
		" ✔ Has a docstring, including a one-line short description",
		"    ✔ \"Expect widgets to be valid.\"",
		"   Has at least one positive and negative example case, and all test cases pass",
		" ✔ Has core logic and passes tests on at least one execution engine",
		"    ✔ All 3 tests for pandas are passing",
		" ✔ Has basic input validation and type checking",
		" ✔ Has both statement renderers: prescriptive and diagnostic",
		"   Has core logic that passes tests for all applicable execution engines and SQL dialects",
		"    ✔ All 3 tests for pandas are passing",
		"      Only 0 / 1 tests for sqlalchemy are passing",
		"      Failing: expect_x",
		"   Passes all linting checks",
		"   Has a full suite of tests, as determined by a code owner",
		"   Has passed a manual review by a code owner for code standards and style guides",
		"",
	}, "\n")
	require.Equal(t, want, report.GenerateChecklist())
}

func TestGenerateChecklistIsDeterministic(t *testing.T) {
	report := New(sampleEvidence())
	first := report.GenerateChecklist()
	for range 10 {
		require.Equal(t, first, report.GenerateChecklist())
	}

	// Two reports built from the same evidence render identically too.
	other := New(sampleEvidence())
	require.Equal(t, first, other.GenerateChecklist())
}
