package diagnostics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rulegauge/rulegauge/internal/unit"
)

func TestNewComputesChecklistPerTier(t *testing.T) {
	report := New(sampleEvidence())

	require.Len(t, report.MaturityChecklist.Experimental, 3)
	require.Len(t, report.MaturityChecklist.Beta, 3)
	require.Len(t, report.MaturityChecklist.Production, 4)

	// Fixed display order within each tier.
	require.Equal(t, "Has a library_metadata object", report.MaturityChecklist.Experimental[0].Message)
	require.Equal(t, "Has a docstring, including a one-line short description", report.MaturityChecklist.Experimental[1].Message)
	require.Equal(t, "Has at least one positive and negative example case, and all test cases pass", report.MaturityChecklist.Experimental[2].Message)
	require.Equal(t, "Has core logic and passes tests on at least one execution engine", report.MaturityChecklist.Beta[0].Message)
	require.Equal(t, "Has basic input validation and type checking", report.MaturityChecklist.Beta[1].Message)
	require.Equal(t, "Has both statement renderers: prescriptive and diagnostic", report.MaturityChecklist.Beta[2].Message)
	require.Equal(t, "Has core logic that passes tests for all applicable execution engines and SQL dialects", report.MaturityChecklist.Production[0].Message)
	require.Equal(t, "Passes all linting checks", report.MaturityChecklist.Production[1].Message)
	require.Equal(t, "Has a full suite of tests, as determined by a code owner", report.MaturityChecklist.Production[2].Message)
	require.Equal(t, "Has passed a manual review by a code owner for code standards and style guides", report.MaturityChecklist.Production[3].Message)
}

func TestNewCopiesCallerState(t *testing.T) {
	ev := sampleEvidence()
	report := New(ev)

	// Mutating the caller's evidence after construction must not leak
	// into the frozen report.
	ev.Examples[0].Cases[0].Input["column"] = "tampered"
	ev.ExecutionEngines["pandas"] = false
	ev.RendererNames[0] = "tampered"
	ev.MetricNames[0] = "tampered"
	ev.TestResults[0].TestPassed = false
	ev.LibraryMetadata.Contributors[0] = "tampered"

	require.Equal(t, "x", report.Examples[0].Cases[0].Input["column"])
	require.True(t, report.ExecutionEngines["pandas"])
	require.Equal(t, "_diagnostic_renderer", report.RendererNames[0])
	require.Equal(t, "widget.valid", report.MetricNames[0])
	require.True(t, report.TestResults[0].TestPassed)
	require.Equal(t, "@alice", report.LibraryMetadata.Contributors[0])
}

func TestSatisfiedMaturity(t *testing.T) {
	validUnit := &stubUnit{
		name:     "expect_widget",
		declares: true,
		validate: func(unit.Configuration) (bool, error) { return true, nil },
	}
	experimentalOK := Evidence{
		Unit: validUnit,
		Examples: []ExampleGroup{{
			Name:  "basic",
			Cases: []ExampleCase{makeCase("pos", true), makeCase("neg", false)},
		}},
		LibraryMetadata: LibraryMetadata{PassedChecks: true},
		Description:     Description{CamelName: "ExpectWidget", ShortDescription: "Expect widgets."},
		TestResults: []TestResult{
			{Backend: "pandas", TestTitle: "a", TestPassed: true},
		},
		RendererNames: []string{"_diagnostic_renderer", "_prescriptive_renderer"},
	}

	t.Run("beta when all experimental and beta checks pass", func(t *testing.T) {
		// Linting always fails, so production is unreachable here.
		require.Equal(t, MaturityBeta, New(experimentalOK).SatisfiedMaturity())
	})

	t.Run("experimental when a beta check fails", func(t *testing.T) {
		ev := experimentalOK
		ev.RendererNames = []string{"_diagnostic_renderer"}
		require.Equal(t, MaturityExperimental, New(ev).SatisfiedMaturity())
	})

	t.Run("concept-only when an experimental check fails", func(t *testing.T) {
		ev := experimentalOK
		ev.LibraryMetadata.PassedChecks = false
		require.Equal(t, MaturityConceptOnly, New(ev).SatisfiedMaturity())
	})
}

func TestMaturityOrdering(t *testing.T) {
	require.True(t, MaturityProduction.AtLeast(MaturityBeta))
	require.True(t, MaturityBeta.AtLeast(MaturityBeta))
	require.False(t, MaturityExperimental.AtLeast(MaturityBeta))
	require.False(t, MaturityConceptOnly.AtLeast(MaturityExperimental))

	require.Equal(t, []Maturity{MaturityConceptOnly, MaturityExperimental, MaturityBeta, MaturityProduction}, Maturities())
}

func TestParseMaturity(t *testing.T) {
	m, err := ParseMaturity("beta")
	require.NoError(t, err)
	require.Equal(t, MaturityBeta, m)

	m, err = ParseMaturity(" PRODUCTION ")
	require.NoError(t, err)
	require.Equal(t, MaturityProduction, m)

	_, err = ParseMaturity("solid")
	require.Error(t, err)
}
