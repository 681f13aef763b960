// Package evidence loads rule evidence bundles from YAML files and turns
// them into the typed aggregate the diagnostics engine consumes. It is
// the only layer that performs I/O; the engine itself never does.
package evidence

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rulegauge/rulegauge/internal/diagnostics"
	"github.com/rulegauge/rulegauge/internal/unit"
)

// bundle mirrors the on-disk YAML shape of an evidence bundle.
type bundle struct {
	Unit             string          `yaml:"unit"`
	Examples         []exampleGroup  `yaml:"examples"`
	LibraryMetadata  libraryMetadata `yaml:"library_metadata"`
	Description      description     `yaml:"description"`
	ExecutionEngines map[string]bool `yaml:"execution_engines"`
	RendererNames    []string        `yaml:"renderer_names"`
	MetricNames      []string        `yaml:"metric_names"`
	TestResults      []testResult    `yaml:"test_results"`
	Errors           []errorRecord   `yaml:"errors"`
}

type exampleGroup struct {
	Name  string        `yaml:"name"`
	Tests []exampleCase `yaml:"tests"`
}

type exampleCase struct {
	Title  string         `yaml:"title"`
	Input  map[string]any `yaml:"input"`
	Output map[string]any `yaml:"output"`
}

type libraryMetadata struct {
	Maturity             string   `yaml:"maturity"`
	Tags                 []string `yaml:"tags"`
	Contributors         []string `yaml:"contributors"`
	Requirements         []string `yaml:"requirements"`
	HasFullTestSuite     bool     `yaml:"has_full_test_suite"`
	ManuallyReviewedCode bool     `yaml:"manually_reviewed_code"`
	PassedChecks         bool     `yaml:"library_metadata_passed_checks"`
}

type description struct {
	CamelName        string `yaml:"camel_name"`
	ShortDescription string `yaml:"short_description"`
}

type testResult struct {
	Backend    string `yaml:"backend"`
	TestTitle  string `yaml:"test_title"`
	TestPassed bool   `yaml:"test_passed"`
}

type errorRecord struct {
	Message    string `yaml:"error_msg"`
	StackTrace string `yaml:"stack_trace"`
	TestTitle  string `yaml:"test_title"`
	Backend    string `yaml:"test_backend"`
}

// Load reads, validates, and converts the evidence bundle at path.
func Load(path string) (diagnostics.Evidence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return diagnostics.Evidence{}, fmt.Errorf("reading evidence bundle: %w", err)
	}
	ev, err := Parse(data)
	if err != nil {
		return diagnostics.Evidence{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return ev, nil
}

// Parse validates raw YAML bytes against the bundle schema and converts
// them into engine evidence. A schema violation aborts the run for this
// unit; there is no partial evidence.
func Parse(data []byte) (diagnostics.Evidence, error) {
	if errs := ValidateBundleBytes(data); len(errs) > 0 {
		return diagnostics.Evidence{}, fmt.Errorf("evidence bundle failed schema validation: %s", strings.Join(errs, "; "))
	}

	var b bundle
	if err := yaml.Unmarshal(data, &b); err != nil {
		return diagnostics.Evidence{}, fmt.Errorf("unmarshalling evidence bundle: %w", err)
	}
	return b.toEvidence()
}

func (b *bundle) toEvidence() (diagnostics.Evidence, error) {
	maturity, err := diagnostics.ParseMaturity(b.LibraryMetadata.Maturity)
	if err != nil {
		return diagnostics.Evidence{}, err
	}

	groups := make([]diagnostics.ExampleGroup, 0, len(b.Examples))
	for _, g := range b.Examples {
		cases := make([]diagnostics.ExampleCase, 0, len(g.Tests))
		for _, c := range g.Tests {
			cases = append(cases, diagnostics.ExampleCase{
				Title:  c.Title,
				Input:  c.Input,
				Output: c.Output,
			})
		}
		groups = append(groups, diagnostics.ExampleGroup{Name: g.Name, Cases: cases})
	}

	results := make([]diagnostics.TestResult, 0, len(b.TestResults))
	for _, tr := range b.TestResults {
		results = append(results, diagnostics.TestResult{
			Backend:    tr.Backend,
			TestTitle:  tr.TestTitle,
			TestPassed: tr.TestPassed,
		})
	}

	errRecords := make([]diagnostics.ErrorRecord, 0, len(b.Errors))
	for _, e := range b.Errors {
		errRecords = append(errRecords, diagnostics.ErrorRecord{
			Message:    e.Message,
			StackTrace: e.StackTrace,
			TestTitle:  e.TestTitle,
			Backend:    e.Backend,
		})
	}

	// Unregistered rule types are fine: the unit stays nil and only the
	// input-validation check is affected.
	u, err := unit.Create(b.Unit)
	if err != nil {
		u = nil
	}

	// The bundle's renderer names win when present; otherwise fall back
	// to the unit's own capability query.
	rendererNames := b.RendererNames
	if len(rendererNames) == 0 && u != nil {
		rendererNames = u.RendererNames()
	}

	camelName := b.Description.CamelName
	if camelName == "" {
		camelName = camelize(b.Unit)
	}

	return diagnostics.Evidence{
		Unit:     u,
		Examples: groups,
		LibraryMetadata: diagnostics.LibraryMetadata{
			Maturity:             maturity,
			Tags:                 b.LibraryMetadata.Tags,
			Contributors:         b.LibraryMetadata.Contributors,
			Requirements:         b.LibraryMetadata.Requirements,
			HasFullTestSuite:     b.LibraryMetadata.HasFullTestSuite,
			ManuallyReviewedCode: b.LibraryMetadata.ManuallyReviewedCode,
			PassedChecks:         b.LibraryMetadata.PassedChecks,
		},
		Description: diagnostics.Description{
			CamelName:        camelName,
			ShortDescription: b.Description.ShortDescription,
		},
		ExecutionEngines: b.ExecutionEngines,
		RendererNames:    rendererNames,
		MetricNames:      b.MetricNames,
		TestResults:      results,
		Errors:           errRecords,
	}, nil
}

// camelize turns a snake_case rule-type name into its display CamelName.
func camelize(snake string) string {
	parts := strings.Split(snake, "_")
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
