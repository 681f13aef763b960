package diagnostics

import (
	"log/slog"

	"github.com/rulegauge/rulegauge/internal/unit"
)

// ExampleCasesChecker verifies that at least one positive and one
// negative example case is declared and that every executed test passed.
type ExampleCasesChecker struct{}

var _ Checker = (*ExampleCasesChecker)(nil)

func (*ExampleCasesChecker) Name() string { return "example-cases" }

func (*ExampleCasesChecker) Check(ev Evidence) CheckMessage {
	positive, negative := countExampleCases(ev.Examples)
	failing := countFailingTests(ev.TestResults)
	slog.Debug("example case tally",
		"positive", positive,
		"negative", negative,
		"failing", failing)
	return CheckMessage{
		Message: "Has at least one positive and negative example case, and all test cases pass",
		Passed:  positive > 0 && negative > 0 && failing == 0,
	}
}

// countExampleCases tallies declared cases by their expected success
// outcome. Cases without a declared outcome count as neither.
func countExampleCases(groups []ExampleGroup) (positive, negative int) {
	for _, g := range groups {
		for _, c := range g.Cases {
			success, ok := c.Success()
			switch {
			case ok && success:
				positive++
			case ok && !success:
				negative++
			}
		}
	}
	return positive, negative
}

// countFailingTests returns the number of executed tests that did not
// pass.
func countFailingTests(results []TestResult) int {
	failing := 0
	for _, tr := range results {
		if !tr.TestPassed {
			failing++
		}
	}
	return failing
}

// InputValidationChecker verifies the unit's own configuration validation
// accepts the kwargs of its first declared example case.
type InputValidationChecker struct{}

var _ Checker = (*InputValidationChecker)(nil)

func (*InputValidationChecker) Name() string { return "input-validation" }

func (*InputValidationChecker) Check(ev Evidence) CheckMessage {
	msg := CheckMessage{Message: "Has basic input validation and type checking"}

	first, ok := firstExampleCase(ev.Examples)
	if !ok {
		msg.SubMessages = append(msg.SubMessages, SubMessage{
			Message: "No example found to get kwargs for a rule configuration",
		})
		return msg
	}
	if ev.Unit == nil || !ev.Unit.DeclaresValidateConfiguration() {
		msg.SubMessages = append(msg.SubMessages, SubMessage{
			Message: "No validate_configuration method defined",
		})
		return msg
	}

	cfg := unit.Configuration{RuleType: ev.Unit.Name(), Kwargs: first.Input}
	msg.Passed = validateSafely(ev.Unit, cfg)
	return msg
}

// validateSafely invokes the unit's validation, converting an error or a
// panic into a plain failure so one broken unit cannot abort the rest of
// the rubric.
func validateSafely(u unit.Unit, cfg unit.Configuration) (passed bool) {
	defer func() {
		if v := recover(); v != nil {
			slog.Debug("validate_configuration panicked", "rule", cfg.RuleType, "panic", v)
			passed = false
		}
	}()
	ok, err := u.ValidateConfiguration(cfg)
	if err != nil {
		slog.Debug("validate_configuration failed", "rule", cfg.RuleType, "error", err)
		return false
	}
	return ok
}

// firstExampleCase returns the first declared case, if any group has one.
func firstExampleCase(groups []ExampleGroup) (ExampleCase, bool) {
	for _, g := range groups {
		if len(g.Cases) > 0 {
			return g.Cases[0], true
		}
	}
	return ExampleCase{}, false
}
