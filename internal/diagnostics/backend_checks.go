package diagnostics

import (
	"fmt"
	"strings"
)

const noTestResultsMessage = "There are no test results"

// backendSummary aggregates executed test outcomes for one backend.
type backendSummary struct {
	name    string
	total   int
	passing int
}

func (s backendSummary) allPassing() bool { return s.passing == s.total }

// summarizeBackends groups results by backend, preserving first-seen
// backend order so sub-message ordering stays deterministic. Both backend
// checks share this grouping.
func summarizeBackends(results []TestResult) []backendSummary {
	index := make(map[string]int)
	var summaries []backendSummary
	for _, tr := range results {
		i, seen := index[tr.Backend]
		if !seen {
			i = len(summaries)
			index[tr.Backend] = i
			summaries = append(summaries, backendSummary{name: tr.Backend})
		}
		summaries[i].total++
		if tr.TestPassed {
			summaries[i].passing++
		}
	}
	return summaries
}

// AtLeastOneBackendChecker verifies the unit's core logic passes every
// executed test on at least one execution engine.
type AtLeastOneBackendChecker struct{}

var _ Checker = (*AtLeastOneBackendChecker)(nil)

func (*AtLeastOneBackendChecker) Name() string { return "at-least-one-backend" }

func (*AtLeastOneBackendChecker) Check(ev Evidence) CheckMessage {
	msg := CheckMessage{Message: "Has core logic and passes tests on at least one execution engine"}
	for _, s := range summarizeBackends(ev.TestResults) {
		if !s.allPassing() {
			continue
		}
		msg.Passed = true
		msg.SubMessages = append(msg.SubMessages, SubMessage{
			Message: fmt.Sprintf("All %d tests for %s are passing", s.total, s.name),
			Passed:  true,
		})
		break
	}
	if len(ev.TestResults) == 0 {
		msg.SubMessages = append(msg.SubMessages, SubMessage{Message: noTestResultsMessage})
	}
	return msg
}

// AllBackendsChecker verifies the unit's core logic passes every executed
// test on every backend it ran against. Vacuous success is rejected: no
// test results means the check fails.
type AllBackendsChecker struct{}

var _ Checker = (*AllBackendsChecker)(nil)

func (*AllBackendsChecker) Name() string { return "all-backends" }

func (*AllBackendsChecker) Check(ev Evidence) CheckMessage {
	msg := CheckMessage{Message: "Has core logic that passes tests for all applicable execution engines and SQL dialects"}

	summaries := summarizeBackends(ev.TestResults)
	anyPassing, anyFailing := false, false
	for _, s := range summaries {
		if s.allPassing() {
			anyPassing = true
			msg.SubMessages = append(msg.SubMessages, SubMessage{
				Message: fmt.Sprintf("All %d tests for %s are passing", s.total, s.name),
				Passed:  true,
			})
		}
	}
	for _, s := range summaries {
		if s.allPassing() {
			continue
		}
		anyFailing = true
		msg.SubMessages = append(msg.SubMessages, SubMessage{
			Message: fmt.Sprintf("Only %d / %d tests for %s are passing", s.passing, s.total, s.name),
		})
	}

	// Failing titles are aggregated across all backends in encounter
	// order, not per backend.
	var failingTitles []string
	for _, tr := range ev.TestResults {
		if !tr.TestPassed {
			failingTitles = append(failingTitles, tr.TestTitle)
		}
	}
	if len(failingTitles) > 0 {
		msg.SubMessages = append(msg.SubMessages, SubMessage{
			Message: "Failing: " + strings.Join(failingTitles, ", "),
		})
	}

	if len(ev.TestResults) == 0 {
		msg.SubMessages = append(msg.SubMessages, SubMessage{Message: noTestResultsMessage})
	}

	msg.Passed = anyPassing && !anyFailing
	return msg
}
