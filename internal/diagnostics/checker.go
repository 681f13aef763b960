package diagnostics

// Checker evaluates one completeness check against gathered evidence.
// Implementations are pure: they never mutate ev, and missing evidence
// is reported as a failing CheckMessage rather than an error.
type Checker interface {
	Name() string
	Check(ev Evidence) CheckMessage
}

// runCheckers evaluates each checker in order against ev.
func runCheckers(checkers []Checker, ev Evidence) []CheckMessage {
	messages := make([]CheckMessage, 0, len(checkers))
	for _, c := range checkers {
		messages = append(messages, c.Check(ev))
	}
	return messages
}

// ExperimentalCheckers returns the experimental-tier checks in display
// order.
func ExperimentalCheckers() []Checker {
	return []Checker{
		&LibraryMetadataChecker{},
		&DocstringChecker{},
		&ExampleCasesChecker{},
	}
}

// BetaCheckers returns the beta-tier checks in display order.
func BetaCheckers() []Checker {
	return []Checker{
		&AtLeastOneBackendChecker{},
		&InputValidationChecker{},
		&RendererChecker{},
	}
}

// ProductionCheckers returns the production-tier checks in display order.
func ProductionCheckers() []Checker {
	return []Checker{
		&AllBackendsChecker{},
		&LintingChecker{},
		&FullTestSuiteChecker{},
		&ManualReviewChecker{},
	}
}
