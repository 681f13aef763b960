package diagnostics

// docstringPlaceholder is the scaffolded docstring left behind by rule
// templates; it does not count as documentation.
const docstringPlaceholder = "TODO: Add a docstring here"

// LibraryMetadataChecker verifies the unit ships a library_metadata
// object that satisfies the metadata collaborator's own checks.
type LibraryMetadataChecker struct{}

var _ Checker = (*LibraryMetadataChecker)(nil)

func (*LibraryMetadataChecker) Name() string { return "library-metadata" }

func (*LibraryMetadataChecker) Check(ev Evidence) CheckMessage {
	return CheckMessage{
		Message: "Has a library_metadata object",
		Passed:  ev.LibraryMetadata.PassedChecks,
	}
}

// DocstringChecker verifies the unit has an informative docstring with a
// one-line short description.
type DocstringChecker struct{}

var _ Checker = (*DocstringChecker)(nil)

func (*DocstringChecker) Name() string { return "docstring" }

func (*DocstringChecker) Check(ev Evidence) CheckMessage {
	msg := CheckMessage{Message: "Has a docstring, including a one-line short description"}
	short := ev.Description.ShortDescription
	switch short {
	case "", "\n", docstringPlaceholder:
		return msg
	}
	msg.Passed = true
	msg.SubMessages = []SubMessage{{
		Message: "\"" + short + "\"",
		Passed:  true,
	}}
	return msg
}

// FullTestSuiteChecker reports the code owner's attestation that the unit
// carries a full test suite. The value is sourced from library metadata,
// not computed.
type FullTestSuiteChecker struct{}

var _ Checker = (*FullTestSuiteChecker)(nil)

func (*FullTestSuiteChecker) Name() string { return "full-test-suite" }

func (*FullTestSuiteChecker) Check(ev Evidence) CheckMessage {
	return CheckMessage{
		Message: "Has a full suite of tests, as determined by a code owner",
		Passed:  ev.LibraryMetadata.HasFullTestSuite,
	}
}

// ManualReviewChecker reports whether a code owner has manually reviewed
// the unit for code standards and style.
type ManualReviewChecker struct{}

var _ Checker = (*ManualReviewChecker)(nil)

func (*ManualReviewChecker) Name() string { return "manual-code-review" }

func (*ManualReviewChecker) Check(ev Evidence) CheckMessage {
	return CheckMessage{
		Message: "Has passed a manual review by a code owner for code standards and style guides",
		Passed:  ev.LibraryMetadata.ManuallyReviewedCode,
	}
}
