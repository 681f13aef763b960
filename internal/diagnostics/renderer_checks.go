package diagnostics

import "strings"

// excludedRendererKinds are left out of the comparison: they are too
// sparsely implemented across the rule corpus to require yet.
var excludedRendererKinds = map[string]bool{
	"question":    true,
	"descriptive": true,
}

// requiredRendererKinds are the statement renderers every mature rule
// must declare.
var requiredRendererKinds = map[string]bool{
	"diagnostic":   true,
	"prescriptive": true,
}

// RendererChecker verifies both statement renderers are declared, going
// by the _<kind>_renderer naming convention.
type RendererChecker struct{}

var _ Checker = (*RendererChecker)(nil)

func (*RendererChecker) Name() string { return "renderers" }

func (*RendererChecker) Check(ev Evidence) CheckMessage {
	kinds := make(map[string]bool)
	for _, name := range ev.RendererNames {
		kind, ok := rendererKind(name)
		if ok && !excludedRendererKinds[kind] {
			kinds[kind] = true
		}
	}

	// The remaining kind set must exactly equal the required set.
	passed := len(kinds) == len(requiredRendererKinds)
	for kind := range requiredRendererKinds {
		if !kinds[kind] {
			passed = false
		}
	}

	return CheckMessage{
		Message: "Has both statement renderers: prescriptive and diagnostic",
		Passed:  passed,
	}
}

// rendererKind extracts <kind> from a _<kind>_renderer method name.
func rendererKind(name string) (string, bool) {
	if !strings.HasPrefix(name, "_") || !strings.HasSuffix(name, "renderer") {
		return "", false
	}
	parts := strings.Split(name, "_")
	if len(parts) < 2 || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// LintingChecker reports lint status for the unit. Lint results are not
// wired into evidence gathering yet, so the check always fails rather
// than being silently dropped.
//
// TODO: carry real lint results in the evidence bundle and evaluate them
// here.
type LintingChecker struct{}

var _ Checker = (*LintingChecker)(nil)

func (*LintingChecker) Name() string { return "linting" }

func (*LintingChecker) Check(Evidence) CheckMessage {
	return CheckMessage{Message: "Passes all linting checks"}
}
