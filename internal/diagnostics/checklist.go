package diagnostics

import "strings"

// ConvertChecksIntoOutput renders evaluated checks as an indented CLI
// checklist, with ✔ marking the checks that passed. Tiers are emitted in
// fixed experimental, beta, production order. Rendering is pure and
// deterministic: identical input yields byte-identical output.
func ConvertChecksIntoOutput(displayName string, mm MaturityMessages) string {
	var b strings.Builder
	b.WriteString("Completeness checklist for ")
	b.WriteString(displayName)
	b.WriteString(":")

	checks := make([]CheckMessage, 0, len(mm.Experimental)+len(mm.Beta)+len(mm.Production))
	checks = append(checks, mm.Experimental...)
	checks = append(checks, mm.Beta...)
	checks = append(checks, mm.Production...)

	for _, check := range checks {
		if check.Passed {
			b.WriteString("\n ✔ ")
		} else {
			b.WriteString("\n   ")
		}
		b.WriteString(check.Message)
		for _, sub := range check.SubMessages {
			if sub.Passed {
				b.WriteString("\n    ✔ ")
			} else {
				b.WriteString("\n      ")
			}
			b.WriteString(sub.Message)
		}
	}
	b.WriteString("\n")
	return b.String()
}
