// Package unit defines the checked-unit abstraction: the pluggable
// data-quality rule definition that diagnostics are run against.
//
// A rule's capabilities are exposed through explicit queries rather than
// reflection over live members: RendererNames and
// DeclaresValidateConfiguration describe what the concrete rule itself
// provides, never what it picks up from a shared base implementation.
package unit

// Configuration pairs a rule type with the keyword arguments used to
// instantiate it for validation.
type Configuration struct {
	RuleType string
	Kwargs   map[string]any
}

// Unit is the capability surface a rule definition exposes to the
// diagnostics engine.
type Unit interface {
	// Name returns the stable rule-type identifier (snake_case).
	Name() string

	// RendererNames returns the discoverable renderer method names,
	// following the _<kind>_renderer naming convention.
	RendererNames() []string

	// DeclaresValidateConfiguration reports whether the concrete rule
	// defines its own configuration validation. An inherited default does
	// not count.
	DeclaresValidateConfiguration() bool

	// ValidateConfiguration checks cfg for basic input validity and type
	// correctness.
	ValidateConfiguration(cfg Configuration) (bool, error)
}
