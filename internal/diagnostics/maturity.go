package diagnostics

import (
	"fmt"
	"strings"
)

// Maturity labels how far a checked unit has progressed through the
// completeness rubric.
type Maturity string

const (
	MaturityConceptOnly  Maturity = "CONCEPT_ONLY"
	MaturityExperimental Maturity = "EXPERIMENTAL"
	MaturityBeta         Maturity = "BETA"
	MaturityProduction   Maturity = "PRODUCTION"
)

// maturityRank maps tiers to ordinals for comparison.
var maturityRank = map[Maturity]int{
	MaturityConceptOnly:  0,
	MaturityExperimental: 1,
	MaturityBeta:         2,
	MaturityProduction:   3,
}

// String returns the string representation of the maturity tier.
func (m Maturity) String() string {
	return string(m)
}

// AtLeast returns true if m is at or above the target tier.
func (m Maturity) AtLeast(target Maturity) bool {
	return maturityRank[m] >= maturityRank[target]
}

// Maturities returns all tiers in declaration order.
func Maturities() []Maturity {
	return []Maturity{MaturityConceptOnly, MaturityExperimental, MaturityBeta, MaturityProduction}
}

// ParseMaturity converts a string flag or metadata value to a Maturity.
func ParseMaturity(s string) (Maturity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "CONCEPT_ONLY":
		return MaturityConceptOnly, nil
	case "EXPERIMENTAL":
		return MaturityExperimental, nil
	case "BETA":
		return MaturityBeta, nil
	case "PRODUCTION":
		return MaturityProduction, nil
	default:
		return MaturityConceptOnly, fmt.Errorf("invalid maturity %q: must be concept_only, experimental, beta, or production", s)
	}
}
