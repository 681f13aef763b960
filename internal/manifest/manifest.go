// Package manifest rolls many serialized diagnostic reports up into a
// package-level gallery manifest.
package manifest

import (
	"sort"

	"github.com/rulegauge/rulegauge/internal/diagnostics"
)

// UnitEntry summarizes one checked unit inside the manifest.
type UnitEntry struct {
	Name     string               `json:"name"`
	Maturity diagnostics.Maturity `json:"maturity"`
	Engines  []string             `json:"execution_engines_list"`
}

// Manifest is the package-level rollup of many diagnostic reports.
type Manifest struct {
	PackageName    string                       `json:"package_name"`
	Maturity       diagnostics.Maturity         `json:"maturity"`
	MaturityCounts map[diagnostics.Maturity]int `json:"maturity_counts"`
	Contributors   []string                     `json:"contributors"`
	Requirements   []string                     `json:"requirements"`
	Units          []UnitEntry                  `json:"units"`
}

// Build aggregates the documents into a manifest for packageName. Units
// keep their input order; contributor and requirement sets are deduped
// and sorted.
func Build(packageName string, docs []*diagnostics.Document) *Manifest {
	m := &Manifest{
		PackageName:    packageName,
		MaturityCounts: make(map[diagnostics.Maturity]int),
		Units:          make([]UnitEntry, 0, len(docs)),
	}

	contributors := make(map[string]bool)
	requirements := make(map[string]bool)
	for _, doc := range docs {
		m.MaturityCounts[doc.LibraryMetadata.Maturity]++
		for _, c := range doc.LibraryMetadata.Contributors {
			contributors[c] = true
		}
		for _, r := range doc.LibraryMetadata.Requirements {
			requirements[r] = true
		}
		m.Units = append(m.Units, UnitEntry{
			Name:     doc.Description.CamelName,
			Maturity: doc.LibraryMetadata.Maturity,
			Engines:  doc.ExecutionEnginesList,
		})
	}

	m.Contributors = sortedKeys(contributors)
	m.Requirements = sortedKeys(requirements)
	m.Maturity = OverallMaturity(m.MaturityCounts)
	return m
}

// OverallMaturity picks the most frequent maturity across reports as the
// package's overall maturity. Ties resolve to the earliest tier reaching
// the maximum in declaration order; there is no settled policy for equal
// counts yet.
func OverallMaturity(counts map[diagnostics.Maturity]int) diagnostics.Maturity {
	best := diagnostics.MaturityConceptOnly
	bestCount := -1
	for _, tier := range diagnostics.Maturities() {
		if c := counts[tier]; c > bestCount {
			best, bestCount = tier, c
		}
	}
	return best
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
