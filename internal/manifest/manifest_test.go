package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/require"

	"github.com/rulegauge/rulegauge/internal/diagnostics"
)

func doc(name string, maturity diagnostics.Maturity, contributors ...string) *diagnostics.Document {
	return &diagnostics.Document{
		Description: diagnostics.Description{CamelName: name},
		LibraryMetadata: diagnostics.LibraryMetadata{
			Maturity:     maturity,
			Contributors: contributors,
			Requirements: []string{"pandas>=1.0"},
		},
		ExecutionEnginesList: []string{"pandas"},
	}
}

func TestBuild(t *testing.T) {
	docs := []*diagnostics.Document{
		doc("ExpectA", diagnostics.MaturityBeta, "@bob"),
		doc("ExpectB", diagnostics.MaturityBeta, "@alice"),
		doc("ExpectC", diagnostics.MaturityExperimental, "@alice"),
	}
	m := Build("my-rules", docs)

	require.Equal(t, "my-rules", m.PackageName)
	require.Equal(t, diagnostics.MaturityBeta, m.Maturity)
	require.Equal(t, map[diagnostics.Maturity]int{
		diagnostics.MaturityBeta:         2,
		diagnostics.MaturityExperimental: 1,
	}, m.MaturityCounts)

	// Contributor and requirement sets are deduped and sorted.
	require.Equal(t, []string{"@alice", "@bob"}, m.Contributors)
	require.Equal(t, []string{"pandas>=1.0"}, m.Requirements)

	// Units keep input order.
	require.Equal(t, "ExpectA", m.Units[0].Name)
	require.Equal(t, "ExpectB", m.Units[1].Name)
	require.Equal(t, "ExpectC", m.Units[2].Name)
}

func TestOverallMaturityTieBreak(t *testing.T) {
	// Equal counts resolve to the earliest tier in declaration order.
	counts := map[diagnostics.Maturity]int{
		diagnostics.MaturityExperimental: 2,
		diagnostics.MaturityProduction:   2,
	}
	require.Equal(t, diagnostics.MaturityExperimental, OverallMaturity(counts))

	counts = map[diagnostics.Maturity]int{
		diagnostics.MaturityConceptOnly: 1,
		diagnostics.MaturityBeta:        1,
	}
	require.Equal(t, diagnostics.MaturityConceptOnly, OverallMaturity(counts))
}

func TestOverallMaturityEmpty(t *testing.T) {
	require.Equal(t, diagnostics.MaturityConceptOnly, OverallMaturity(nil))
}

func TestWritePlainAndGzip(t *testing.T) {
	m := Build("my-rules", []*diagnostics.Document{doc("ExpectA", diagnostics.MaturityBeta, "@bob")})
	dir := t.TempDir()

	plain := filepath.Join(dir, "manifest.json")
	require.NoError(t, Write(m, plain))
	data, err := os.ReadFile(plain)
	require.NoError(t, err)
	var decoded Manifest
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, m.PackageName, decoded.PackageName)
	require.Equal(t, m.Maturity, decoded.Maturity)

	compressed := filepath.Join(dir, "manifest.json.gz")
	require.NoError(t, Write(m, compressed))
	f, err := os.Open(compressed)
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck
	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	decoded = Manifest{}
	require.NoError(t, json.NewDecoder(gz).Decode(&decoded))
	require.Equal(t, m.PackageName, decoded.PackageName)
}
