package unit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColumnValuesBetweenValidateConfiguration(t *testing.T) {
	tests := []struct {
		name   string
		kwargs map[string]any
		want   bool
	}{
		{
			name:   "valid range",
			kwargs: map[string]any{"column": "temp", "min_value": 0.0, "max_value": 100.0},
			want:   true,
		},
		{
			name:   "integer bounds from YAML decode weakly",
			kwargs: map[string]any{"column": "temp", "min_value": 0, "max_value": 100},
			want:   true,
		},
		{
			name:   "only one bound",
			kwargs: map[string]any{"column": "temp", "min_value": 10.0},
			want:   true,
		},
		{
			name:   "missing column",
			kwargs: map[string]any{"min_value": 0.0, "max_value": 1.0},
			want:   false,
		},
		{
			name:   "no bounds at all",
			kwargs: map[string]any{"column": "temp"},
			want:   false,
		},
		{
			name:   "inverted range",
			kwargs: map[string]any{"column": "temp", "min_value": 10.0, "max_value": 1.0},
			want:   false,
		},
	}
	u := &ColumnValuesBetween{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := u.ValidateConfiguration(Configuration{RuleType: u.Name(), Kwargs: tt.kwargs})
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestColumnValuesNotNullValidateConfiguration(t *testing.T) {
	u := &ColumnValuesNotNull{}

	ok, err := u.ValidateConfiguration(Configuration{Kwargs: map[string]any{"column": "id", "mostly": 0.95}})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = u.ValidateConfiguration(Configuration{Kwargs: map[string]any{"column": "id", "mostly": 1.5}})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = u.ValidateConfiguration(Configuration{Kwargs: map[string]any{"mostly": 0.5}})
	require.NoError(t, err)
	require.False(t, ok)
}

func TestColumnValuesUniqueUsesInheritedValidation(t *testing.T) {
	u := &ColumnValuesUnique{}
	require.False(t, u.DeclaresValidateConfiguration())

	ok, err := u.ValidateConfiguration(Configuration{})
	require.NoError(t, err)
	require.True(t, ok)
}
