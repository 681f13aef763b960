package unit

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

func init() {
	Register("expect_column_values_to_be_between", func() Unit { return &ColumnValuesBetween{} })
	Register("expect_column_values_to_not_be_null", func() Unit { return &ColumnValuesNotNull{} })
	Register("expect_column_values_to_be_unique", func() Unit { return &ColumnValuesUnique{} })
}

// decodeKwargs decodes loosely-typed example kwargs into a typed struct.
// Weak typing lets YAML integers satisfy float fields.
func decodeKwargs(in map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("building kwargs decoder: %w", err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("decoding kwargs: %w", err)
	}
	return nil
}

// ColumnValuesBetween expects values in a column to fall inside a range.
type ColumnValuesBetween struct{}

var _ Unit = (*ColumnValuesBetween)(nil)

func (*ColumnValuesBetween) Name() string { return "expect_column_values_to_be_between" }

func (*ColumnValuesBetween) RendererNames() []string {
	return []string{"_diagnostic_renderer", "_prescriptive_renderer"}
}

func (*ColumnValuesBetween) DeclaresValidateConfiguration() bool { return true }

func (*ColumnValuesBetween) ValidateConfiguration(cfg Configuration) (bool, error) {
	var kw struct {
		Column    string   `mapstructure:"column"`
		MinValue  *float64 `mapstructure:"min_value"`
		MaxValue  *float64 `mapstructure:"max_value"`
		StrictMin bool     `mapstructure:"strict_min"`
		StrictMax bool     `mapstructure:"strict_max"`
	}
	if err := decodeKwargs(cfg.Kwargs, &kw); err != nil {
		return false, err
	}
	if kw.Column == "" {
		return false, nil
	}
	// At least one bound must be given, and the range must not be inverted.
	if kw.MinValue == nil && kw.MaxValue == nil {
		return false, nil
	}
	if kw.MinValue != nil && kw.MaxValue != nil && *kw.MinValue > *kw.MaxValue {
		return false, nil
	}
	return true, nil
}

// ColumnValuesNotNull expects a column to contain no null values.
type ColumnValuesNotNull struct{}

var _ Unit = (*ColumnValuesNotNull)(nil)

func (*ColumnValuesNotNull) Name() string { return "expect_column_values_to_not_be_null" }

func (*ColumnValuesNotNull) RendererNames() []string {
	return []string{"_diagnostic_renderer", "_prescriptive_renderer", "_question_renderer"}
}

func (*ColumnValuesNotNull) DeclaresValidateConfiguration() bool { return true }

func (*ColumnValuesNotNull) ValidateConfiguration(cfg Configuration) (bool, error) {
	var kw struct {
		Column string   `mapstructure:"column"`
		Mostly *float64 `mapstructure:"mostly"`
	}
	if err := decodeKwargs(cfg.Kwargs, &kw); err != nil {
		return false, err
	}
	if kw.Column == "" {
		return false, nil
	}
	if kw.Mostly != nil && (*kw.Mostly < 0 || *kw.Mostly > 1) {
		return false, nil
	}
	return true, nil
}

// ColumnValuesUnique expects a column to contain no duplicate values. It
// relies on the inherited default validation, so it does not declare its
// own.
type ColumnValuesUnique struct{}

var _ Unit = (*ColumnValuesUnique)(nil)

func (*ColumnValuesUnique) Name() string { return "expect_column_values_to_be_unique" }

func (*ColumnValuesUnique) RendererNames() []string {
	return []string{"_diagnostic_renderer"}
}

func (*ColumnValuesUnique) DeclaresValidateConfiguration() bool { return false }

func (*ColumnValuesUnique) ValidateConfiguration(Configuration) (bool, error) {
	// Inherited default: accept anything.
	return true, nil
}
