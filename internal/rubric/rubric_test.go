package rubric

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const orderedRubric = `
categories:
  Zeta:
    weight: 0.6
    metrics:
      z_last:
        type: numeric
        breaks: [0, 50, 100]
        scores: [1, 3, 5]
        weight: 0.5
        reason: declared first
      a_first:
        breaks: [10]
        scores: [4]
        direction: lower_better
        weight: 0.5
  Alpha:
    weight: 0.4
    metrics:
      demand:
        custom: true
        reverse_options: true
        weight: 1
`

func TestParse_PreservesOrderAndDefaults(t *testing.T) {
	r, err := Parse([]byte(orderedRubric), "test.yaml")
	require.NoError(t, err)

	want := &schema.Rubric{
		Source: "test.yaml",
		Categories: []schema.Category{
			{
				Name: "Zeta", Weight: 0.6,
				Metrics: []schema.Metric{
					{Key: "z_last", Type: schema.NumericMetric, Breaks: []float64{0, 50, 100}, Scores: []int{1, 3, 5}, Direction: schema.HigherBetter, Weight: 0.5, Reason: "declared first"},
					{Key: "a_first", Type: schema.NumericMetric, Breaks: []float64{10}, Scores: []int{4}, Direction: schema.LowerBetter, Weight: 0.5},
				},
			},
			{
				Name: "Alpha", Weight: 0.4,
				Metrics: []schema.Metric{
					{Key: "demand", Type: schema.GenericSelect, Reverse: true, Weight: 1},
				},
			},
		},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_JSONShape(t *testing.T) {
	data := `{"categories": {
		"Legal": {"weight": 1.0, "metrics": {
			"board": {"type": "custom_shariah_board", "weight": 0.5, "reason": "r", "field": "board"},
			"sandbox": {"type": "custom_binary_high_good", "weight": 0.5, "reason": "r"}
		}}
	}}`
	r, err := Parse([]byte(data), "thresholds.json")
	require.NoError(t, err)
	require.Len(t, r.Categories, 1)
	require.Len(t, r.Categories[0].Metrics, 2)
	assert.Equal(t, "board", r.Categories[0].Metrics[0].Key)
	assert.Equal(t, schema.CustomShariahBoard, r.Categories[0].Metrics[0].Type)
	assert.Equal(t, "sandbox", r.Categories[0].Metrics[1].Key)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty document", "", ErrNoCategories},
		{"no categories key", "other: 1\n", ErrNoCategories},
		{"empty categories", "categories: {}\n", ErrNoCategories},
		{"top level list", "- a\n- b\n", ErrNotMapping},
		{"categories list", "categories: [a, b]\n", ErrNotMapping},
		{"duplicate category", "categories:\n  A:\n    weight: 1\n  A:\n    weight: 1\n", ErrDuplicateKey},
		{"duplicate metric", "categories:\n  A:\n    weight: 1\n    metrics:\n      m: {type: custom_shariah_board, weight: 1}\n      m: {type: custom_shariah_board, weight: 1}\n", ErrDuplicateKey},
		{"missing category weight", "categories:\n  A:\n    metrics: {}\n", ErrMissingField},
		{"missing metric weight", "categories:\n  A:\n    weight: 1\n    metrics:\n      m: {type: custom_shariah_board}\n", ErrMissingField},
		{"missing metric type", "categories:\n  A:\n    weight: 1\n    metrics:\n      m: {weight: 1}\n", ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "bad.yaml")
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("categories: [unclosed"), "bad.yaml")
	assert.Error(t, err)
}

func numericRubric(m schema.Metric) *schema.Rubric {
	m.Key = "m"
	if m.Type == "" {
		m.Type = schema.NumericMetric
	}
	if m.Weight == 0 {
		m.Weight = 1
	}
	return &schema.Rubric{Categories: []schema.Category{{Name: "A", Weight: 1, Metrics: []schema.Metric{m}}}}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		metric  schema.Metric
		wantErr error
	}{
		{"no breaks", schema.Metric{Direction: schema.HigherBetter}, ErrNoBreaks},
		{"length mismatch", schema.Metric{Breaks: []float64{0, 50}, Scores: []int{1}, Direction: schema.HigherBetter}, ErrBreaksScoresMismatch},
		{"not ascending", schema.Metric{Breaks: []float64{0, 50, 50}, Scores: []int{1, 3, 5}, Direction: schema.HigherBetter}, ErrBreaksNotAscending},
		{"descending", schema.Metric{Breaks: []float64{100, 50}, Scores: []int{1, 3}, Direction: schema.HigherBetter}, ErrBreaksNotAscending},
		{"score too high", schema.Metric{Breaks: []float64{0}, Scores: []int{6}, Direction: schema.HigherBetter}, ErrScoreOutOfRange},
		{"score too low", schema.Metric{Breaks: []float64{0}, Scores: []int{0}, Direction: schema.HigherBetter}, ErrScoreOutOfRange},
		{"bad direction", schema.Metric{Breaks: []float64{0}, Scores: []int{3}, Direction: "sideways"}, ErrInvalidDirection},
		{"too many options", schema.Metric{Type: schema.GenericSelect, Options: []string{"a", "b", "c", "d", "e", "f"}}, ErrTooManyOptions},
		{"duplicate option", schema.Metric{Type: schema.GenericSelect, Options: []string{"a", "a"}}, ErrDuplicateOption},
		{"negative weight", schema.Metric{Type: schema.CustomShariahBoard, Weight: -1}, ErrNegativeWeight},
		{"unknown type", schema.Metric{Type: "fancy"}, ErrUnknownType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(numericRubric(tt.metric))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	r := &schema.Rubric{Categories: []schema.Category{
		{Name: "A", Weight: 0.5, Metrics: []schema.Metric{
			{Key: "x", Type: "custom_future", Weight: 1},
		}},
		{Name: "B", Weight: 0.3, Metrics: []schema.Metric{
			{Key: "y", Type: schema.CustomBinaryHighGood, Weight: 0},
		}},
		{Name: "C", Weight: 0.1},
		{Name: "D", Weight: 0.05, Metrics: []schema.Metric{
			{Key: "z", Type: schema.NumericMetric, Breaks: []float64{0, 10}, Scores: []int{5, 1}, Direction: schema.LowerBetter, Weight: 1},
		}},
	}}

	warnings, err := Validate(r)
	require.NoError(t, err)
	assert.Equal(t, []string{
		`Metric A.x: unhandled custom type "custom_future" will score a neutral 3`,
		`Category "B" metric weights sum to 0; its score will be 0`,
		`Category "C" has no metrics; its score will be 0`,
		"Metric D.z: scores are not ascending, so the score may not move with the value",
		"Total category weights = 0.95 (should be 1.00)",
	}, warnings)
}

func TestWeightWarning(t *testing.T) {
	assert.Empty(t, WeightWarning(1.0))
	assert.Empty(t, WeightWarning(0.9995))
	assert.Equal(t, "Total category weights = 1.10 (should be 1.00)", WeightWarning(1.1))
}

func TestLoadDefault(t *testing.T) {
	r, warnings, err := LoadDefault()
	require.NoError(t, err)
	assert.Empty(t, warnings, "the default rubric should be clean")
	assert.Equal(t, DefaultSource, r.Source)
	assert.InDelta(t, 1.0, r.TotalWeight(), WeightTolerance)

	names := make([]string, len(r.Categories))
	for i, c := range r.Categories {
		names[i] = c.Name
		assert.InDelta(t, 1.0, c.MetricWeight(), WeightTolerance, "metric weights of %s", c.Name)
	}
	assert.Equal(t, []string{"Regulatory", "Market Demand", "Competition", "Digital Infrastructure", "Cultural Fit", "Operations"}, names)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rubric.yaml")
	require.NoError(t, os.WriteFile(path, []byte(orderedRubric), 0o644))

	r, warnings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, r.Source)
	assert.Empty(t, warnings)

	r, _, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSource, r.Source)

	_, _, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("categories:\n  A:\n    weight: 1\n    metrics:\n      m: {breaks: [5, 1], scores: [1, 2], weight: 1}\n"), 0o644))
	_, _, err = Load(bad)
	assert.ErrorIs(t, err, ErrBreaksNotAscending)
}
