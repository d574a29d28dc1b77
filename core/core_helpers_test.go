package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/require"
)

// testRubric has one numeric category and one select category.
func testRubric() *schema.Rubric {
	clarity := schema.Metric{
		Key: "licensing_clarity", Type: schema.NumericMetric, Weight: 0.5,
		Breaks: []float64{0, 40, 60, 80, 90}, Scores: []int{1, 2, 3, 4, 5}, Direction: schema.HigherBetter,
	}
	speed := clarity
	speed.Key = "approval_speed"
	return &schema.Rubric{
		Source: "test",
		Categories: []schema.Category{
			{Name: "Regulatory", Weight: 0.5, Metrics: []schema.Metric{clarity, speed}},
			{Name: "Market Demand", Weight: 0.5, Metrics: []schema.Metric{
				{Key: "investor_demand", Type: schema.GenericSelect, Weight: 1},
			}},
		},
	}
}

// writeInput writes an input document into a temp dir and returns its path.
func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
