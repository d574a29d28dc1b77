package outwriter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/require"
)

// sampleAssessment returns a small, fully populated assessment.
func sampleAssessment() *schema.Assessment {
	return &schema.Assessment{
		ID:           "a-1",
		Jurisdiction: "Saudi Arabia",
		CreatedAt:    time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC),
		Categories: []schema.CategoryResult{
			{
				Name: "Regulatory", Weight: 0.6, Score: 3.5, Contribution: 2.1,
				Metrics: []schema.MetricResult{
					{Category: "Regulatory", Key: "licensing_clarity", Label: "Licensing clarity", Input: schema.Number(85), Score: 4, Weight: 0.5, Rationale: "85 ≥ 80 → 4"},
					{Category: "Regulatory", Key: "shariah_board", Label: "Shariah board", Input: schema.Absent(), Score: 3, Weight: 0.5, Rationale: "N/A → neutral 3"},
				},
			},
			{
				Name: "Market Demand", Weight: 0.4, Score: 5, Contribution: 2,
				Metrics: []schema.MetricResult{
					{Category: "Market Demand", Key: "investor_demand", Label: "Investor demand", Input: schema.Text("Excellent"), Score: 5, Weight: 1, Rationale: "Excellent → 5"},
				},
			},
		},
		Overall: schema.OverallResult{
			Score: 4.1, Percent: 82, Label: schema.GoodLabel, Severity: schema.BlueSeverity,
			Narrative: "**Market Assessment: Saudi Arabia**\n\nLaunch Readiness: 4.10/5 → **Strong candidate (Good)**",
		},
		TotalCategoryWeight: 1,
		Spread:              schema.Spread{Mean: 4.25, Median: 4.25, StdDev: 0.75, Min: 3.5, Max: 5},
	}
}

// testConfig returns a config writing to a file inside a temp dir.
func testConfig(t *testing.T, output schema.OutputMode, name string) *contract.Config {
	t.Helper()
	return &contract.Config{
		Output:     output,
		OutputFile: filepath.Join(t.TempDir(), name),
		Precision:  2,
		Width:      200,
		Workers:    2,
		MinScore:   3,
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
