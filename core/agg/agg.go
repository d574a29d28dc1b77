// Package agg has aggregation logic for metric and category scores.
package agg

import (
	"github.com/huangsam/readiness/schema"
	"github.com/montanaflynn/stats"
)

// Readiness label thresholds on the 1-5 overall scale.
const (
	excellentThreshold   = 4.5
	goodThreshold        = 3.8
	conditionalThreshold = 3.0
)

// AggregateCategory returns the weight-normalised average of metric scores.
// Dividing by the weight sum (not the count) keeps categories with different
// metric counts on the same 1-5 scale. A zero weight sum yields 0.
func AggregateCategory(results []schema.MetricResult) float64 {
	var weighted, total float64
	for _, r := range results {
		weighted += r.Weighted()
		total += r.Weight
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// BuildCategory rolls metric results up into a CategoryResult, including its
// contribution to the overall score.
func BuildCategory(c *schema.Category, results []schema.MetricResult) schema.CategoryResult {
	score := AggregateCategory(results)
	return schema.CategoryResult{
		Name:         c.Name,
		Weight:       c.Weight,
		Score:        score,
		Contribution: score * c.Weight,
		Metrics:      results,
	}
}

// AggregateOverall sums category scores multiplied by their weights.
// Weights are not re-normalised when they drift from 1.00.
func AggregateOverall(categories []schema.CategoryResult) float64 {
	overall := 0.0
	for _, c := range categories {
		overall += c.Score * c.Weight
	}
	return overall
}

// ReadinessLabel maps an overall score to its verdict and display severity.
func ReadinessLabel(score float64) (schema.Label, schema.Severity) {
	switch {
	case score >= excellentThreshold:
		return schema.ExcellentLabel, schema.GreenSeverity
	case score >= goodThreshold:
		return schema.GoodLabel, schema.BlueSeverity
	case score >= conditionalThreshold:
		return schema.ConditionalLabel, schema.OrangeSeverity
	default:
		return schema.HighRiskLabel, schema.RedSeverity
	}
}

// Percent expresses an overall score as a share of the maximum score.
func Percent(score float64) float64 {
	return score / schema.MaxScore * 100
}

// ComputeSpread describes the distribution of category scores.
// An empty input yields a zero Spread.
func ComputeSpread(categories []schema.CategoryResult) schema.Spread {
	if len(categories) == 0 {
		return schema.Spread{}
	}
	data := make(stats.Float64Data, len(categories))
	for i, c := range categories {
		data[i] = c.Score
	}

	// stats only errors on empty input, which is handled above
	mean, _ := data.Mean()
	median, _ := data.Median()
	stddev, _ := data.StandardDeviation()
	lo, _ := data.Min()
	hi, _ := data.Max()
	return schema.Spread{Mean: mean, Median: median, StdDev: stddev, Min: lo, Max: hi}
}
