package core

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/readiness/core/agg"
	"github.com/huangsam/readiness/core/algo"
	"github.com/huangsam/readiness/internal/rubric"
	"github.com/huangsam/readiness/schema"
)

// AssessmentBuilder builds one jurisdiction's assessment using a builder pattern.
// Each builder owns its values and results; the rubric is shared read-only.
type AssessmentBuilder struct {
	rubric       *schema.Rubric
	jurisdiction string
	values       schema.Values
	now          func() time.Time
	warnings     []string
	categories   []schema.CategoryResult
	overall      schema.OverallResult
	spread       schema.Spread
	result       *schema.Assessment
}

// NewAssessmentBuilder creates a new builder for an assessment.
func NewAssessmentBuilder(r *schema.Rubric, jurisdiction string, values schema.Values) *AssessmentBuilder {
	return &AssessmentBuilder{
		rubric:       r,
		jurisdiction: jurisdiction,
		values:       values,
		now:          time.Now,
	}
}

// CheckInputs records warnings for category weight drift and for input values
// that do not match any rubric metric.
func (b *AssessmentBuilder) CheckInputs() *AssessmentBuilder {
	if w := rubric.WeightWarning(b.rubric.TotalWeight()); w != "" {
		b.warnings = append(b.warnings, w)
	}

	var unknown []string
	for category, metrics := range b.values {
		c, ok := b.rubric.Category(category)
		if !ok {
			unknown = append(unknown, fmt.Sprintf("Input category %q is not in the rubric and was ignored", category))
			continue
		}
		for key := range metrics {
			if !hasMetric(c, key) {
				unknown = append(unknown, fmt.Sprintf("Input metric %s.%s is not in the rubric and was ignored", category, key))
			}
		}
	}
	sort.Strings(unknown)
	b.warnings = append(b.warnings, unknown...)
	return b
}

// ScoreMetrics scores every rubric metric and rolls each category up.
// Metrics without an input score through the N/A fallback.
func (b *AssessmentBuilder) ScoreMetrics() *AssessmentBuilder {
	b.categories = make([]schema.CategoryResult, 0, len(b.rubric.Categories))
	for i := range b.rubric.Categories {
		c := &b.rubric.Categories[i]
		results := make([]schema.MetricResult, 0, len(c.Metrics))
		for j := range c.Metrics {
			m := &c.Metrics[j]
			v := b.values.Get(c.Name, m.Key)
			score, rationale := algo.ScoreMetric(m, v)
			results = append(results, schema.MetricResult{
				Category:  c.Name,
				Key:       m.Key,
				Label:     m.DisplayLabel(),
				Input:     v,
				Score:     score,
				Weight:    m.Weight,
				Reason:    m.Reason,
				Rationale: rationale,
			})
		}
		b.categories = append(b.categories, agg.BuildCategory(c, results))
	}
	return b
}

// ComputeOverall aggregates category scores into the overall verdict.
func (b *AssessmentBuilder) ComputeOverall() *AssessmentBuilder {
	score := agg.AggregateOverall(b.categories)
	label, severity := agg.ReadinessLabel(score)
	b.overall = schema.OverallResult{
		Score:    score,
		Percent:  agg.Percent(score),
		Label:    label,
		Severity: severity,
	}
	return b
}

// Summarize adds the narrative and category spread.
func (b *AssessmentBuilder) Summarize() *AssessmentBuilder {
	b.overall.Narrative = Narrative(b.jurisdiction, b.categories, b.overall.Score)
	b.spread = agg.ComputeSpread(b.categories)
	return b
}

// Build constructs the final Assessment.
func (b *AssessmentBuilder) Build() *schema.Assessment {
	b.result = &schema.Assessment{
		ID:                  uuid.NewString(),
		Jurisdiction:        b.jurisdiction,
		CreatedAt:           b.now().UTC(),
		Categories:          b.categories,
		Overall:             b.overall,
		TotalCategoryWeight: b.rubric.TotalWeight(),
		Spread:              b.spread,
		Warnings:            b.warnings,
	}
	return b.result
}

// GetResult returns the built Assessment, or nil before Build.
func (b *AssessmentBuilder) GetResult() *schema.Assessment {
	return b.result
}

// Assess runs a complete scoring pass for one jurisdiction.
func Assess(r *schema.Rubric, jurisdiction string, values schema.Values) *schema.Assessment {
	return NewAssessmentBuilder(r, jurisdiction, values).
		CheckInputs().
		ScoreMetrics().
		ComputeOverall().
		Summarize().
		Build()
}

func hasMetric(c *schema.Category, key string) bool {
	for _, m := range c.Metrics {
		if m.Key == key {
			return true
		}
	}
	return false
}
