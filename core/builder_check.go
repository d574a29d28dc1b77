package core

import (
	"slices"

	"github.com/huangsam/readiness/schema"
)

// CheckResultBuilder turns an assessment into a pass/fail gate result.
type CheckResultBuilder struct {
	assessment *schema.Assessment
	minScore   float64
	weak       []schema.CheckWeakCategory
	result     *schema.CheckResult
}

// NewCheckResultBuilder creates a builder gating a on minScore.
func NewCheckResultBuilder(a *schema.Assessment, minScore float64) *CheckResultBuilder {
	return &CheckResultBuilder{assessment: a, minScore: minScore}
}

// FindWeakCategories collects categories scoring below the threshold, weakest first.
func (b *CheckResultBuilder) FindWeakCategories() *CheckResultBuilder {
	b.weak = nil
	for _, c := range b.assessment.Categories {
		if c.Score < b.minScore {
			b.weak = append(b.weak, schema.CheckWeakCategory{
				Name:         c.Name,
				Score:        c.Score,
				Contribution: c.Contribution,
			})
		}
	}
	slices.SortStableFunc(b.weak, func(x, y schema.CheckWeakCategory) int {
		switch {
		case x.Score < y.Score:
			return -1
		case x.Score > y.Score:
			return 1
		}
		return 0
	})
	return b
}

// BuildResult constructs the final CheckResult.
func (b *CheckResultBuilder) BuildResult() *schema.CheckResult {
	b.result = &schema.CheckResult{
		Jurisdiction:   b.assessment.Jurisdiction,
		Passed:         b.assessment.Overall.Score >= b.minScore,
		Score:          b.assessment.Overall.Score,
		MinScore:       b.minScore,
		Label:          b.assessment.Overall.Label,
		Severity:       b.assessment.Overall.Severity,
		WeakCategories: b.weak,
	}
	return b.result
}

// GetResult returns the built CheckResult, or nil before BuildResult.
func (b *CheckResultBuilder) GetResult() *schema.CheckResult {
	return b.result
}
