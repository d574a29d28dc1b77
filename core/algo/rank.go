package algo

import (
	"sort"

	"github.com/huangsam/readiness/schema"
)

// RankCategories returns a copy of the categories sorted by score in descending
// order. Ties keep rubric order. If limit is positive and smaller than the
// number of categories, only the top 'limit' are returned.
func RankCategories(categories []schema.CategoryResult, limit int) []schema.CategoryResult {
	ranked := make([]schema.CategoryResult, len(categories))
	copy(ranked, categories)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if limit > 0 && len(ranked) > limit {
		return ranked[:limit]
	}
	return ranked
}

// RankAssessments sorts assessments by overall score in descending order.
// Ties are broken by jurisdiction name so batch output is deterministic.
func RankAssessments(assessments []schema.Assessment) []schema.Assessment {
	sort.SliceStable(assessments, func(i, j int) bool {
		if assessments[i].Overall.Score != assessments[j].Overall.Score {
			return assessments[i].Overall.Score > assessments[j].Overall.Score
		}
		return assessments[i].Jurisdiction < assessments[j].Jurisdiction
	})
	return assessments
}
