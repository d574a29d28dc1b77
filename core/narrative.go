package core

import (
	"fmt"
	"strings"

	"github.com/huangsam/readiness/core/agg"
	"github.com/huangsam/readiness/core/algo"
	"github.com/huangsam/readiness/schema"
)

// narrativeCount is how many categories appear in each narrative list.
const narrativeCount = 3

// Narrative renders the markdown market summary for one assessment: the
// overall verdict, the highest-scoring categories and the lowest-scoring ones.
// With fewer than six categories the two lists may overlap.
func Narrative(jurisdiction string, categories []schema.CategoryResult, overall float64) string {
	ranked := algo.RankCategories(categories, 0)
	top := ranked[:min(narrativeCount, len(ranked))]
	bottom := ranked[max(0, len(ranked)-narrativeCount):]
	label, _ := agg.ReadinessLabel(overall)

	var sb strings.Builder
	fmt.Fprintf(&sb, "**Market Assessment: %s**\n\n", jurisdiction)
	fmt.Fprintf(&sb, "Launch Readiness: %.2f/5 → **%s**\n\n", overall, label)
	sb.WriteString("Top-scoring categories:\n")
	for _, c := range top {
		fmt.Fprintf(&sb, "- %s: %.2f\n", c.Name, c.Score)
	}
	sb.WriteString("\nLowest-scoring categories:")
	for _, c := range bottom {
		fmt.Fprintf(&sb, "\n- %s: %.2f", c.Name, c.Score)
	}
	return sb.String()
}
