package core

import (
	"testing"

	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/assert"
)

func TestNarrative(t *testing.T) {
	categories := []schema.CategoryResult{
		{Name: "Operations", Score: 2},
		{Name: "Regulatory", Score: 4.5},
		{Name: "Competition", Score: 3},
		{Name: "Cultural Fit", Score: 1.25},
	}

	want := "**Market Assessment: Oman**\n\n" +
		"Launch Readiness: 3.20/5 → **Conditional (Needs fixes)**\n\n" +
		"Top-scoring categories:\n" +
		"- Regulatory: 4.50\n" +
		"- Competition: 3.00\n" +
		"- Operations: 2.00\n" +
		"\nLowest-scoring categories:\n" +
		"- Competition: 3.00\n" +
		"- Operations: 2.00\n" +
		"- Cultural Fit: 1.25"

	assert.Equal(t, want, Narrative("Oman", categories, 3.2))
}

func TestNarrative_FewCategories(t *testing.T) {
	got := Narrative("Solo", []schema.CategoryResult{{Name: "Only", Score: 5}}, 5)

	assert.Contains(t, got, "→ **Launch-ready (Excellent)**")
	assert.Contains(t, got, "Top-scoring categories:\n- Only: 5.00\n")
	assert.Contains(t, got, "Lowest-scoring categories:\n- Only: 5.00")
}

func TestNarrative_TiesKeepRubricOrder(t *testing.T) {
	categories := []schema.CategoryResult{
		{Name: "First", Score: 3},
		{Name: "Second", Score: 3},
	}
	got := Narrative("Tied", categories, 3)
	assert.Contains(t, got, "Top-scoring categories:\n- First: 3.00\n- Second: 3.00\n")
}
