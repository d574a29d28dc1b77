// Package schema has the rubric model, input values and result types for readiness scoring.
package schema

import "time"

// Metric is a single scored input dimension and the rule that scores it.
// Breaks, Scores and Direction apply to numeric metrics; Options and Reverse
// apply to generic_select metrics; custom metrics only need the common fields.
type Metric struct {
	Key       string     `json:"key"`
	Label     string     `json:"label"`
	Type      MetricType `json:"type"`
	Weight    float64    `json:"weight"`
	Reason    string     `json:"reason,omitempty"`
	Breaks    []float64  `json:"breaks,omitempty"`
	Scores    []int      `json:"scores,omitempty"`
	Direction Direction  `json:"direction,omitempty"`
	Options   []string   `json:"options,omitempty"`
	Reverse   bool       `json:"reverse,omitempty"`
}

// DisplayLabel returns the human label, falling back to the metric key.
func (m *Metric) DisplayLabel() string {
	if m.Label != "" {
		return m.Label
	}
	return m.Key
}

// SelectOptions returns the declared options or the default ordinal scale.
func (m *Metric) SelectOptions() []string {
	if len(m.Options) == 0 {
		return DefaultSelectOptions
	}
	return m.Options
}

// Category is a weighted group of metrics.
type Category struct {
	Name    string   `json:"name"`
	Weight  float64  `json:"weight"`
	Metrics []Metric `json:"metrics"`
}

// MetricWeight returns the sum of the category's metric weights.
func (c *Category) MetricWeight() float64 {
	total := 0.0
	for _, m := range c.Metrics {
		total += m.Weight
	}
	return total
}

// Rubric is the full declarative scoring configuration, in declaration order.
// It is loaded once and never mutated afterwards.
type Rubric struct {
	Source     string     `json:"source,omitempty"`
	Categories []Category `json:"categories"`
}

// TotalWeight returns the sum of all category weights. It should be 1.00.
func (r *Rubric) TotalWeight() float64 {
	total := 0.0
	for _, c := range r.Categories {
		total += c.Weight
	}
	return total
}

// Category looks up a category by name.
func (r *Rubric) Category(name string) (*Category, bool) {
	for i := range r.Categories {
		if r.Categories[i].Name == name {
			return &r.Categories[i], true
		}
	}
	return nil, false
}

// MetricCount returns the number of metrics across all categories.
func (r *Rubric) MetricCount() int {
	n := 0
	for _, c := range r.Categories {
		n += len(c.Metrics)
	}
	return n
}

// MetricResult is the outcome of scoring one metric.
type MetricResult struct {
	Category  string  `json:"category"`
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Input     Value   `json:"input"`
	Score     int     `json:"score"`
	Weight    float64 `json:"weight"`
	Reason    string  `json:"reason,omitempty"`
	Rationale string  `json:"rationale"`
}

// Weighted returns the metric's contribution before category normalisation.
func (m MetricResult) Weighted() float64 {
	return float64(m.Score) * m.Weight
}

// CategoryResult is the weighted roll-up of a category's metrics.
type CategoryResult struct {
	Name         string         `json:"name"`
	Weight       float64        `json:"weight"`
	Score        float64        `json:"score"`
	Contribution float64        `json:"contribution"`
	Metrics      []MetricResult `json:"metrics"`
}

// OverallResult is the final readiness verdict.
type OverallResult struct {
	Score     float64  `json:"score"`
	Percent   float64  `json:"percent"`
	Label     Label    `json:"label"`
	Severity  Severity `json:"severity"`
	Narrative string   `json:"narrative"`
}

// Spread summarises how evenly the category scores are distributed.
type Spread struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Assessment is the complete result of one scoring pass for one jurisdiction.
type Assessment struct {
	ID                  string           `json:"id"`
	Jurisdiction        string           `json:"jurisdiction"`
	CreatedAt           time.Time        `json:"created_at"`
	Categories          []CategoryResult `json:"categories"`
	Overall             OverallResult    `json:"overall"`
	TotalCategoryWeight float64          `json:"total_category_weight"`
	Spread              Spread           `json:"spread"`
	Warnings            []string         `json:"warnings,omitempty"`
}

// Metrics returns every metric result in rubric order.
func (a *Assessment) Metrics() []MetricResult {
	var out []MetricResult
	for _, c := range a.Categories {
		out = append(out, c.Metrics...)
	}
	return out
}

// BatchFailure records an input that could not be assessed.
type BatchFailure struct {
	Source string `json:"source"`
	Error  string `json:"error"`
}

// BatchResult holds several assessments ranked by overall score.
type BatchResult struct {
	ID          string         `json:"id"`
	Assessments []Assessment   `json:"assessments"`
	Failures    []BatchFailure `json:"failures,omitempty"`
}
