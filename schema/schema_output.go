package schema

// Column names for metric-level exports.
const (
	ColCategory  = "Category"
	ColMetric    = "Metric"
	ColInput     = "Input"
	ColScore     = "Score"
	ColSubWeight = "Sub-weight"
	ColWeighted  = "Weighted (metric)"
	ColRationale = "Rationale"
)

// Column names for category-level exports.
const (
	ColCategoryWeight = "Category weight"
	ColCategoryScore  = "Category score (weighted sub-metrics)"
	ColContribution   = "Contribution to overall"
)

// MetricColumns is the column order of metric-level records.
var MetricColumns = []string{ColCategory, ColMetric, ColInput, ColScore, ColSubWeight, ColWeighted, ColRationale}

// CategoryColumns is the column order of category-level records.
var CategoryColumns = []string{ColCategory, ColCategoryWeight, ColCategoryScore, ColContribution}

// Field is one key/value cell of a Record.
type Field struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Record is an ordered row for tabular exports.
type Record []Field

// Keys returns the field names in order.
func (r Record) Keys() []string {
	keys := make([]string, len(r))
	for i, f := range r {
		keys[i] = f.Key
	}
	return keys
}

// Get returns the value stored under key.
func (r Record) Get(key string) (any, bool) {
	for _, f := range r {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// MetricRecords returns one record per metric, rounded the way exports show them.
func (a *Assessment) MetricRecords() []Record {
	var records []Record
	for _, m := range a.Metrics() {
		input := m.Input.Any()
		if m.Input.IsAbsent() {
			input = "N/A"
		}
		records = append(records, Record{
			{ColCategory, m.Category},
			{ColMetric, m.Label},
			{ColInput, input},
			{ColScore, m.Score},
			{ColSubWeight, m.Weight},
			{ColWeighted, Round(m.Weighted(), 3)},
			{ColRationale, m.Rationale},
		})
	}
	return records
}

// CategoryRecords returns one record per category.
func (a *Assessment) CategoryRecords() []Record {
	records := make([]Record, 0, len(a.Categories))
	for _, c := range a.Categories {
		records = append(records, Record{
			{ColCategory, c.Name},
			{ColCategoryWeight, c.Weight},
			{ColCategoryScore, Round(c.Score, 3)},
			{ColContribution, Round(c.Contribution, 3)},
		})
	}
	return records
}

// RankedAssessment adds presentation data to an Assessment.
type RankedAssessment struct {
	Rank int `json:"rank"`
	Assessment
}

// EnrichAssessments adds rank to an already sorted list of assessments.
func EnrichAssessments(assessments []Assessment) []RankedAssessment {
	output := make([]RankedAssessment, len(assessments))
	for i, a := range assessments {
		output[i] = RankedAssessment{
			Rank:       i + 1,
			Assessment: a,
		}
	}
	return output
}
