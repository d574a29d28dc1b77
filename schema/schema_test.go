package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want Value
	}{
		{"nil", nil, Absent()},
		{"float", 60.5, Number(60.5)},
		{"int", 3, Number(3)},
		{"int64", int64(7), Number(7)},
		{"json number", json.Number("12.5"), Number(12.5)},
		{"string", "Strong", Text("Strong")},
		{"bool", true, Bool(true)},
		{"slice", []any{1, 2}, Absent()},
		{"value passthrough", Text("x"), Text("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueOf(tt.raw))
		})
	}
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "N/A", Absent().String())
	assert.Equal(t, "60", Number(60).String())
	assert.Equal(t, "0.25", Number(0.25).String())
	assert.Equal(t, "Strong", Text("Strong").String())
	assert.Equal(t, "false", Bool(false).String())
}

func TestValueJSON(t *testing.T) {
	in := map[string]Value{"a": Number(2), "b": Text("High"), "c": Bool(true), "d": Absent()}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2,"b":"High","c":true,"d":null}`, string(data))

	var out map[string]Value
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestValuesCloneIsDeep(t *testing.T) {
	vs := Values{}
	vs.Set("Market", "demand", Text("Strong"))

	clone := vs.Clone()
	clone.Set("Market", "demand", Text("Weak"))
	clone.Set("Legal", "board", Bool(true))

	assert.Equal(t, Text("Strong"), vs.Get("Market", "demand"))
	assert.True(t, vs.Get("Legal", "board").IsAbsent())
	assert.Equal(t, Bool(true), clone.Get("Legal", "board"))

	var nilValues Values
	assert.True(t, nilValues.Get("x", "y").IsAbsent())
}

func TestMetricDefaults(t *testing.T) {
	m := Metric{Key: "demand"}
	assert.Equal(t, "demand", m.DisplayLabel())
	assert.Equal(t, DefaultSelectOptions, m.SelectOptions())

	m.Label = "Market demand"
	m.Options = []string{"Low", "High"}
	assert.Equal(t, "Market demand", m.DisplayLabel())
	assert.Equal(t, []string{"Low", "High"}, m.SelectOptions())
}

func TestRubricHelpers(t *testing.T) {
	r := Rubric{Categories: []Category{
		{Name: "A", Weight: 0.6, Metrics: []Metric{{Key: "x", Weight: 0.25}, {Key: "y", Weight: 0.75}}},
		{Name: "B", Weight: 0.3, Metrics: []Metric{{Key: "z", Weight: 1}}},
	}}

	assert.InDelta(t, 0.9, r.TotalWeight(), 1e-9)
	assert.Equal(t, 3, r.MetricCount())

	c, ok := r.Category("A")
	require.True(t, ok)
	assert.InDelta(t, 1.0, c.MetricWeight(), 1e-9)

	_, ok = r.Category("missing")
	assert.False(t, ok)
}

func TestMetricTypeHelpers(t *testing.T) {
	assert.True(t, CustomShariahBoard.IsCustom())
	assert.True(t, CustomShariahBoard.IsKnown())
	assert.True(t, MetricType("custom_mystery").IsCustom())
	assert.False(t, MetricType("custom_mystery").IsKnown())
	assert.False(t, NumericMetric.IsCustom())
}

func testAssessment() *Assessment {
	return &Assessment{
		Jurisdiction: "Test Land",
		Categories: []CategoryResult{
			{
				Name: "Market", Weight: 0.5, Score: 4.33333, Contribution: 2.1667,
				Metrics: []MetricResult{
					{Category: "Market", Key: "demand", Label: "Demand", Input: Text("Strong"), Score: 4, Weight: 0.6667, Rationale: "Strong → 4"},
					{Category: "Market", Key: "count", Label: "count", Input: Absent(), Score: 3, Weight: 0.3333, Rationale: "N/A → neutral 3"},
				},
			},
		},
	}
}

func TestMetricRecords(t *testing.T) {
	records := testAssessment().MetricRecords()
	require.Len(t, records, 2)

	assert.Equal(t, MetricColumns, records[0].Keys())
	weighted, ok := records[0].Get(ColWeighted)
	require.True(t, ok)
	assert.Equal(t, 2.667, weighted)

	input, _ := records[1].Get(ColInput)
	assert.Equal(t, "N/A", input)

	_, ok = records[0].Get("nope")
	assert.False(t, ok)
}

func TestCategoryRecords(t *testing.T) {
	records := testAssessment().CategoryRecords()
	require.Len(t, records, 1)
	assert.Equal(t, CategoryColumns, records[0].Keys())

	score, _ := records[0].Get(ColCategoryScore)
	contribution, _ := records[0].Get(ColContribution)
	assert.Equal(t, 4.333, score)
	assert.Equal(t, 2.167, contribution)
}

func TestEnrichAssessments(t *testing.T) {
	ranked := EnrichAssessments([]Assessment{{Jurisdiction: "A"}, {Jurisdiction: "B"}})
	require.Len(t, ranked, 2)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "B", ranked[1].Jurisdiction)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "Saudi_Arabia", SafeFileName("Saudi Arabia"))
	assert.Equal(t, "UAE_Dubai", SafeFileName("UAE/Dubai"))
	assert.Equal(t, "readiness", SafeFileName("  "))
	assert.Equal(t, 3.142, Round(3.14159, 3))
	assert.Equal(t, 2.5, Round(2.5, 2))
	assert.Equal(t, "1e+21", FormatNumber(1e21))
}
