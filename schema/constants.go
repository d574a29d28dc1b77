package schema

import "strings"

// Custom string types for type safety.
type (
	// MetricType represents the scoring rule attached to a metric.
	MetricType string

	// Direction represents which end of a numeric scale is desirable.
	Direction string

	// OutputMode represents the format of the output.
	OutputMode string

	// Label represents the qualitative readiness verdict.
	Label string

	// Severity represents the display colour attached to a readiness label.
	Severity string
)

// All metric types supported. Anything prefixed with "custom_" that is not
// listed here is scored through the unhandled fallback.
const (
	NumericMetric           MetricType = "numeric" // default when breaks are present
	GenericSelect           MetricType = "generic_select"
	CustomIslamicRoboCount  MetricType = "custom_islamic_robo_count"
	CustomBinaryHighGood    MetricType = "custom_binary_high_good"
	CustomShariahBoard      MetricType = "custom_shariah_board"
	CustomTernaryAcceptance MetricType = "custom_ternary_acceptance"
)

// All numeric directions supported.
const (
	HigherBetter Direction = "higher_better" // default
	LowerBetter  Direction = "lower_better"
)

// All output modes supported.
const (
	TextOut     OutputMode = "text" // default
	CSVOut      OutputMode = "csv"
	JSONOut     OutputMode = "json"
	MarkdownOut OutputMode = "markdown"
	HTMLOut     OutputMode = "html"
	XLSXOut     OutputMode = "xlsx"
	ParquetOut  OutputMode = "parquet"
)

// Readiness labels, from best to worst.
const (
	ExcellentLabel   Label = "Launch-ready (Excellent)"
	GoodLabel        Label = "Strong candidate (Good)"
	ConditionalLabel Label = "Conditional (Needs fixes)"
	HighRiskLabel    Label = "High risk (Major issues)"
)

// Severities attached to each readiness label.
const (
	GreenSeverity  Severity = "green"
	BlueSeverity   Severity = "blue"
	OrangeSeverity Severity = "orange"
	RedSeverity    Severity = "red"
)

// Score bounds shared by every scorer.
const (
	MinScore     = 1
	NeutralScore = 3
	MaxScore     = 5
)

// DefaultSelectOptions is the ordinal scale used when a select metric declares no options.
var DefaultSelectOptions = []string{"Very weak", "Weak", "Moderate", "Strong", "Excellent"}

// ValidMetricTypes lists all metric types with a dedicated scorer.
var ValidMetricTypes = map[MetricType]struct{}{
	NumericMetric:           {},
	GenericSelect:           {},
	CustomIslamicRoboCount:  {},
	CustomBinaryHighGood:    {},
	CustomShariahBoard:      {},
	CustomTernaryAcceptance: {},
}

// ValidDirections lists all valid numeric directions.
var ValidDirections = map[Direction]struct{}{
	HigherBetter: {},
	LowerBetter:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:     {},
	CSVOut:      {},
	JSONOut:     {},
	MarkdownOut: {},
	HTMLOut:     {},
	XLSXOut:     {},
	ParquetOut:  {},
}

// BatchOutputModes lists the output modes that can render a ranked batch.
var BatchOutputModes = map[OutputMode]struct{}{
	TextOut:     {},
	CSVOut:      {},
	JSONOut:     {},
	MarkdownOut: {},
}

// IsCustom reports whether the metric type belongs to the custom scorer family.
func (t MetricType) IsCustom() bool {
	return strings.HasPrefix(string(t), "custom_")
}

// IsKnown reports whether the metric type has a dedicated scorer.
func (t MetricType) IsKnown() bool {
	_, ok := ValidMetricTypes[t]
	return ok
}
