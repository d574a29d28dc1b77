// Package parquet provides data structures and functions for exporting readiness
// assessments to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/readiness/schema"
	"github.com/parquet-go/parquet-go"
)

// MetricRow is one scored metric of an assessment.
type MetricRow struct {
	// AssessmentID identifies the scoring run the row belongs to
	AssessmentID string `parquet:"assessment_id,snappy"`

	// Jurisdiction is the market being assessed
	Jurisdiction string `parquet:"jurisdiction,snappy"`

	// CreatedAt is when the assessment was built (stored as TIMESTAMP with nanosecond precision)
	CreatedAt time.Time `parquet:"created_at,snappy"`

	Category  string `parquet:"category,snappy"`
	MetricKey string `parquet:"metric_key,snappy"`
	Metric    string `parquet:"metric,snappy"`

	// Input is the raw value rendered as text (nullable when no value was supplied)
	Input *string `parquet:"input,optional,snappy"`

	// InputKind is one of absent, number, text or boolean
	InputKind string `parquet:"input_kind,snappy"`

	Score     int32   `parquet:"score,snappy"`
	SubWeight float64 `parquet:"sub_weight,snappy"`
	Weighted  float64 `parquet:"weighted,snappy"`
	Rationale string  `parquet:"rationale,snappy"`
}

// CategoryRow is one aggregated category of an assessment.
type CategoryRow struct {
	AssessmentID   string  `parquet:"assessment_id,snappy"`
	Jurisdiction   string  `parquet:"jurisdiction,snappy"`
	Category       string  `parquet:"category,snappy"`
	CategoryWeight float64 `parquet:"category_weight,snappy"`

	// CategoryScore is the weight-normalised average of the metric scores
	CategoryScore float64 `parquet:"category_score,snappy"`

	// Contribution is CategoryScore multiplied by CategoryWeight
	Contribution float64 `parquet:"contribution,snappy"`
}

// WriteMetricRowsParquet writes a slice of MetricRow structs to a Parquet file.
func WriteMetricRowsParquet(data []MetricRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// WriteCategoryRowsParquet writes a slice of CategoryRow structs to a Parquet file.
func WriteCategoryRowsParquet(data []CategoryRow, outputPath string) error {
	return writeRows(data, outputPath)
}

// writeRows writes rows using the schema inferred from T's struct tags.
func writeRows[T any](data []T, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[T](file)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}

// ConvertMetricRows flattens an assessment into MetricRow records.
func ConvertMetricRows(a *schema.Assessment) []MetricRow {
	metrics := a.Metrics()
	result := make([]MetricRow, len(metrics))
	for i, m := range metrics {
		var input *string
		if !m.Input.IsAbsent() {
			s := m.Input.String()
			input = &s
		}
		result[i] = MetricRow{
			AssessmentID: a.ID,
			Jurisdiction: a.Jurisdiction,
			CreatedAt:    a.CreatedAt,
			Category:     m.Category,
			MetricKey:    m.Key,
			Metric:       m.Label,
			Input:        input,
			InputKind:    m.Input.Kind.String(),
			Score:        int32(m.Score),
			SubWeight:    m.Weight,
			Weighted:     m.Weighted(),
			Rationale:    m.Rationale,
		}
	}
	return result
}

// ConvertCategoryRows flattens an assessment into CategoryRow records.
func ConvertCategoryRows(a *schema.Assessment) []CategoryRow {
	result := make([]CategoryRow, len(a.Categories))
	for i, c := range a.Categories {
		result[i] = CategoryRow{
			AssessmentID:   a.ID,
			Jurisdiction:   a.Jurisdiction,
			Category:       c.Name,
			CategoryWeight: c.Weight,
			CategoryScore:  c.Score,
			Contribution:   c.Contribution,
		}
	}
	return result
}
