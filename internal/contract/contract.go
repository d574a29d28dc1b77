// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"time"

	"github.com/huangsam/readiness/schema"
)

// ResultWriter defines the output operations the core needs.
// This allows the scoring flows to be tested without rendering anything.
type ResultWriter interface {
	// WriteAssessment renders a single jurisdiction's assessment.
	WriteAssessment(a *schema.Assessment, cfg *Config, duration time.Duration) error

	// WriteBatch renders several assessments ranked by overall score.
	WriteBatch(result *schema.BatchResult, cfg *Config, duration time.Duration) error

	// WriteCheck renders the outcome of a readiness gate.
	WriteCheck(result *schema.CheckResult, cfg *Config, duration time.Duration) error

	// WriteRubric renders the loaded rubric with its load-time warnings.
	WriteRubric(r *schema.Rubric, warnings []string, cfg *Config) error
}
