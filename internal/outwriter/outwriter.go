// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

var _ contract.ResultWriter = &OutWriter{} // Compile-time check

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteAssessment prints a single assessment using the configured output format.
func (ow *OutWriter) WriteAssessment(a *schema.Assessment, cfg *contract.Config, duration time.Duration) error {
	return PrintAssessment(a, cfg, duration)
}

// WriteBatch prints ranked assessments using the configured output format.
func (ow *OutWriter) WriteBatch(result *schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	return PrintBatchResults(result, cfg, duration)
}

// WriteCheck prints a readiness gate result using the configured output format.
func (ow *OutWriter) WriteCheck(result *schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	return PrintCheckResult(result, cfg, duration)
}

// WriteRubric prints the rubric definition using the configured output format.
func (ow *OutWriter) WriteRubric(r *schema.Rubric, warnings []string, cfg *contract.Config) error {
	return PrintRubric(r, warnings, cfg)
}

// GetMaxTableTextWidth calculates the maximum width for free-text columns
// (rationales and reasons) in table output based on terminal width.
func GetMaxTableTextWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Category + Metric + Input + Score with borders/padding
	baseWidth := 70

	// Sub-weight and Weighted columns
	if cfg.Detail {
		baseWidth += 25
	}

	// Reserve space for table borders, separators, and padding
	baseWidth += 10

	available := termWidth - baseWidth
	if available < 20 {
		return 20
	}
	if available > 80 {
		return 80
	}
	return available
}
