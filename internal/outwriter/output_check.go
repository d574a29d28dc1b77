package outwriter

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
)

// PrintCheckResult outputs a readiness gate result. JSON is written as-is;
// every other format gets the concise CI/CD text summary.
func PrintCheckResult(result *schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeCheckText(w, result, cfg, duration)
	}, "Wrote text")
}

// writeCheckText prints the header, the verdict and the categories holding the score down.
func writeCheckText(w io.Writer, result *schema.CheckResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	if err := writeCheckHeader(w, result, fmtFloat, duration); err != nil {
		return err
	}

	if result.Passed {
		_, err := fmt.Fprintf(w, "%s %s passed the readiness gate: %s ≥ %s\n",
			statusMark(cfg, true), result.Jurisdiction, fmtFloat(result.Score), fmtFloat(result.MinScore))
		return err
	}

	if _, err := fmt.Fprintf(w, "%s %s failed the readiness gate: %s < %s\n",
		statusMark(cfg, false), result.Jurisdiction, fmtFloat(result.Score), fmtFloat(result.MinScore)); err != nil {
		return err
	}
	if len(result.WeakCategories) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nCategories below %s (%d):\n", fmtFloat(result.MinScore), len(result.WeakCategories)); err != nil {
		return err
	}
	for _, c := range result.WeakCategories {
		if _, err := fmt.Fprintf(w, "  - %s (score: %s, contribution: %s)\n", c.Name, fmtFloat(c.Score), fmtFloat(c.Contribution)); err != nil {
			return err
		}
	}
	return nil
}

// writeCheckHeader prints the common header information for check results.
func writeCheckHeader(w io.Writer, result *schema.CheckResult, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintln(w, "Readiness Check Results:"); err != nil {
		return err
	}

	labels := []string{"Jurisdiction:", "Score:", "Minimum:", "Label:"}
	values := []any{
		result.Jurisdiction,
		fmtFloat(result.Score) + "/5",
		fmtFloat(result.MinScore),
		result.Label,
	}

	// Find the longest label for consistent padding
	maxLabelLen := 0
	for _, label := range labels {
		maxLabelLen = max(maxLabelLen, len(label))
	}
	for i, label := range labels {
		if _, err := fmt.Fprintf(w, "  %-*s %v\n", maxLabelLen+1, label, values[i]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nChecked in %v\n\n", duration)
	return err
}
