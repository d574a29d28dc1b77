package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
)

// ErrCheckFailed is returned when the overall score is below the gate threshold.
var ErrCheckFailed = errors.New("readiness check failed")

// ExecuteCheck runs the check command for CI/CD gating.
// It scores one jurisdiction, writes the gate result and returns
// ErrCheckFailed when the overall score falls below cfg.MinScore.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, r *schema.Rubric, w contract.ResultWriter) error {
	start := time.Now()

	a, err := assessInput(ctx, cfg, r, cfg.InputPath(), cfg.Jurisdiction)
	if err != nil {
		return err
	}
	contract.LogWarnings(a.Warnings, cfg.UseEmojis)

	result := NewCheckResultBuilder(a, cfg.MinScore).
		FindWeakCategories().
		BuildResult()

	if err := w.WriteCheck(result, cfg, time.Since(start)); err != nil {
		return err
	}
	if !result.Passed {
		return fmt.Errorf("%w: %s scored %.2f, below %.2f", ErrCheckFailed, result.Jurisdiction, result.Score, result.MinScore)
	}
	return nil
}
