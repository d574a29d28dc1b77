// Package core has core logic for scoring, aggregation and ranking.
package core

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/readiness/core/algo"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/internal/inputs"
	"github.com/huangsam/readiness/schema"
	"golang.org/x/sync/errgroup"
)

// ErrNoInputs is returned when a batch run is given no input files.
var ErrNoInputs = errors.New("batch needs at least one input file")

// ExecuteScore scores a single jurisdiction and writes the assessment.
// Without an input file every metric scores through the N/A fallback,
// which still yields a complete, neutral assessment.
func ExecuteScore(ctx context.Context, cfg *contract.Config, r *schema.Rubric, w contract.ResultWriter) error {
	start := time.Now()
	a, err := assessInput(ctx, cfg, r, cfg.InputPath(), cfg.Jurisdiction)
	if err != nil {
		return err
	}
	return w.WriteAssessment(a, cfg, time.Since(start))
}

// ExecuteBatch scores several jurisdictions concurrently against the same
// rubric and writes them ranked by overall score. Inputs that fail to load
// are reported in the result instead of aborting the batch.
func ExecuteBatch(ctx context.Context, cfg *contract.Config, r *schema.Rubric, w contract.ResultWriter) error {
	start := time.Now()
	result, err := runBatch(ctx, cfg, r)
	if err != nil {
		return err
	}
	return w.WriteBatch(result, cfg, time.Since(start))
}

// ExecuteRubric writes the loaded rubric along with its load-time warnings.
func ExecuteRubric(cfg *contract.Config, r *schema.Rubric, warnings []string, w contract.ResultWriter) error {
	return w.WriteRubric(r, warnings, cfg)
}

// runBatch fans input files out to a bounded worker pool.
func runBatch(ctx context.Context, cfg *contract.Config, r *schema.Rubric) (*schema.BatchResult, error) {
	if len(cfg.InputPaths) == 0 {
		return nil, ErrNoInputs
	}

	var (
		mu       sync.Mutex
		failures []schema.BatchFailure
	)
	assessments := make([]*schema.Assessment, len(cfg.InputPaths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))
	for i, path := range cfg.InputPaths {
		g.Go(func() error {
			// The jurisdiction flag names a single input, so batches derive names per file.
			a, err := assessInput(gCtx, cfg, r, path, "")
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				mu.Lock()
				failures = append(failures, schema.BatchFailure{Source: path, Error: err.Error()})
				mu.Unlock()
				return nil
			}
			assessments[i] = a
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	result := &schema.BatchResult{ID: uuid.NewString()}
	for _, a := range assessments {
		if a != nil {
			result.Assessments = append(result.Assessments, *a)
		}
	}
	result.Assessments = algo.RankAssessments(result.Assessments)
	result.Failures = sortFailures(failures, cfg.InputPaths)
	return result, nil
}

// assessInput loads one input document, applies overrides and scores it.
func assessInput(ctx context.Context, cfg *contract.Config, r *schema.Rubric, path, jurisdiction string) (*schema.Assessment, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := &inputs.Document{Values: schema.Values{}}
	if path != "" {
		loaded, err := inputs.LoadFile(path)
		if err != nil {
			return nil, err
		}
		doc = loaded
	}

	values, err := inputs.ApplyOverrides(doc.Values, cfg.Overrides)
	if err != nil {
		return nil, err
	}
	return Assess(r, inputs.ResolveJurisdiction(jurisdiction, doc), values), nil
}

// sortFailures orders failures by their position on the command line.
func sortFailures(failures []schema.BatchFailure, paths []string) []schema.BatchFailure {
	order := make(map[string]int, len(paths))
	for i := len(paths) - 1; i >= 0; i-- {
		order[paths[i]] = i
	}
	slices.SortStableFunc(failures, func(a, b schema.BatchFailure) int {
		return cmp.Compare(order[a.Source], order[b.Source])
	})
	return failures
}
