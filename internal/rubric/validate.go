package rubric

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/huangsam/readiness/schema"
)

// WeightTolerance is how far the category weight total may drift from 1.00
// before a warning is reported.
const WeightTolerance = 0.001

// MaxOptions bounds select options so index-based scores stay within 1-5.
const MaxOptions = 5

// Invariant violations returned by Validate.
var (
	ErrBreaksScoresMismatch = errors.New("breaks and scores must have the same length")
	ErrNoBreaks             = errors.New("numeric metric needs at least one break")
	ErrBreaksNotAscending   = errors.New("breaks must be strictly ascending")
	ErrScoreOutOfRange      = errors.New("scores must be between 1 and 5")
	ErrInvalidDirection     = errors.New("direction must be higher_better or lower_better")
	ErrTooManyOptions       = errors.New("select metrics support at most 5 options")
	ErrDuplicateOption      = errors.New("duplicate select option")
	ErrNegativeWeight       = errors.New("weights must not be negative")
	ErrInvalidWeight        = errors.New("weights must be finite numbers")
	ErrUnknownType          = errors.New("unknown metric type")
)

// Validate checks the rubric's scoring invariants. Structural problems are
// returned as errors; weight drift and unhandled custom types only produce warnings.
func Validate(r *schema.Rubric) ([]string, error) {
	if r == nil || len(r.Categories) == 0 {
		return nil, ErrNoCategories
	}

	var warnings []string
	for i := range r.Categories {
		c := &r.Categories[i]
		if err := checkWeight(c.Weight); err != nil {
			return nil, fmt.Errorf("category %q: %w", c.Name, err)
		}
		if len(c.Metrics) == 0 {
			warnings = append(warnings, fmt.Sprintf("Category %q has no metrics; its score will be 0", c.Name))
			continue
		}
		for j := range c.Metrics {
			m := &c.Metrics[j]
			w, err := validateMetric(m)
			if err != nil {
				return nil, fmt.Errorf("metric %s.%s: %w", c.Name, m.Key, err)
			}
			for _, msg := range w {
				warnings = append(warnings, fmt.Sprintf("Metric %s.%s: %s", c.Name, m.Key, msg))
			}
		}
		if c.MetricWeight() == 0 {
			warnings = append(warnings, fmt.Sprintf("Category %q metric weights sum to 0; its score will be 0", c.Name))
		}
	}

	if w := WeightWarning(r.TotalWeight()); w != "" {
		warnings = append(warnings, w)
	}
	return warnings, nil
}

// WeightWarning returns the operator message for a category weight total that
// is not 1.00, or empty when it is within tolerance.
func WeightWarning(total float64) string {
	if math.Abs(total-1) <= WeightTolerance {
		return ""
	}
	return fmt.Sprintf("Total category weights = %.2f (should be 1.00)", total)
}

func validateMetric(m *schema.Metric) ([]string, error) {
	if err := checkWeight(m.Weight); err != nil {
		return nil, err
	}

	switch m.Type {
	case schema.NumericMetric:
		return validateNumeric(m)
	case schema.GenericSelect:
		return nil, validateSelect(m)
	}
	if m.Type.IsKnown() {
		return nil, nil
	}
	if m.Type.IsCustom() {
		return []string{fmt.Sprintf("unhandled custom type %q will score a neutral 3", m.Type)}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownType, m.Type)
}

func validateNumeric(m *schema.Metric) ([]string, error) {
	if len(m.Breaks) == 0 {
		return nil, ErrNoBreaks
	}
	if len(m.Breaks) != len(m.Scores) {
		return nil, fmt.Errorf("%w (%d breaks, %d scores)", ErrBreaksScoresMismatch, len(m.Breaks), len(m.Scores))
	}
	for i, b := range m.Breaks {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return nil, fmt.Errorf("%w: break %v", ErrBreaksNotAscending, b)
		}
		if i > 0 && b <= m.Breaks[i-1] {
			return nil, fmt.Errorf("%w: %v follows %v", ErrBreaksNotAscending, b, m.Breaks[i-1])
		}
	}
	for _, s := range m.Scores {
		if s < schema.MinScore || s > schema.MaxScore {
			return nil, fmt.Errorf("%w: got %d", ErrScoreOutOfRange, s)
		}
	}
	if _, ok := schema.ValidDirections[m.Direction]; !ok {
		return nil, fmt.Errorf("%w: got %q", ErrInvalidDirection, m.Direction)
	}

	var warnings []string
	if !slices.IsSorted(m.Scores) {
		warnings = append(warnings, "scores are not ascending, so the score may not move with the value")
	}
	return warnings, nil
}

func validateSelect(m *schema.Metric) error {
	if len(m.Options) > MaxOptions {
		return fmt.Errorf("%w: got %d", ErrTooManyOptions, len(m.Options))
	}
	seen := make(map[string]struct{}, len(m.Options))
	for _, opt := range m.Options {
		if _, dup := seen[opt]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateOption, opt)
		}
		seen[opt] = struct{}{}
	}
	return nil
}

func checkWeight(w float64) error {
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return ErrInvalidWeight
	}
	if w < 0 {
		return ErrNegativeWeight
	}
	return nil
}
