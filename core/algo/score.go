package algo

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/huangsam/readiness/schema"
	"golang.org/x/text/cases"
)

// Rationales for the fallback paths. Every scorer documents the path it took.
const (
	absentRationale    = "N/A → neutral 3"
	invalidRationale   = "Invalid → neutral 3"
	unknownRationale   = "Unknown → 3"
	unhandledRationale = "Unhandled custom type → 3"
	noBreaksRationale  = "No thresholds → neutral 3"
)

// maxRoboCount bounds the integer conversion; every count at or above it is crowded.
const maxRoboCount = 3

// ScoreMetric converts one raw input into a 1-5 score using the metric's rule.
func ScoreMetric(m *schema.Metric, v schema.Value) (int, string) {
	switch m.Type {
	case schema.NumericMetric:
		return ScoreNumeric(v, m.Breaks, m.Scores, m.Direction)
	case schema.GenericSelect:
		return ScoreSelect(v, m.Options, m.Reverse)
	default:
		return ScoreCustom(m.Type, v)
	}
}

// ScoreNumeric buckets a number against ascending breaks. Breaks are scanned
// from the highest down and the first qualifying break wins; values that
// qualify for none clamp to the score of the lowest break.
//
// higher_better qualifies with v >= b, lower_better with v <= b.
func ScoreNumeric(v schema.Value, breaks []float64, scores []int, dir schema.Direction) (int, string) {
	if v.IsAbsent() {
		return schema.NeutralScore, absentRationale
	}
	n, ok := numericInput(v)
	if !ok {
		return schema.NeutralScore, invalidRationale
	}
	size := min(len(breaks), len(scores))
	if size == 0 {
		return schema.NeutralScore, noBreaksRationale
	}

	value := schema.FormatNumber(n)
	lower := dir == schema.LowerBetter
	for i := size - 1; i >= 0; i-- {
		b, s := breaks[i], scores[i]
		if lower && n <= b {
			return s, fmt.Sprintf("%s ≤ %s → %d", value, schema.FormatNumber(b), s)
		}
		if !lower && n >= b {
			return s, fmt.Sprintf("%s ≥ %s → %d", value, schema.FormatNumber(b), s)
		}
	}

	if lower {
		return scores[0], fmt.Sprintf("%s > %s → %d", value, schema.FormatNumber(breaks[0]), scores[0])
	}
	return scores[0], fmt.Sprintf("%s < %s → %d", value, schema.FormatNumber(breaks[0]), scores[0])
}

// numericInput accepts numbers and text that parses as a finite float.
func numericInput(v schema.Value) (float64, bool) {
	var n float64
	switch v.Kind {
	case schema.NumberValue:
		n = v.Num
	case schema.TextValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// ScoreSelect ranks a categorical value by its position in options, worst first.
// Unknown values fall back to the middle option rather than the flat neutral 3.
func ScoreSelect(v schema.Value, options []string, reverse bool) (int, string) {
	if len(options) == 0 {
		options = schema.DefaultSelectOptions
	}

	idx := -1
	if v.Kind == schema.TextValue {
		for i, opt := range options {
			if opt == v.Str {
				idx = i
				break
			}
		}
	}

	found := idx >= 0
	if !found {
		idx = 2
	}
	score := idx + 1
	if reverse {
		score = 5 - idx
	}
	score = clampScore(score)

	if !found {
		return score, fmt.Sprintf("%s not in options → middle %d", v, score)
	}
	return score, fmt.Sprintf("%s → %d", v, score)
}

// ScoreCustom dispatches to the closed set of hand-coded domain scorers.
func ScoreCustom(t schema.MetricType, v schema.Value) (int, string) {
	if v.IsAbsent() {
		return schema.NeutralScore, absentRationale
	}

	switch t {
	case schema.CustomIslamicRoboCount:
		return scoreRoboCount(v)
	case schema.CustomBinaryHighGood:
		if v.Kind != schema.BoolValue {
			return schema.NeutralScore, unknownRationale
		}
		if v.Flag {
			return 5, "Yes/Present → 5"
		}
		return 2, "No/Absent → 2"
	case schema.CustomShariahBoard:
		if v.Kind != schema.BoolValue {
			return schema.NeutralScore, unknownRationale
		}
		if v.Flag {
			return 5, "National Shariah board present → 5"
		}
		return 3, "Absent; private boards acceptable → 3"
	case schema.CustomTernaryAcceptance:
		return scoreAcceptance(v)
	default:
		return schema.NeutralScore, unhandledRationale
	}
}

// scoreRoboCount scores the number of competing Islamic robo-advisors; fewer is better.
func scoreRoboCount(v schema.Value) (int, string) {
	var n float64
	switch v.Kind {
	case schema.NumberValue:
		n = v.Num
	case schema.TextValue:
		i, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		if err != nil {
			return schema.NeutralScore, invalidRationale
		}
		n = float64(i)
	default:
		return schema.NeutralScore, invalidRationale
	}
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 || n != math.Trunc(n) {
		return schema.NeutralScore, invalidRationale
	}

	switch {
	case n >= maxRoboCount:
		return 2, "Crowded → 2"
	case n == 0:
		return 5, "No competitors → 5"
	case n == 1:
		return 4, "1 competitor (assume weak) → 4"
	default:
		return 3, "Moderate competition → 3"
	}
}

// scoreAcceptance matches low/neutral/high by caseless prefix.
func scoreAcceptance(v schema.Value) (int, string) {
	if v.Kind != schema.TextValue {
		return schema.NeutralScore, unknownRationale
	}
	// Casers carry state, so each call gets its own.
	folded := cases.Fold().String(strings.TrimSpace(v.Str))
	switch {
	case strings.HasPrefix(folded, "high"):
		return 5, "High acceptance → 5"
	case strings.HasPrefix(folded, "neutral"):
		return 3, "Neutral/mixed → 3"
	case strings.HasPrefix(folded, "low"):
		return 2, "Low acceptance → 2"
	default:
		return schema.NeutralScore, unknownRationale
	}
}

func clampScore(s int) int {
	return max(schema.MinScore, min(schema.MaxScore, s))
}
