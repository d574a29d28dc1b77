package algo

import (
	"testing"

	"github.com/huangsam/readiness/schema"
)

// FuzzScoreNumeric checks that numeric scoring never panics and only returns configured scores.
func FuzzScoreNumeric(f *testing.F) {
	f.Add(60.0, "", false)
	f.Add(-1e308, "", true)
	f.Add(0.0, "50", false)
	f.Add(0.0, "NaN", true)
	f.Add(0.0, "Inf", false)

	f.Fuzz(func(t *testing.T, n float64, text string, lower bool) {
		v := schema.Number(n)
		if text != "" {
			v = schema.Text(text)
		}
		dir := schema.HigherBetter
		if lower {
			dir = schema.LowerBetter
		}

		score, why := ScoreNumeric(v, testBreaks, testScores, dir)
		if why == "" {
			t.Fatalf("empty rationale for %v", v)
		}
		if score != schema.NeutralScore && score != 1 && score != 5 {
			t.Fatalf("score %d not in configured scores for %v", score, v)
		}
	})
}

// FuzzScoreCustom checks that every custom scorer stays within 1-5 for arbitrary text.
func FuzzScoreCustom(f *testing.F) {
	f.Add("high", 2.0)
	f.Add("abc", 1.5)
	f.Add("-7", -7.0)
	f.Add("99999999999999999999", 1e20)

	types := []schema.MetricType{
		schema.CustomIslamicRoboCount,
		schema.CustomBinaryHighGood,
		schema.CustomShariahBoard,
		schema.CustomTernaryAcceptance,
		schema.MetricType("custom_other"),
	}

	f.Fuzz(func(t *testing.T, text string, n float64) {
		for _, typ := range types {
			for _, v := range []schema.Value{schema.Text(text), schema.Number(n)} {
				score, why := ScoreCustom(typ, v)
				if score < schema.MinScore || score > schema.MaxScore || why == "" {
					t.Fatalf("%s(%v) = (%d, %q)", typ, v, score, why)
				}
			}
		}
		score, _ := ScoreSelect(schema.Text(text), nil, n > 0)
		if score < schema.MinScore || score > schema.MaxScore {
			t.Fatalf("select(%q) = %d", text, score)
		}
	})
}
