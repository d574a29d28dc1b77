package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `
jurisdiction: Singapore
values:
  Regulatory:
    licensing_clarity: 60
    regulatory_sandbox: true
    shariah_board: ~
  Market Demand:
    investor_demand: Strong
    islamic_finance_assets_bn: 12.5
    quoted_number: "42"
`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(sampleInput), "sg.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Singapore", doc.Jurisdiction)
	assert.Equal(t, "sg.yaml", doc.Source)
	assert.Equal(t, schema.Number(60), doc.Values.Get("Regulatory", "licensing_clarity"))
	assert.Equal(t, schema.Bool(true), doc.Values.Get("Regulatory", "regulatory_sandbox"))
	assert.True(t, doc.Values.Get("Regulatory", "shariah_board").IsAbsent())
	assert.Equal(t, schema.Text("Strong"), doc.Values.Get("Market Demand", "investor_demand"))
	assert.Equal(t, schema.Number(12.5), doc.Values.Get("Market Demand", "islamic_finance_assets_bn"))
	assert.Equal(t, schema.Text("42"), doc.Values.Get("Market Demand", "quoted_number"), "quoted scalars stay text")
	assert.True(t, doc.Values.Get("Market Demand", "missing").IsAbsent())
}

func TestParse_JSON(t *testing.T) {
	doc, err := Parse([]byte(`{"jurisdiction": "Malaysia", "values": {"Competition": {"islamic_robo_count": 2, "board": false}}}`), "my.json")
	require.NoError(t, err)
	assert.Equal(t, "Malaysia", doc.Jurisdiction)
	assert.Equal(t, schema.Number(2), doc.Values.Get("Competition", "islamic_robo_count"))
	assert.Equal(t, schema.Bool(false), doc.Values.Get("Competition", "board"))
}

func TestParse_EdgeCases(t *testing.T) {
	doc, err := Parse(nil, "empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, doc.Values)

	doc, err = Parse([]byte("jurisdiction: Oman\n"), "oman.yaml")
	require.NoError(t, err)
	assert.Equal(t, "Oman", doc.Jurisdiction)
	assert.Empty(t, doc.Values)

	_, err = Parse([]byte("values: [1, 2]\n"), "bad.yaml")
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = Parse([]byte("values:\n  Regulatory: 5\n"), "bad.yaml")
	assert.ErrorIs(t, err, ErrNotMapping)

	_, err = Parse([]byte("values:\n  Regulatory:\n    m: [1, 2]\n"), "bad.yaml")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = Parse([]byte("values: {unclosed"), "bad.yaml")
	assert.Error(t, err)
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		in   string
		want schema.Value
	}{
		{"60", schema.Number(60)},
		{" 0.5 ", schema.Number(0.5)},
		{"-3", schema.Number(-3)},
		{"true", schema.Bool(true)},
		{"Yes", schema.Bool(true)},
		{"FALSE", schema.Bool(false)},
		{"no", schema.Bool(false)},
		{"", schema.Absent()},
		{"null", schema.Absent()},
		{"N/A", schema.Absent()},
		{"Strong", schema.Text("Strong")},
		{"High acceptance", schema.Text("High acceptance")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseValue(tt.in))
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	base := schema.Values{}
	base.Set("Regulatory", "licensing_clarity", schema.Number(10))

	out, err := ApplyOverrides(base, []string{
		"Regulatory.licensing_clarity=60",
		"Market Demand.investor_demand=Strong",
		"Gov.v2.score=a=b",
	})
	require.NoError(t, err)

	assert.Equal(t, schema.Number(60), out.Get("Regulatory", "licensing_clarity"))
	assert.Equal(t, schema.Text("Strong"), out.Get("Market Demand", "investor_demand"))
	assert.Equal(t, schema.Text("a=b"), out.Get("Gov.v2", "score"), "splits on first = and last .")
	assert.Equal(t, schema.Number(10), base.Get("Regulatory", "licensing_clarity"), "input is not mutated")

	for _, bad := range []string{"no-equals", "nodot=1", ".metric=1", "Category.=1"} {
		_, err := ApplyOverrides(base, []string{bad})
		assert.ErrorIs(t, err, ErrInvalidOverride, bad)
	}
}

func TestResolveJurisdiction(t *testing.T) {
	assert.Equal(t, "Flag", ResolveJurisdiction(" Flag ", &Document{Jurisdiction: "Doc"}))
	assert.Equal(t, "Doc", ResolveJurisdiction("", &Document{Jurisdiction: "Doc", Source: "x.yaml"}))
	assert.Equal(t, "saudi_arabia", ResolveJurisdiction("", &Document{Source: "inputs/saudi_arabia.yaml"}))
	assert.Equal(t, UnnamedJurisdiction, ResolveJurisdiction("", &Document{Source: "-"}))
	assert.Equal(t, UnnamedJurisdiction, ResolveJurisdiction("", nil))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Singapore", doc.Jurisdiction)
	assert.Equal(t, path, doc.Source)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
