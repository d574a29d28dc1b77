package outwriter

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	err := writeWithFile(path, func(w io.Writer) error {
		_, err := w.Write([]byte("hello"))
		return err
	}, "Wrote text")
	require.NoError(t, err)
	assert.Equal(t, "hello", readFile(t, path))

	boom := errors.New("boom")
	err = writeWithFile(filepath.Join(t.TempDir(), "x.txt"), func(io.Writer) error { return boom }, "Wrote text")
	assert.ErrorIs(t, err, boom)

	err = writeWithFile(filepath.Join(t.TempDir(), "missing", "x.txt"), func(io.Writer) error { return nil }, "Wrote text")
	assert.Error(t, err)
}

func TestWriteCSVWithHeader(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"a", "b"}, func(w *csv.Writer) error {
		return w.Write([]string{"1", "2"})
	})
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestWriteRecordsCSV(t *testing.T) {
	var buf bytes.Buffer
	records := []schema.Record{{{Key: "x", Value: 1.5}, {Key: "y", Value: true}, {Key: "z", Value: nil}}}
	require.NoError(t, writeRecordsCSV(&buf, []string{"x", "y", "z"}, records))
	assert.Equal(t, "x,y,z\n1.5,true,\n", buf.String())
}

func TestCreateFormatters(t *testing.T) {
	fmtFloat, intFmt := createFormatters(3)
	assert.Equal(t, "2.167", fmtFloat(2.16666))
	assert.Equal(t, "%d", intFmt)
}

func TestFormatCell(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{"text", "text"},
		{60.0, "60"},
		{0.125, "0.125"},
		{4, "4"},
		{false, "false"},
		{schema.GoodLabel, string(schema.GoodLabel)},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCell(tt.in))
	}
}

func TestOutputPaths(t *testing.T) {
	assert.Equal(t, "given.xlsx", defaultOutputPath("given.xlsx", "Saudi Arabia", "_readiness.xlsx"))
	assert.Equal(t, "Saudi_Arabia_readiness.xlsx", defaultOutputPath("", "Saudi Arabia", "_readiness.xlsx"))
	assert.Equal(t, "GCC_UAE_metrics.parquet", defaultOutputPath("", "GCC/UAE", "_metrics.parquet"))

	assert.Equal(t, "dir/out_categories.csv", siblingPath("dir/out.csv", "categories"))
	assert.Equal(t, "out_categories", siblingPath("out", "categories"))
}

func TestGetMaxTableTextWidth(t *testing.T) {
	assert.Equal(t, 20, GetMaxTableTextWidth(&contract.Config{Width: 40}))
	assert.Equal(t, 40, GetMaxTableTextWidth(&contract.Config{Width: 120}))
	assert.Equal(t, 20, GetMaxTableTextWidth(&contract.Config{Width: 120, Detail: true}))
	assert.Equal(t, 80, GetMaxTableTextWidth(&contract.Config{Width: 500}))
}

func TestStatusMarkAndLabel(t *testing.T) {
	assert.Equal(t, "PASS", statusMark(&contract.Config{}, true))
	assert.Equal(t, "FAIL", statusMark(&contract.Config{}, false))
	assert.Equal(t, "✅", statusMark(&contract.Config{UseEmojis: true}, true))
	assert.Equal(t, "❌", statusMark(&contract.Config{UseEmojis: true}, false))

	assert.Equal(t, string(schema.HighRiskLabel), formatLabel(&contract.Config{}, schema.HighRiskLabel, schema.RedSeverity))
	assert.Contains(t, formatLabel(&contract.Config{UseColors: true}, schema.HighRiskLabel, schema.RedSeverity), string(schema.HighRiskLabel))
}
