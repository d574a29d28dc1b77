package outwriter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
)

// writeWithFile handles the common pattern of opening a file, writing to it, and cleaning up.
// It accepts a writer function that takes an io.Writer and returns an error.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := contract.SelectOutputFile(outputFile)
	if err != nil {
		return err
	}
	// Only close if it's not stdout
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeCSVWithHeader handles the common pattern of creating a CSV writer,
// writing a header, and writing data rows.
func writeCSVWithHeader(w io.Writer, header []string, writeRows func(*csv.Writer) error) error {
	csvWriter := csv.NewWriter(w)
	defer csvWriter.Flush()

	if err := csvWriter.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := writeRows(csvWriter); err != nil {
		return err
	}

	return nil
}

// writeRecordsCSV writes export records under their column names.
func writeRecordsCSV(w io.Writer, columns []string, records []schema.Record) error {
	return writeCSVWithHeader(w, columns, func(cw *csv.Writer) error {
		for _, rec := range records {
			row := make([]string, len(rec))
			for i, f := range rec {
				row[i] = formatCell(f.Value)
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// createFormatters creates the common formatter closures used across multiple output types.
func createFormatters(precision int) (fmtFloat func(float64) string, intFmt string) {
	numFmt := "%.*f"
	intFmt = "%d"
	fmtFloat = func(v float64) string {
		return fmt.Sprintf(numFmt, precision, v)
	}
	return fmtFloat, intFmt
}

// formatCell renders a record value for text-based exports.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return schema.FormatNumber(val)
	case int:
		return strconv.Itoa(val)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprint(val)
	}
}

// defaultOutputPath returns outputFile when set, otherwise a name derived
// from the jurisdiction, e.g. "Saudi Arabia" becomes Saudi_Arabia_readiness.xlsx.
func defaultOutputPath(outputFile, jurisdiction, suffix string) string {
	if outputFile != "" {
		return outputFile
	}
	return schema.SafeFileName(jurisdiction) + suffix
}

// siblingPath inserts tag before the extension: out.csv becomes out_categories.csv.
func siblingPath(path, tag string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_" + tag + ext
}

// formatLabel returns the readiness label, colored for tables when enabled.
func formatLabel(cfg *contract.Config, label schema.Label, sev schema.Severity) string {
	if !cfg.UseColors {
		return string(label)
	}
	return contract.GetColorLabel(label, sev)
}

// statusMark returns an emoji or plain marker for pass/fail lines.
func statusMark(cfg *contract.Config, passed bool) string {
	switch {
	case cfg.UseEmojis && passed:
		return "✅"
	case cfg.UseEmojis:
		return "❌"
	case passed:
		return "PASS"
	default:
		return "FAIL"
	}
}
