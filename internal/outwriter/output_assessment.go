package outwriter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/internal/parquet"
	"github.com/huangsam/readiness/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/xuri/excelize/v2"
)

// Sheet names used by the XLSX export.
const (
	summarySheet    = "Summary"
	metricsSheet    = "Metrics"
	categoriesSheet = "Categories"
)

// PrintAssessment outputs one assessment, dispatching based on the output format configured.
func PrintAssessment(a *schema.Assessment, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	contract.LogWarnings(a.Warnings, cfg.UseEmojis)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, a)
		}, "Wrote JSON")
	case schema.CSVOut:
		if err := writeAssessmentCSV(a, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.MarkdownOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, renderAssessmentMarkdown(a, fmtFloat))
			return err
		}, "Wrote Markdown")
	case schema.HTMLOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			page := renderHTML(renderAssessmentMarkdown(a, fmtFloat), "Launch readiness: "+a.Jurisdiction)
			_, err := w.Write(page)
			return err
		}, "Wrote HTML")
	case schema.XLSXOut:
		if err := writeAssessmentXLSX(a, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing XLSX output: %w", err)
		}
	case schema.ParquetOut:
		if err := writeAssessmentParquet(a, cfg); err != nil {
			return fmt.Errorf("error writing Parquet output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeAssessmentTable(w, a, cfg, fmtFloat, duration)
		}, "Wrote table")
	}
	return nil
}

// writeAssessmentTable writes the human-readable metric and category tables.
func writeAssessmentTable(w io.Writer, a *schema.Assessment, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	if _, err := fmt.Fprintf(w, "Launch readiness: %s\n", a.Jurisdiction); err != nil {
		return err
	}

	// 1. Metric table
	table := tablewriter.NewWriter(w)
	headers := []string{"Category", "Metric", "Input", "Score"}
	if cfg.Detail {
		headers = append(headers, "Sub-weight", "Weighted")
	}
	headers = append(headers, "Rationale")
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	textWidth := GetMaxTableTextWidth(cfg)
	var data [][]string
	for _, m := range a.Metrics() {
		row := []string{m.Category, m.Label, m.Input.String(), fmt.Sprintf("%d", m.Score)}
		if cfg.Detail {
			row = append(row, schema.FormatNumber(m.Weight), fmtFloat(m.Weighted()))
		}
		row = append(row, contract.Truncate(m.Rationale, textWidth))
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 2. Category table
	table = tablewriter.NewWriter(w)
	table.Header([]string{"Category", "Weight", "Score", "Contribution"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})
	data = nil
	for _, c := range a.Categories {
		data = append(data, []string{c.Name, schema.FormatNumber(c.Weight), fmtFloat(c.Score), fmtFloat(c.Contribution)})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// 3. Verdict and summary
	if _, err := fmt.Fprintf(w, "Overall: %s/5 (%.1f%%) → %s\n",
		fmtFloat(a.Overall.Score), a.Overall.Percent, formatLabel(cfg, a.Overall.Label, a.Overall.Severity)); err != nil {
		return err
	}
	if cfg.Detail {
		s := a.Spread
		if _, err := fmt.Fprintf(w, "Category spread: mean=%s, median=%s, stddev=%s, min=%s, max=%s\n",
			fmtFloat(s.Mean), fmtFloat(s.Median), fmtFloat(s.StdDev), fmtFloat(s.Min), fmtFloat(s.Max)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "\n%s\n\n", a.Overall.Narrative); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Scored %d metrics across %d categories in %v\n", len(a.Metrics()), len(a.Categories), duration)
	return err
}

// writeAssessmentCSV writes metric records, then category records. With an output
// file the categories go to a sibling file; on stdout they follow a blank line.
func writeAssessmentCSV(a *schema.Assessment, cfg *contract.Config) error {
	if cfg.OutputFile == "" {
		return writeWithFile("", func(w io.Writer) error {
			if err := writeRecordsCSV(w, schema.MetricColumns, a.MetricRecords()); err != nil {
				return err
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
			return writeRecordsCSV(w, schema.CategoryColumns, a.CategoryRecords())
		}, "Wrote CSV")
	}

	if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeRecordsCSV(w, schema.MetricColumns, a.MetricRecords())
	}, "Wrote CSV"); err != nil {
		return err
	}
	return writeWithFile(siblingPath(cfg.OutputFile, "categories"), func(w io.Writer) error {
		return writeRecordsCSV(w, schema.CategoryColumns, a.CategoryRecords())
	}, "Wrote CSV")
}

// renderAssessmentMarkdown renders the narrative followed by category and metric tables.
func renderAssessmentMarkdown(a *schema.Assessment, fmtFloat func(float64) string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# Launch readiness: %s\n\n", a.Jurisdiction)
	sb.WriteString(a.Overall.Narrative)
	sb.WriteString("\n\n## Categories\n\n")
	writeMarkdownRecords(&sb, schema.CategoryColumns, a.CategoryRecords())
	sb.WriteString("\n## Metrics\n\n")
	writeMarkdownRecords(&sb, schema.MetricColumns, a.MetricRecords())
	fmt.Fprintf(&sb, "\nOverall score: %s/5 (%.1f%%), total category weight %.2f\n",
		fmtFloat(a.Overall.Score), a.Overall.Percent, a.TotalCategoryWeight)
	if len(a.Warnings) > 0 {
		sb.WriteString("\n## Warnings\n\n")
		for _, w := range a.Warnings {
			fmt.Fprintf(&sb, "- %s\n", w)
		}
	}
	return sb.String()
}

// writeMarkdownRecords writes a pipe table for the given records.
func writeMarkdownRecords(sb *strings.Builder, columns []string, records []schema.Record) {
	writeMarkdownRow(sb, columns)
	sep := make([]string, len(columns))
	for i := range sep {
		sep[i] = "---"
	}
	writeMarkdownRow(sb, sep)
	for _, rec := range records {
		cells := make([]string, len(rec))
		for i, f := range rec {
			cells[i] = formatCell(f.Value)
		}
		writeMarkdownRow(sb, cells)
	}
}

func writeMarkdownRow(sb *strings.Builder, cells []string) {
	sb.WriteString("|")
	for _, c := range cells {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(c, "|", `\|`))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

// renderHTML converts markdown into a standalone HTML page.
func renderHTML(md, title string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.CompletePage,
		Title: title,
	})
	return markdown.Render(doc, renderer)
}

// writeAssessmentXLSX writes Summary, Metrics and Categories sheets to a workbook.
func writeAssessmentXLSX(a *schema.Assessment, cfg *contract.Config, fmtFloat func(float64) string) error {
	path := defaultOutputPath(cfg.OutputFile, a.Jurisdiction, "_readiness.xlsx")

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	summary := [][]any{
		{"Jurisdiction", a.Jurisdiction},
		{"Overall score", fmtFloat(a.Overall.Score)},
		{"Percent", schema.Round(a.Overall.Percent, 1)},
		{"Label", string(a.Overall.Label)},
		{"Total category weight", schema.Round(a.TotalCategoryWeight, 3)},
		{"Created at", a.CreatedAt.Format(contract.DateTimeFormat)},
		{"Assessment ID", a.ID},
		{"Narrative", a.Overall.Narrative},
	}
	if err := writeSheet(f, summarySheet, nil, summary); err != nil {
		return err
	}
	if err := writeSheet(f, metricsSheet, schema.MetricColumns, recordRows(a.MetricRecords())); err != nil {
		return err
	}
	if err := writeSheet(f, categoriesSheet, schema.CategoryColumns, recordRows(a.CategoryRecords())); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote XLSX to %s\n", path)
	return nil
}

// writeSheet writes an optional header row and data rows, creating the sheet if needed.
func writeSheet(f *excelize.File, sheet string, header []string, rows [][]any) error {
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
	}

	rowIdx := 1
	if header != nil {
		for i, h := range header {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, h); err != nil {
				return err
			}
		}
		rowIdx++
	}
	for _, row := range rows {
		for c, v := range row {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		rowIdx++
	}
	return nil
}

// recordRows flattens records into cell values.
func recordRows(records []schema.Record) [][]any {
	rows := make([][]any, len(records))
	for i, rec := range records {
		row := make([]any, len(rec))
		for j, f := range rec {
			row[j] = f.Value
		}
		rows[i] = row
	}
	return rows
}

// writeAssessmentParquet writes metric and category Parquet files.
func writeAssessmentParquet(a *schema.Assessment, cfg *contract.Config) error {
	metricsPath := defaultOutputPath(cfg.OutputFile, a.Jurisdiction, "_metrics.parquet")
	categoriesPath := schema.SafeFileName(a.Jurisdiction) + "_categories.parquet"
	if cfg.OutputFile != "" {
		categoriesPath = siblingPath(cfg.OutputFile, "categories")
	}

	if err := parquet.WriteMetricRowsParquet(parquet.ConvertMetricRows(a), metricsPath); err != nil {
		return err
	}
	if err := parquet.WriteCategoryRowsParquet(parquet.ConvertCategoryRows(a), categoriesPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "💾 Wrote Parquet to %s and %s\n", metricsPath, categoriesPath)
	return nil
}
