package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintBatchResults outputs ranked assessments, dispatching based on the output format configured.
func PrintBatchResults(result *schema.BatchResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)
	contract.LogWarnings(batchWarnings(result), cfg.UseEmojis)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchCSV(w, result, fmtFloat)
		}, "Wrote CSV")
	case schema.MarkdownOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, renderBatchMarkdown(result, fmtFloat))
			return err
		}, "Wrote Markdown")
	case schema.TextOut, "":
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBatchTable(w, result, cfg, fmtFloat, duration)
		}, "Wrote table")
	default:
		return fmt.Errorf("output %q is not supported for batch runs", cfg.Output)
	}
}

// batchWarnings collects distinct warnings across all assessments, in first-seen order.
func batchWarnings(result *schema.BatchResult) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, a := range result.Assessments {
		for _, w := range a.Warnings {
			msg := w
			if !strings.HasPrefix(w, "Total category weights") {
				msg = a.Jurisdiction + ": " + w
			}
			if _, ok := seen[msg]; ok {
				continue
			}
			seen[msg] = struct{}{}
			out = append(out, msg)
		}
	}
	return out
}

// categoryNames returns the category order shared by every assessment in a batch.
func categoryNames(result *schema.BatchResult) []string {
	if len(result.Assessments) == 0 {
		return nil
	}
	names := make([]string, len(result.Assessments[0].Categories))
	for i, c := range result.Assessments[0].Categories {
		names[i] = c.Name
	}
	return names
}

// writeBatchTable writes the human-readable ranking table.
func writeBatchTable(w io.Writer, result *schema.BatchResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration) error {
	table := tablewriter.NewWriter(w)

	// 1. Define Headers
	headers := []string{"Rank", "Jurisdiction", "Score", "Percent", "Label"}
	categories := categoryNames(result)
	if cfg.Detail {
		headers = append(headers, categories...)
	}
	table.Header(headers)
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// 2. Populate Rows
	var data [][]string
	for _, r := range schema.EnrichAssessments(result.Assessments) {
		row := []string{
			strconv.Itoa(r.Rank),
			r.Jurisdiction,
			fmtFloat(r.Overall.Score),
			fmt.Sprintf("%.1f%%", r.Overall.Percent),
			formatLabel(cfg, r.Overall.Label, r.Overall.Severity),
		}
		if cfg.Detail {
			for _, c := range r.Categories {
				row = append(row, fmtFloat(c.Score))
			}
		}
		data = append(data, row)
	}

	// 3. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	for _, f := range result.Failures {
		if _, err := fmt.Fprintf(w, "%s %s: %s\n", statusMark(cfg, false), f.Source, f.Error); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Scored %d jurisdictions (%d failed) in %v with %d workers\n",
		len(result.Assessments), len(result.Failures), duration, cfg.Workers)
	return err
}

// writeBatchCSV writes one row per jurisdiction with a column per category score.
func writeBatchCSV(w io.Writer, result *schema.BatchResult, fmtFloat func(float64) string) error {
	categories := categoryNames(result)
	header := append([]string{"rank", "jurisdiction", "score", "percent", "label"}, categories...)

	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, r := range schema.EnrichAssessments(result.Assessments) {
			row := []string{
				strconv.Itoa(r.Rank),
				r.Jurisdiction,
				fmtFloat(r.Overall.Score),
				fmtFloat(r.Overall.Percent),
				string(r.Overall.Label),
			}
			for _, c := range r.Categories {
				row = append(row, fmtFloat(c.Score))
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("failed to write CSV record: %w", err)
			}
		}
		return nil
	})
}

// writeBatchJSON writes the ranked assessments and any failures.
func writeBatchJSON(w io.Writer, result *schema.BatchResult) error {
	type JSONBatchResult struct {
		ID          string                    `json:"id"`
		Assessments []schema.RankedAssessment `json:"assessments"`
		Failures    []schema.BatchFailure     `json:"failures,omitempty"`
	}
	return writeJSON(w, JSONBatchResult{
		ID:          result.ID,
		Assessments: schema.EnrichAssessments(result.Assessments),
		Failures:    result.Failures,
	})
}

// renderBatchMarkdown renders the ranking table followed by each narrative.
func renderBatchMarkdown(result *schema.BatchResult, fmtFloat func(float64) string) string {
	var sb strings.Builder
	sb.WriteString("# Launch readiness ranking\n\n")
	writeMarkdownRow(&sb, []string{"Rank", "Jurisdiction", "Score", "Label"})
	writeMarkdownRow(&sb, []string{"---", "---", "---", "---"})
	ranked := schema.EnrichAssessments(result.Assessments)
	for _, r := range ranked {
		writeMarkdownRow(&sb, []string{strconv.Itoa(r.Rank), r.Jurisdiction, fmtFloat(r.Overall.Score), string(r.Overall.Label)})
	}
	for _, r := range ranked {
		fmt.Fprintf(&sb, "\n## %d. %s\n\n%s\n", r.Rank, r.Jurisdiction, r.Overall.Narrative)
	}
	if len(result.Failures) > 0 {
		sb.WriteString("\n## Failed inputs\n\n")
		for _, f := range result.Failures {
			fmt.Fprintf(&sb, "- %s: %s\n", f.Source, f.Error)
		}
	}
	return sb.String()
}
