package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRubric displays the loaded rubric, its total category weight and load warnings.
// This is a static display that does not score anything.
func PrintRubric(r *schema.Rubric, warnings []string, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRubricJSON(w, r, warnings)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRubricCSV(w, r)
		}, "Wrote CSV")
	case schema.MarkdownOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			_, err := io.WriteString(w, renderRubricMarkdown(r, warnings))
			return err
		}, "Wrote Markdown")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRubricText(w, r, warnings, cfg)
		}, "Wrote text")
	}
}

// describeRule summarises how a metric turns an input into a score.
func describeRule(m *schema.Metric) string {
	switch m.Type {
	case schema.NumericMetric:
		steps := make([]string, 0, len(m.Breaks))
		for i := 0; i < min(len(m.Breaks), len(m.Scores)); i++ {
			steps = append(steps, fmt.Sprintf("%s→%d", schema.FormatNumber(m.Breaks[i]), m.Scores[i]))
		}
		return fmt.Sprintf("%s: %s", m.Direction, strings.Join(steps, ", "))
	case schema.GenericSelect:
		order := "worst to best"
		if m.Reverse {
			order = "best to worst"
		}
		return fmt.Sprintf("%s (%s)", strings.Join(m.SelectOptions(), " < "), order)
	case schema.CustomIslamicRoboCount:
		return "0→5, 1→4, 2→3, 3+→2"
	case schema.CustomBinaryHighGood:
		return "yes→5, no→2"
	case schema.CustomShariahBoard:
		return "national board→5, private boards→3"
	case schema.CustomTernaryAcceptance:
		return "high→5, neutral→3, low→1"
	default:
		return "neutral 3"
	}
}

// writeRubricText displays each category with a table of its metrics.
func writeRubricText(w io.Writer, r *schema.Rubric, warnings []string, cfg *contract.Config) error {
	if _, err := fmt.Fprintf(w, "Readiness Rubric (%s)\n", r.Source); err != nil {
		return err
	}
	textWidth := GetMaxTableTextWidth(cfg)

	for i := range r.Categories {
		c := &r.Categories[i]
		if _, err := fmt.Fprintf(w, "\n%s (weight %s)\n", c.Name, schema.FormatNumber(c.Weight)); err != nil {
			return err
		}

		table := tablewriter.NewWriter(w)
		headers := []string{"Metric", "Type", "Weight", "Rule"}
		if cfg.Detail {
			headers = append(headers, "Reason")
		}
		table.Header(headers)
		table.Configure(func(cfg *tablewriter.Config) {
			cfg.Row.Alignment.Global = tw.AlignLeft
		})

		var data [][]string
		for j := range c.Metrics {
			m := &c.Metrics[j]
			row := []string{m.DisplayLabel(), string(m.Type), schema.FormatNumber(m.Weight), describeRule(m)}
			if cfg.Detail {
				row = append(row, contract.Truncate(m.Reason, textWidth))
			}
			data = append(data, row)
		}
		if err := table.Bulk(data); err != nil {
			return err
		}
		if err := table.Render(); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nTotal category weight: %.2f across %d metrics\n", r.TotalWeight(), r.MetricCount()); err != nil {
		return err
	}
	for _, warning := range warnings {
		if _, err := fmt.Fprintf(w, "Warning: %s\n", warning); err != nil {
			return err
		}
	}
	return nil
}

// writeRubricJSON writes the rubric with its derived totals.
func writeRubricJSON(w io.Writer, r *schema.Rubric, warnings []string) error {
	type JSONRubric struct {
		*schema.Rubric
		TotalWeight float64  `json:"total_weight"`
		Warnings    []string `json:"warnings"`
	}
	if warnings == nil {
		warnings = []string{}
	}
	return writeJSON(w, JSONRubric{Rubric: r, TotalWeight: r.TotalWeight(), Warnings: warnings})
}

// writeRubricCSV writes one row per metric.
func writeRubricCSV(w io.Writer, r *schema.Rubric) error {
	header := []string{"category", "category_weight", "metric", "label", "type", "weight", "rule", "reason"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i := range r.Categories {
			c := &r.Categories[i]
			for j := range c.Metrics {
				m := &c.Metrics[j]
				record := []string{
					c.Name,
					schema.FormatNumber(c.Weight),
					m.Key,
					m.DisplayLabel(),
					string(m.Type),
					schema.FormatNumber(m.Weight),
					describeRule(m),
					m.Reason,
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write CSV record: %w", err)
				}
			}
		}
		return nil
	})
}

// renderRubricMarkdown renders one metric table per category.
func renderRubricMarkdown(r *schema.Rubric, warnings []string) string {
	var sb strings.Builder
	sb.WriteString("# Readiness rubric\n")
	for i := range r.Categories {
		c := &r.Categories[i]
		fmt.Fprintf(&sb, "\n## %s (weight %s)\n\n", c.Name, schema.FormatNumber(c.Weight))
		writeMarkdownRow(&sb, []string{"Metric", "Type", "Weight", "Rule", "Reason"})
		writeMarkdownRow(&sb, []string{"---", "---", "---", "---", "---"})
		for j := range c.Metrics {
			m := &c.Metrics[j]
			writeMarkdownRow(&sb, []string{m.DisplayLabel(), string(m.Type), schema.FormatNumber(m.Weight), describeRule(m), m.Reason})
		}
	}
	fmt.Fprintf(&sb, "\nTotal category weight: %.2f\n", r.TotalWeight())
	for _, w := range warnings {
		fmt.Fprintf(&sb, "\n> Warning: %s\n", w)
	}
	return sb.String()
}
