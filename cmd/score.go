package cmd

import (
	"github.com/huangsam/readiness/core"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/spf13/cobra"
)

// scoreCmd scores a single jurisdiction.
var scoreCmd = &cobra.Command{
	Use:   "score [input-file]",
	Short: "Score one jurisdiction against the rubric.",
	Long: `Score a single jurisdiction's metric values against the rubric.

Each metric is scored 1-5 from its input, rolled up into weighted category
scores and an overall readiness label. Metrics without an input score a
neutral value, so a run with no input file still produces a full report.

Input files are YAML or JSON with a jurisdiction name and values keyed by
category then metric. Use "-" to read from stdin.

Examples:
  # Score a market from a file
  readiness score inputs/saudi_arabia.yaml

  # Override single values without editing the file
  readiness score inputs/uae.yaml --set "Regulatory.licensing_clarity=80"

  # Export every metric with its rationale
  readiness score inputs/malaysia.yaml --detail --output xlsx`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteScore(rootCtx, cfg, loadedRubric, writer); err != nil {
			contract.LogFatal("Cannot score jurisdiction", err)
		}
	},
}
