package cmd

import (
	"github.com/huangsam/readiness/core"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check [input-file]",
	Short: "Enforce a minimum readiness score (fails on low scores)",
	Long: `Score one jurisdiction and fail with a non-zero exit code when its
overall score is below --min-score.

Categories scoring below the minimum are listed so the gap is easy to act on.

Default minimum: 3.0 (Medium Readiness)

Use cases:
- Launch gates - block a go-live until a market clears the bar
- Scheduled reviews - flag markets that slipped after new data

Examples:
  # Require medium readiness
  readiness check inputs/bahrain.yaml

  # Require high readiness with a custom rubric
  readiness check inputs/bahrain.yaml --rubric rubric.yaml --min-score 4`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCheck(rootCtx, cfg, loadedRubric, writer); err != nil {
			contract.LogFatal("Readiness check failed", err)
		}
	},
}
