package cmd

import (
	"github.com/huangsam/readiness/core"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/spf13/cobra"
)

const rubricName = "rubric"

// rubricCmd prints the active rubric.
var rubricCmd = &cobra.Command{
	Use:   rubricName,
	Short: "Show the categories, weights and scoring rules of the rubric.",
	Long: `Print the rubric in effect after defaults are applied, along with any
warnings found while loading it, such as category weights not adding up to 1.

Examples:
  # Inspect the embedded rubric
  readiness rubric

  # Validate a custom rubric and export it
  readiness rubric --rubric rubric.yaml --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRubric(cfg, loadedRubric, rubricWarnings, writer); err != nil {
			contract.LogFatal("Cannot describe rubric", err)
		}
	},
}
