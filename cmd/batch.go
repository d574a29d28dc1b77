package cmd

import (
	"fmt"

	"github.com/huangsam/readiness/core"
	"github.com/huangsam/readiness/internal/contract"
	"github.com/huangsam/readiness/schema"
	"github.com/spf13/cobra"
)

const batchName = "batch"

// batchCmd scores and ranks several jurisdictions.
var batchCmd = &cobra.Command{
	Use:   batchName + " <input-file>...",
	Short: "Score and rank several jurisdictions.",
	Long: `Score every input file against the same rubric and rank the results.

Files are scored concurrently. A file that cannot be read or parsed is
reported as a failure without stopping the rest of the batch. Jurisdiction
names come from each file, so --jurisdiction is ignored; --set overrides
apply to every file.

Supported outputs: text, csv, json and markdown.

Examples:
  # Rank all candidate markets
  readiness batch inputs/*.yaml

  # Include category columns and save as markdown
  readiness batch inputs/*.yaml --detail --output markdown --output-file ranking.md`,
	Args: cobra.MinimumNArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if err := sharedSetup(rootCtx, cmd, args); err != nil {
			return err
		}
		if _, ok := schema.BatchOutputModes[cfg.Output]; !ok {
			return fmt.Errorf("output %q is not supported for batch", cfg.Output)
		}
		return nil
	},
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBatch(rootCtx, cfg, loadedRubric, writer); err != nil {
			contract.LogFatal("Cannot score batch", err)
		}
	},
}
