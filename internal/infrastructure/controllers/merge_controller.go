package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// MergeController handles the "merge" subcommand.
type MergeController struct {
	command commands.Merge
}

// NewMergeController creates a new MergeController.
func NewMergeController(command commands.Merge) *MergeController {
	return &MergeController{command: command}
}

// GetBind returns the Cobra command metadata for the merge controller.
func (it *MergeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "merge",
		Short: "Merge every change report into one file",
		Long: `Concatenate every NugetSync.Report.tsv found under <data_root>/outputs
into a single mega report with one header line.`,
	}
}

// Execute merges the reports.
func (it *MergeController) Execute(cmd *cobra.Command, _ []string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	_, _, err := it.command.Execute(commands.MergeOptions{OutputPath: outputPath})
	return err
}

// AddFlags adds the merge-specific flags to the given Cobra command.
func (it *MergeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("output", "", "Merged report file (default: <data_root>/NugetSync.MegaReport.tsv)")
}
