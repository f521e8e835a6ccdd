package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// EvaluateController handles the "evaluate" subcommand.
type EvaluateController struct {
	command commands.Evaluate
}

// NewEvaluateController creates a new EvaluateController.
func NewEvaluateController(command commands.Evaluate) *EvaluateController {
	return &EvaluateController{command: command}
}

// GetBind returns the Cobra command metadata for the evaluate controller.
func (it *EvaluateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "evaluate",
		Short: "Apply the rules to a saved inventory",
		Long: `Rerun the decision engine over an existing NugetSync.Inventory.json
without restoring or listing packages again. Useful after editing the rules.`,
	}
}

// Execute re-evaluates the inventory.
func (it *EvaluateController) Execute(cmd *cobra.Command, _ []string) error {
	inventoryPath, _ := cmd.Flags().GetString("inventory")
	rulesPath, _ := cmd.Flags().GetString("rules")
	outputPath, _ := cmd.Flags().GetString("output")

	_, err := it.command.Execute(context.Background(), commands.EvaluateOptions{
		InventoryPath: inventoryPath,
		RulesPath:     rulesPath,
		OutputPath:    outputPath,
	})
	return err
}

// AddFlags adds the evaluate-specific flags to the given Cobra command.
func (it *EvaluateController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("inventory", "", "Inventory file to evaluate (required)")
	cmd.Flags().String("rules", "", "Rules file (default: from settings)")
	cmd.Flags().String("output", "", "Report file (default: next to the inventory)")
	_ = cmd.MarkFlagRequired("inventory")
}
