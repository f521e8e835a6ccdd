package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// ReportController handles the "run" subcommand.
type ReportController struct {
	command commands.Report
}

// NewReportController creates a new ReportController.
func NewReportController(command commands.Report) *ReportController {
	return &ReportController{command: command}
}

// GetBind returns the Cobra command metadata for the report controller.
func (it *ReportController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Inventory repositories and write their change reports",
		Long: `List the NuGet packages of every project in the given repositories,
apply the rules file and write one change report per repository.

Outputs go to <data_root>/outputs/<repo key>/ unless overridden:
  NugetSync.Inventory.json  the package inventory
  NugetSync.Report.tsv      upgrade / remove / up to date rows
  NugetSync.Packages.tsv    one line per project, framework and package`,
	}
}

// Execute runs the inventory and report flow.
func (it *ReportController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	repoDirs, _ := cmd.Flags().GetStringArray("repo")
	rulesPath, _ := cmd.Flags().GetString("rules")
	outputPath, _ := cmd.Flags().GetString("output")
	inventoryPath, _ := cmd.Flags().GetString("inventory")
	ecosystem, _ := cmd.Flags().GetString("ecosystem")

	opts := commands.ReportOptions{
		RepoDirs:      repoDirs,
		RulesPath:     rulesPath,
		OutputPath:    outputPath,
		InventoryPath: inventoryPath,
		Ecosystem:     ecosystem,
	}
	if cmd.Flags().Changed("include-transitive") {
		includeTransitive, _ := cmd.Flags().GetBool("include-transitive")
		opts.IncludeTransitive = &includeTransitive
	}

	logger.Info("Starting nugetsync run...")
	summary, err := it.command.Execute(ctx, opts)
	if summary != nil {
		for _, result := range summary.Results {
			logger.Infof("%s -> %s", result.RepoRoot, result.ReportPath)
		}
	}
	return err
}

// AddFlags adds the run-specific flags to the given Cobra command.
func (it *ReportController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("repo", nil, "Repository to inventory (repeatable, default: current directory)")
	cmd.Flags().String("rules", "", "Rules file (default: from settings)")
	cmd.Flags().String("output", "", "Report file (single repository only)")
	cmd.Flags().String("inventory", "", "Inventory file (single repository only)")
	cmd.Flags().Bool("include-transitive", true, "List transitive packages (default: from settings)")
	cmd.Flags().String("ecosystem", "dotnet", "Package manager to list packages with")
}
