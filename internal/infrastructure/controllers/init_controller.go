package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// InitController handles the "init" subcommand.
type InitController struct {
	command commands.Init
}

// NewInitController creates a new InitController.
func NewInitController(command commands.Init) *InitController {
	return &InitController{command: command}
}

// GetBind returns the Cobra command metadata for the init controller.
func (it *InitController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "init",
		Short: "Write the settings file",
		Long: `Write the user settings file pointing at a data root.
The data root holds the rules file (nugetsyncrules.json) and every output.
The settings file is $NUGETSYNC_SETTINGS or nugetsync/settings.yaml in the
user configuration directory.`,
	}
}

// Execute writes the settings.
func (it *InitController) Execute(cmd *cobra.Command, _ []string) error {
	dataRoot, _ := cmd.Flags().GetString("data-root")

	opts := commands.InitOptions{DataRoot: dataRoot}
	if cmd.Flags().Changed("include-transitive") {
		includeTransitive, _ := cmd.Flags().GetBool("include-transitive")
		opts.IncludeTransitive = &includeTransitive
	}

	settings, err := it.command.Execute(opts)
	if err != nil {
		return err
	}
	logger.Infof("Data root: %s", settings.DataRoot)
	return nil
}

// AddFlags adds the init-specific flags to the given Cobra command.
func (it *InitController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("data-root", "", "Directory holding the rules file and outputs (required)")
	cmd.Flags().Bool("include-transitive", true, "List transitive packages by default")
	_ = cmd.MarkFlagRequired("data-root")
}
