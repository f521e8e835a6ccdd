package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// AddRuleController handles the "rules add" subcommand.
type AddRuleController struct {
	command commands.AddRule
}

// NewAddRuleController creates a new AddRuleController.
func NewAddRuleController(command commands.AddRule) *AddRuleController {
	return &AddRuleController{command: command}
}

// GetBind returns the Cobra command metadata for the add rule controller.
func (it *AddRuleController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Parent: "rules",
		Use:    "add",
		Short:  "Add or replace a package rule interactively",
		Long: `Ask for a package id, an action and, for upgrades, a target policy and
version. Upgrade notes can be attached to version selectors (ranges such as
[1.0,2.0), wildcards such as 1.2.*, exact versions or *).`,
	}
}

// Execute runs the wizard.
func (it *AddRuleController) Execute(cmd *cobra.Command, _ []string) error {
	rulesPath, _ := cmd.Flags().GetString("rules")

	rule, err := it.command.Execute(commands.AddRuleOptions{RulesPath: rulesPath})
	if err != nil {
		return err
	}
	logger.Infof("Rule for %s saved (%s)", rule.ID, rule.Action)
	return nil
}

// AddFlags adds the wizard-specific flags to the given Cobra command.
func (it *AddRuleController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().String("rules", "", "Rules file (default: from settings)")
}
