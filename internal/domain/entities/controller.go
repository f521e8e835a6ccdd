package entities

import "github.com/spf13/cobra"

// ControllerBind is the Cobra command metadata a controller is bound to.
type ControllerBind struct {
	Parent string // group command the subcommand is nested under, if any
	Use    string
	Short  string
	Long   string
}

// Controller is a CLI entry point bound to one subcommand.
type Controller interface {
	GetBind() ControllerBind
	AddFlags(cmd *cobra.Command)
	Execute(cmd *cobra.Command, args []string) error
}
