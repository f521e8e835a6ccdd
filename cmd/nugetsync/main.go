package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/nugetsync/internal"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

func buildRootCommand() *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "nugetsync",
		Short: "NuGet package usage inventory and rule engine",
		Long: `Inventory the NuGet packages used by .NET repositories and classify each
one against a rules file, producing a tab-separated change report per project.

Usage:
  nugetsync init --data-root ~/nugetsync   Write the settings file
  nugetsync rules add                      Add a package rule interactively
  nugetsync run --repo ./my-service        Inventory a repository
  nugetsync merge                          Merge every report into one file`,
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, _ []string) {
			if verbose, _ := command.Flags().GetBool("verbose"); verbose {
				logger.SetLevel(logger.DebugLevel)
			}
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	groups := make(map[string]*cobra.Command)

	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.NoArgs,
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}

		// Add controller-specific flags
		ctrl.AddFlags(subCmd)

		parentCmd(rootCmd, groups, bind).AddCommand(subCmd)
	}
}

func parentCmd(
	rootCmd *cobra.Command,
	groups map[string]*cobra.Command,
	bind entities.ControllerBind,
) *cobra.Command {
	if bind.Parent == "" {
		return rootCmd
	}
	if group, ok := groups[bind.Parent]; ok {
		return group
	}

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	group := &cobra.Command{
		Use:   bind.Parent,
		Short: "Manage " + bind.Parent,
	}
	groups[bind.Parent] = group
	rootCmd.AddCommand(group)
	return group
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	cobraRoot := buildRootCommand()

	appContext, err := buildAppContext()
	if err != nil {
		logger.Fatalf("Failed to wire 'nugetsync': %s", err)
	}
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'nugetsync': %s", err)
	}
}
