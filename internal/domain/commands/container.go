package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	constructors := []interface{}{
		NewReportCommand,
		NewEvaluateCommand,
		NewInitCommand,
		NewAddRuleCommand,
		NewMergeCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []interface{}{
		func(impl *ReportCommand) Report { return impl },
		func(impl *EvaluateCommand) Evaluate { return impl },
		func(impl *InitCommand) Init { return impl },
		func(impl *AddRuleCommand) AddRule { return impl },
		func(impl *MergeCommand) Merge { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
