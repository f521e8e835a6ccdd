package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	constructors := []interface{}{
		NewReportController,
		NewEvaluateController,
		NewInitController,
		NewAddRuleController,
		NewMergeController,
		NewControllers,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	reportController *ReportController,
	evaluateController *EvaluateController,
	initController *InitController,
	addRuleController *AddRuleController,
	mergeController *MergeController,
) *[]entities.Controller {
	return &[]entities.Controller{
		reportController,
		evaluateController,
		initController,
		addRuleController,
		mergeController,
	}
}
