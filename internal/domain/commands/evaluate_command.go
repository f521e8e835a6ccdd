package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// Evaluate is the interface for the evaluate command.
type Evaluate interface {
	Execute(ctx context.Context, opts EvaluateOptions) (*RepoResult, error)
}

// EvaluateOptions holds runtime options for re-evaluating a saved inventory.
type EvaluateOptions struct {
	InventoryPath string
	RulesPath     string // defaults to the rules file from settings
	OutputPath    string // defaults to the report next to the inventory
}

// EvaluateCommand reruns the decision engine over a saved inventory without
// touching the repository it came from.
type EvaluateCommand struct {
	settings  repositories.SettingsRepository
	rules     repositories.RulesRepository
	inventory repositories.InventoryRepository
	reports   repositories.ReportRepository
	clock     entities.Clock
}

// NewEvaluateCommand creates a new EvaluateCommand.
func NewEvaluateCommand(
	settings repositories.SettingsRepository,
	rules repositories.RulesRepository,
	inventory repositories.InventoryRepository,
	reports repositories.ReportRepository,
	clock entities.Clock,
) *EvaluateCommand {
	return &EvaluateCommand{
		settings:  settings,
		rules:     rules,
		inventory: inventory,
		reports:   reports,
		clock:     clock,
	}
}

// Execute reads the inventory, applies the rules and writes the report.
func (it *EvaluateCommand) Execute(_ context.Context, opts EvaluateOptions) (*RepoResult, error) {
	if opts.InventoryPath == "" {
		return nil, errors.New("an inventory file is required")
	}

	rulesPath := opts.RulesPath
	if rulesPath == "" {
		settings, err := it.settings.Load()
		if err != nil {
			return nil, err
		}
		rulesPath = settings.RulesPath()
	}

	ruleSet, err := loadRuleSet(it.rules, rulesPath)
	if err != nil {
		return nil, err
	}

	inventory, err := it.inventory.Read(opts.InventoryPath)
	if err != nil {
		return nil, err
	}

	rows, err := entities.BuildReportRows(*inventory, ruleSet, it.clock)
	if err != nil {
		return nil, fmt.Errorf("inventory %q: %w", opts.InventoryPath, err)
	}

	reportPath := opts.OutputPath
	if reportPath == "" {
		reportPath = filepath.Join(filepath.Dir(opts.InventoryPath), entities.ReportFileName)
	}
	if writeErr := it.reports.WriteReport(reportPath, rows); writeErr != nil {
		return nil, writeErr
	}

	logger.Infof("Report written: %s (%d rows)", reportPath, len(rows))
	return &RepoResult{
		RepoRoot:      inventory.RepoRoot,
		ReportPath:    reportPath,
		InventoryPath: opts.InventoryPath,
		Projects:      len(inventory.Projects),
		Rows:          len(rows),
	}, nil
}
