package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// Init is the interface for the init command.
type Init interface {
	Execute(opts InitOptions) (*entities.Settings, error)
}

// InitOptions holds the values written into the settings file.
type InitOptions struct {
	DataRoot          string
	IncludeTransitive *bool
}

// InitCommand writes the settings file and seeds an empty rules file under
// the data root.
type InitCommand struct {
	settings repositories.SettingsRepository
	rules    repositories.RulesRepository
}

// NewInitCommand creates a new InitCommand.
func NewInitCommand(
	settings repositories.SettingsRepository,
	rules repositories.RulesRepository,
) *InitCommand {
	return &InitCommand{settings: settings, rules: rules}
}

// Execute saves the settings. An existing rules file is left untouched.
func (it *InitCommand) Execute(opts InitOptions) (*entities.Settings, error) {
	if opts.DataRoot == "" {
		return nil, errors.New("a data root is required")
	}

	dataRoot, err := filepath.Abs(opts.DataRoot)
	if err != nil {
		return nil, fmt.Errorf("invalid data root %q: %w", opts.DataRoot, err)
	}

	settings := &entities.Settings{
		DataRoot:          dataRoot,
		IncludeTransitive: opts.IncludeTransitive,
	}
	if saveErr := it.settings.Save(settings); saveErr != nil {
		return nil, saveErr
	}

	rulesPath := settings.RulesPath()
	if _, loadErr := it.rules.Load(rulesPath); loadErr != nil {
		if !errors.Is(loadErr, fs.ErrNotExist) {
			return nil, loadErr
		}
		if saveErr := it.rules.Save(rulesPath, entities.NewRulesFile()); saveErr != nil {
			return nil, saveErr
		}
		logger.Infof("Created rules file %s", rulesPath)
	}

	if path, pathErr := it.settings.Path(); pathErr == nil {
		logger.Infof("Settings written to %s", path)
	}
	return settings, nil
}
