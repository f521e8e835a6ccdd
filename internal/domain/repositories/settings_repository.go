package repositories

import "github.com/rios0rios0/nugetsync/internal/domain/entities"

// SettingsRepository persists the user-level settings.
type SettingsRepository interface {
	// Path returns the settings file location.
	Path() (string, error)

	// Load reads the settings; entities.ErrSettingsNotFound when absent.
	Load() (*entities.Settings, error)

	// Save validates and writes the settings.
	Save(settings *entities.Settings) error
}
