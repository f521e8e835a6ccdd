//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// StubSettingsRepository returns fixed settings and records saves.
type StubSettingsRepository struct {
	Settings  *entities.Settings
	LoadErr   error
	SaveErr   error
	SavedPath string
	Saved     *entities.Settings
}

var _ repositories.SettingsRepository = (*StubSettingsRepository)(nil)

func (s *StubSettingsRepository) Path() (string, error) {
	if s.SavedPath == "" {
		return "/config/nugetsync/settings.yaml", nil
	}
	return s.SavedPath, nil
}

func (s *StubSettingsRepository) Load() (*entities.Settings, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.Settings == nil {
		return nil, entities.ErrSettingsNotFound
	}
	return s.Settings, nil
}

func (s *StubSettingsRepository) Save(settings *entities.Settings) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	s.Saved = settings
	return nil
}
