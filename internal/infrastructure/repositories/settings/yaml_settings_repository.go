package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	// EnvSettingsPath overrides the settings file location.
	EnvSettingsPath = "NUGETSYNC_SETTINGS"

	appDirName       = "nugetsync"
	settingsFileName = "settings.yaml"
	dirFileMode      = 0o755
	settingsFileMode = 0o600
)

// YAMLSettingsRepository stores the settings as a YAML file in the user
// configuration directory.
type YAMLSettingsRepository struct {
	path string // empty means auto-detect
}

// NewYAMLSettingsRepository creates a settings repository that locates the
// file through FindSettingsFile.
func NewYAMLSettingsRepository() repositories.SettingsRepository {
	return &YAMLSettingsRepository{}
}

// NewYAMLSettingsRepositoryAt creates a settings repository bound to path.
func NewYAMLSettingsRepositoryAt(path string) *YAMLSettingsRepository {
	return &YAMLSettingsRepository{path: path}
}

// Path returns the settings file location.
func (r *YAMLSettingsRepository) Path() (string, error) {
	if r.path != "" {
		return r.path, nil
	}
	return FindSettingsFile()
}

// Load reads, expands and validates the settings file.
func (r *YAMLSettingsRepository) Load() (*entities.Settings, error) {
	path, err := r.Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (looked for %s)", entities.ErrSettingsNotFound, path)
		}
		return nil, fmt.Errorf("failed to read settings file %q: %w", path, err)
	}

	var settings entities.Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", unmarshalErr)
	}

	settings.ExpandEnv()
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, fmt.Errorf("settings file %q is invalid: %w", path, validateErr)
	}

	logger.Debugf("Loaded settings from %s", path)
	return &settings, nil
}

// Save validates and writes the settings file.
func (r *YAMLSettingsRepository) Save(settings *entities.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	path, err := r.Path()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), dirFileMode); mkErr != nil {
		return fmt.Errorf("failed to create settings directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, settingsFileMode); writeErr != nil {
		return fmt.Errorf("failed to write settings file %q: %w", path, writeErr)
	}
	return nil
}

// FindSettingsFile returns $NUGETSYNC_SETTINGS when set, otherwise
// settings.yaml in the user configuration directory. The file itself does
// not have to exist.
func FindSettingsFile() (string, error) {
	if path := os.Getenv(EnvSettingsPath); path != "" {
		return path, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(configDir, appDirName, settingsFileName), nil
}
