package entities

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrSettingsNotFound is returned when no settings file exists yet.
var ErrSettingsNotFound = errors.New("settings not found, run: nugetsync init --data-root <path>")

const outputsDirName = "outputs"

// Settings is the user-level configuration written by "nugetsync init".
type Settings struct {
	DataRoot          string `yaml:"data_root"`
	RulesFile         string `yaml:"rules_file,omitempty"`
	IncludeTransitive *bool  `yaml:"include_transitive,omitempty"`
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.DataRoot == "" {
		return errors.New("data_root is required")
	}
	return nil
}

// ExpandEnv expands ${VAR} references in the configured paths.
func (s *Settings) ExpandEnv() {
	s.DataRoot = os.ExpandEnv(s.DataRoot)
	s.RulesFile = os.ExpandEnv(s.RulesFile)
}

// RulesPath returns the rules file, defaulting to the data root.
func (s *Settings) RulesPath() string {
	if s.RulesFile != "" {
		return s.RulesFile
	}
	return filepath.Join(s.DataRoot, DefaultRulesFileName)
}

// OutputsRoot is the directory holding one output folder per repository.
func (s *Settings) OutputsRoot() string {
	return filepath.Join(s.DataRoot, outputsDirName)
}

// RepoOutputDir is the output folder of one repository.
func (s *Settings) RepoOutputDir(repoRoot string) (string, error) {
	key, err := RepoKey(repoRoot)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.OutputsRoot(), key), nil
}

// IncludesTransitive reports whether transitive packages are listed;
// defaults to true.
func (s *Settings) IncludesTransitive() bool {
	if s.IncludeTransitive == nil {
		return true
	}
	return *s.IncludeTransitive
}
