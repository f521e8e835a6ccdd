package rules

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	dirFileMode  = 0o755
	rulesMode    = 0o644
	jsonIndent   = "  "
	yamlIndent   = 2
	extensionYML = ".yml"
	extensionYAM = ".yaml"
)

// FileRulesRepository reads and writes rules files. JSON is the default
// format; files ending in .yaml or .yml are handled as YAML.
type FileRulesRepository struct{}

// NewFileRulesRepository creates a new file-backed rules repository.
func NewFileRulesRepository() repositories.RulesRepository {
	return &FileRulesRepository{}
}

// Load reads and decodes the rules file at path.
func (r *FileRulesRepository) Load(path string) (*entities.RulesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("rules file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read rules file %q: %w", path, err)
	}

	var rules *entities.RulesFile
	if isYAML(path) {
		err = yaml.Unmarshal(data, &rules)
	} else {
		err = json.Unmarshal(data, &rules)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %q: %w", entities.ErrInvalidRules, path, err)
	}
	if rules == nil {
		return nil, fmt.Errorf("%w: %q is empty", entities.ErrInvalidRules, path)
	}
	return rules, nil
}

// LoadOrCreate reads the rules file, or returns a new empty one when the
// file does not exist yet.
func (r *FileRulesRepository) LoadOrCreate(path string) (*entities.RulesFile, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return entities.NewRulesFile(), nil
	}
	return r.Load(path)
}

// Save encodes the rules file with indentation and writes it to path.
func (r *FileRulesRepository) Save(path string, rules *entities.RulesFile) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		var sb strings.Builder
		encoder := yaml.NewEncoder(&sb)
		encoder.SetIndent(yamlIndent)
		if err = encoder.Encode(rules); err == nil {
			err = encoder.Close()
		}
		data = []byte(sb.String())
	} else {
		data, err = json.MarshalIndent(rules, "", jsonIndent)
	}
	if err != nil {
		return fmt.Errorf("failed to encode rules: %w", err)
	}

	if mkErr := os.MkdirAll(filepath.Dir(path), dirFileMode); mkErr != nil {
		return fmt.Errorf("failed to create rules directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, rulesMode); writeErr != nil {
		return fmt.Errorf("failed to write rules file %q: %w", path, writeErr)
	}
	return nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == extensionYAM || ext == extensionYML
}
