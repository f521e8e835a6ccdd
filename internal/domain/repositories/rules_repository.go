package repositories

import "github.com/rios0rios0/nugetsync/internal/domain/entities"

// RulesRepository persists the rules file.
type RulesRepository interface {
	// Load reads an existing rules file; a missing file is an error.
	Load(path string) (*entities.RulesFile, error)

	// LoadOrCreate reads the rules file or returns an empty one.
	LoadOrCreate(path string) (*entities.RulesFile, error)

	// Save writes the rules file, creating parent directories.
	Save(path string, rules *entities.RulesFile) error
}
