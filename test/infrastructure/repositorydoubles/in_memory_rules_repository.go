//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"io/fs"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// InMemoryRulesRepository keeps rules files in a map keyed by path.
type InMemoryRulesRepository struct {
	Files   map[string]*entities.RulesFile
	LoadErr error
	SaveErr error
	Saved   []string
}

var _ repositories.RulesRepository = (*InMemoryRulesRepository)(nil)

// NewInMemoryRulesRepository creates a repository holding file at path.
func NewInMemoryRulesRepository(path string, file *entities.RulesFile) *InMemoryRulesRepository {
	files := make(map[string]*entities.RulesFile)
	if file != nil {
		files[path] = file
	}
	return &InMemoryRulesRepository{Files: files}
}

func (r *InMemoryRulesRepository) Load(path string) (*entities.RulesFile, error) {
	if r.LoadErr != nil {
		return nil, r.LoadErr
	}
	file, ok := r.Files[path]
	if !ok {
		return nil, fmt.Errorf("rules file not found: %w", fs.ErrNotExist)
	}
	return file, nil
}

func (r *InMemoryRulesRepository) LoadOrCreate(path string) (*entities.RulesFile, error) {
	if _, ok := r.Files[path]; !ok && r.LoadErr == nil {
		return entities.NewRulesFile(), nil
	}
	return r.Load(path)
}

func (r *InMemoryRulesRepository) Save(path string, rules *entities.RulesFile) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	if r.Files == nil {
		r.Files = make(map[string]*entities.RulesFile)
	}
	r.Files[path] = rules
	r.Saved = append(r.Saved, path)
	return nil
}
