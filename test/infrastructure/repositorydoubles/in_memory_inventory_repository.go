//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"
	"io/fs"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// InMemoryInventoryRepository keeps inventories in a map keyed by path.
type InMemoryInventoryRepository struct {
	Inventories map[string]*entities.RepoInventory
}

var _ repositories.InventoryRepository = (*InMemoryInventoryRepository)(nil)

func (r *InMemoryInventoryRepository) Write(path string, inventory *entities.RepoInventory) error {
	if r.Inventories == nil {
		r.Inventories = make(map[string]*entities.RepoInventory)
	}
	r.Inventories[path] = inventory
	return nil
}

func (r *InMemoryInventoryRepository) Read(path string) (*entities.RepoInventory, error) {
	inventory, ok := r.Inventories[path]
	if !ok {
		return nil, fmt.Errorf("inventory %q: %w", path, fs.ErrNotExist)
	}
	return inventory, nil
}
