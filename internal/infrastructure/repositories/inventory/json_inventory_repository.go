package inventory

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	dirFileMode  = 0o755
	fileFileMode = 0o644
)

// JSONInventoryRepository stores inventories as indented JSON documents.
type JSONInventoryRepository struct{}

// NewJSONInventoryRepository creates a new JSON inventory repository.
func NewJSONInventoryRepository() repositories.InventoryRepository {
	return &JSONInventoryRepository{}
}

// Write encodes the inventory to path, creating parent directories.
func (r *JSONInventoryRepository) Write(path string, inventory *entities.RepoInventory) error {
	data, err := json.MarshalIndent(inventory, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode inventory: %w", err)
	}
	if mkErr := os.MkdirAll(filepath.Dir(path), dirFileMode); mkErr != nil {
		return fmt.Errorf("failed to create inventory directory: %w", mkErr)
	}
	if writeErr := os.WriteFile(path, data, fileFileMode); writeErr != nil {
		return fmt.Errorf("failed to write inventory %q: %w", path, writeErr)
	}
	return nil
}

// Read decodes an inventory previously written by Write.
func (r *JSONInventoryRepository) Read(path string) (*entities.RepoInventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory %q: %w", path, err)
	}

	var inventory entities.RepoInventory
	if unmarshalErr := json.Unmarshal(data, &inventory); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse inventory %q: %w", path, unmarshalErr)
	}
	return &inventory, nil
}
