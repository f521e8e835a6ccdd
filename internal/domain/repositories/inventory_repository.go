package repositories

import "github.com/rios0rios0/nugetsync/internal/domain/entities"

// InventoryRepository persists package inventories.
type InventoryRepository interface {
	Write(path string, inventory *entities.RepoInventory) error
	Read(path string) (*entities.RepoInventory, error)
}
