//go:build unit

package inventory_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/inventory"
	builders "github.com/rios0rios0/nugetsync/test/domain/entitybuilders"
)

func TestJSONInventoryRepository(t *testing.T) {
	t.Parallel()

	t.Run("should write the documented property names", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "out", "NugetSync.Inventory.json")
		inv := &entities.RepoInventory{
			RepoRoot:       "/src/shop",
			ProjectURL:     "https://example.com/shop.git",
			RepoRef:        "main",
			BranchName:     "main",
			CommitSHA:      "0123456789abcdef",
			GeneratedAtUTC: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Projects: []entities.ProjectInventory{
				builders.NewProjectInventoryBuilder().WithPackage("Foo", "1.0.0").BuildProjectInventory(),
			},
		}

		// when
		writeErr := inventory.NewJSONInventoryRepository().Write(path, inv)

		// then
		require.NoError(t, writeErr)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		for _, key := range []string{`"ProjectUrl"`, `"CommitSha"`, `"GeneratedAtUtc": "2026-01-02T03:04:05Z"`, `"CsprojPath"`, `"Tfm"`, `"Id": "Foo"`, `"IsTransitive"`} {
			assert.Contains(t, string(data), key)
		}
		assert.NotContains(t, string(data), `"Error"`)
	})

	t.Run("should read back what it wrote", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "NugetSync.Inventory.json")
		repo := inventory.NewJSONInventoryRepository()
		inv := &entities.RepoInventory{
			RepoRoot:       "/src/shop",
			GeneratedAtUTC: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Projects: []entities.ProjectInventory{
				builders.NewProjectInventoryBuilder().WithError("restore failed").BuildProjectInventory(),
			},
		}
		require.NoError(t, repo.Write(path, inv))

		// when
		loaded, err := repo.Read(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, inv, loaded)
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := inventory.NewJSONInventoryRepository().Read(filepath.Join(t.TempDir(), "none.json"))

		// then
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
