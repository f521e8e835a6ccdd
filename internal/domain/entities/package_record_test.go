//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	builders "github.com/rios0rios0/nugetsync/test/domain/entitybuilders"
)

func TestAggregatePackages(t *testing.T) {
	t.Parallel()

	t.Run("should clear the transitive flag when any occurrence is direct", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net8.0").WithTransitivePackage("Foo", "1.0.0").
			WithFramework("net6.0").WithPackage("Foo", "1.0.0").
			BuildProjectInventory()

		// when
		records := entities.AggregatePackages(project)

		// then
		require.Len(t, records, 1)
		assert.False(t, records[0].IsTransitive)
		assert.Equal(t, []string{"net8.0", "net6.0"}, records[0].Frameworks)
	})

	t.Run("should keep the transitive flag when every occurrence is transitive", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net8.0").WithTransitivePackage("Foo", "1.0.0").
			WithFramework("net6.0").WithTransitivePackage("foo", "1.0.0").
			BuildProjectInventory()

		// when
		records := entities.AggregatePackages(project)

		// then
		require.Len(t, records, 1)
		assert.True(t, records[0].IsTransitive)
		assert.Equal(t, "Foo", records[0].ID)
	})

	t.Run("should keep the highest resolved version", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net6.0").WithPackage("Foo", "1.2.0").
			WithFramework("net7.0").WithPackage("Foo", "1.10.0").
			WithFramework("net8.0").WithPackage("Foo", "1.9.0").
			BuildProjectInventory()

		// when
		records := entities.AggregatePackages(project)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, "1.10.0", records[0].ResolvedVersion)
	})

	t.Run("should adopt the first non-blank version and keep it over unparsable ones", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net6.0").WithPackage("Foo", "").
			WithFramework("net7.0").WithPackage("Foo", "1.0.0").
			WithFramework("net8.0").WithPackage("Foo", "not-a-version").
			BuildProjectInventory()

		// when
		records := entities.AggregatePackages(project)

		// then
		require.Len(t, records, 1)
		assert.Equal(t, "1.0.0", records[0].ResolvedVersion)
	})

	t.Run("should preserve first-seen order across frameworks", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net8.0").WithPackage("Zeta", "1.0").WithPackage("Alpha", "1.0").
			WithFramework("net6.0").WithPackage("Mid", "1.0").WithPackage("ALPHA", "2.0").
			BuildProjectInventory()

		// when
		records := entities.AggregatePackages(project)

		// then
		require.Len(t, records, 3)
		assert.Equal(t, "Zeta", records[0].ID)
		assert.Equal(t, "Alpha", records[1].ID)
		assert.Equal(t, "2.0", records[1].ResolvedVersion)
		assert.Equal(t, "Mid", records[2].ID)
	})
}

func TestPackageAggregateFold(t *testing.T) {
	t.Parallel()

	t.Run("should leave earlier aggregates untouched", func(t *testing.T) {
		t.Parallel()

		// given
		var empty entities.PackageAggregate
		first := empty.Fold("net8.0", entities.PackageInventory{ID: "Foo", ResolvedVersion: "1.0.0", IsTransitive: true})

		// when
		second := first.Fold("net6.0", entities.PackageInventory{ID: "foo", ResolvedVersion: "2.0.0"})

		// then
		assert.Equal(t, 0, empty.Len())
		require.Len(t, first.Records(), 1)
		assert.Equal(t, "1.0.0", first.Records()[0].ResolvedVersion)
		assert.True(t, first.Records()[0].IsTransitive)
		assert.Equal(t, []string{"net8.0"}, first.Records()[0].Frameworks)

		require.Len(t, second.Records(), 1)
		assert.Equal(t, "2.0.0", second.Records()[0].ResolvedVersion)
		assert.False(t, second.Records()[0].IsTransitive)
		assert.Equal(t, []string{"net8.0", "net6.0"}, second.Records()[0].Frameworks)
	})
}

func TestFormatFrameworks(t *testing.T) {
	t.Parallel()

	t.Run("should deduplicate and sort ignoring case", func(t *testing.T) {
		t.Parallel()

		// given
		names := []string{"net8.0", "NET6.0", "netstandard2.0", "Net8.0"}

		// when
		result := entities.FormatFrameworks(names)

		// then
		assert.Equal(t, "NET6.0,net8.0,netstandard2.0", result)
	})

	t.Run("should return an empty string without frameworks", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.FormatFrameworks(nil)

		// then
		assert.Empty(t, result)
	})
}
