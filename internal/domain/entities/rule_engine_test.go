//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	builders "github.com/rios0rios0/nugetsync/test/domain/entitybuilders"
)

func fixedClock() entities.Clock {
	moment := time.Date(2026, 3, 14, 9, 26, 53, 0, time.Local)
	return func() time.Time { return moment }
}

func inventoryOf(projects ...entities.ProjectInventory) entities.RepoInventory {
	return entities.RepoInventory{
		RepoRoot:   "/src/shop",
		ProjectURL: "https://example.com/shop.git",
		RepoRef:    "main",
		Projects:   projects,
	}
}

func ruleSetOf(t *testing.T, defaultTransitive bool, rules ...entities.PackageRule) *entities.RuleSet {
	t.Helper()
	set, err := entities.NewRuleSet(&entities.RulesFile{
		SchemaVersion:            entities.RulesSchemaVersion,
		DefaultIncludeTransitive: defaultTransitive,
		Packages:                 rules,
	})
	require.NoError(t, err)
	return set
}

func TestBuildReportRows(t *testing.T) {
	t.Parallel()

	t.Run("should emit an upgrade row when the current version is below target", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().WithPackage("Foo", "1.0.0").BuildProjectInventory()
		rules := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "exact_or_higher").BuildPackageRule())

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "upgrade", rows[0].Action)
		assert.Equal(t, "2.0.0", rows[0].TargetVersion)
		assert.Equal(t, "Foo", rows[0].NugetName)
		assert.Equal(t, "net8.0", rows[0].Frameworks)
		assert.Equal(t, "https://example.com/shop.git", rows[0].ProjectURL)
		assert.Equal(t, "main", rows[0].RepoRef)
		assert.Equal(t, "src/App/App.csproj", rows[0].CsprojPath)
		assert.Equal(t, fixedClock()(), rows[0].DateUpdated)
	})

	t.Run("should emit the fallback row when the policy is already satisfied", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().WithPackage("Foo", "2.0.0").BuildProjectInventory()
		rules := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "exact_or_higher").BuildPackageRule())

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entities.ActionUpToDate, rows[0].Action)
		assert.Empty(t, rows[0].NugetName)
	})

	t.Run("should emit exactly one up to date row without matching rules", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net8.0").WithPackage("Foo", "1.0.0").WithPackage("Bar", "1.0.0").
			WithFramework("net6.0").WithPackage("Baz", "1.0.0").
			BuildProjectInventory()
		rules := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Unrelated").BuildPackageRule())

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "up to date", rows[0].Action)
		assert.Empty(t, rows[0].NugetName)
		assert.Empty(t, rows[0].TargetVersion)
		assert.Equal(t, "net6.0,net8.0", rows[0].Frameworks)
	})

	t.Run("should always emit a remove row regardless of target and policy", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().WithPackage("Legacy.Lib", "9.9.9").BuildProjectInventory()
		rule := builders.NewPackageRuleBuilder().WithID("legacy.lib").
			WithAction("remove").WithTarget("not-a-version", "lower").
			WithNote("*", "replaced by Modern.Lib").
			BuildPackageRule()
		rules := ruleSetOf(t, false, rule)

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "remove", rows[0].Action)
		assert.Empty(t, rows[0].TargetVersion)
		assert.Equal(t, "replaced by Modern.Lib", rows[0].Comment)
	})

	t.Run("should drop transitive packages unless the rule includes them", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().WithTransitivePackage("Foo", "1.0.0").BuildProjectInventory()
		excluded := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "exact_or_higher").BuildPackageRule())
		included := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "exact_or_higher").
				WithIncludeTransitive(true).BuildPackageRule())

		// when
		droppedRows, droppedErr := entities.BuildReportRows(inventoryOf(project), excluded, fixedClock())
		keptRows, keptErr := entities.BuildReportRows(inventoryOf(project), included, fixedClock())

		// then
		require.NoError(t, droppedErr)
		require.Len(t, droppedRows, 1)
		assert.Equal(t, entities.ActionUpToDate, droppedRows[0].Action)

		require.NoError(t, keptErr)
		require.Len(t, keptRows, 1)
		assert.Equal(t, "upgrade", keptRows[0].Action)
		assert.True(t, keptRows[0].IsTransitive)
	})

	t.Run("should attach the note selected by the current version", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().WithPackage("Foo", "1.4.0").BuildProjectInventory()
		rule := builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("3.0.0", "exact_or_higher").
			WithNote("2.*", "minor changes").
			WithNote("[1.0,2.0)", "breaking changes in 2.0").
			BuildPackageRule()
		rules := ruleSetOf(t, false, rule)

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "breaking changes in 2.0", rows[0].Comment)
	})

	t.Run("should skip upgrade rules without a target or without a resolved version", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithPackage("NoTarget", "1.0.0").
			WithPackage("NoVersion", "").
			BuildProjectInventory()
		rules := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("NoTarget").WithTarget(" ", "exact").BuildPackageRule(),
			builders.NewPackageRuleBuilder().WithID("NoVersion").WithTarget("2.0.0", "exact").BuildPackageRule())

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, entities.ActionUpToDate, rows[0].Action)
	})

	t.Run("should fail on an unparsable target version", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().WithPackage("Foo", "1.0.0").BuildProjectInventory()
		rules := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("latest", "exact").BuildPackageRule())

		// when
		rows, err := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.ErrorIs(t, err, entities.ErrInvalidVersion)
		assert.Nil(t, rows)
	})

	t.Run("should emit one fallback row per project without actions", func(t *testing.T) {
		t.Parallel()

		// given
		first := builders.NewProjectInventoryBuilder().WithPath("a/A.csproj").WithPackage("Foo", "1.0.0").BuildProjectInventory()
		second := builders.NewProjectInventoryBuilder().WithPath("b/B.csproj").WithError("restore failed").BuildProjectInventory()
		rules := ruleSetOf(t, false,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "exact_or_higher").BuildPackageRule())

		// when
		rows, err := entities.BuildReportRows(inventoryOf(first, second), rules, fixedClock())

		// then
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "a/A.csproj", rows[0].CsprojPath)
		assert.Equal(t, "upgrade", rows[0].Action)
		assert.Equal(t, "b/B.csproj", rows[1].CsprojPath)
		assert.Equal(t, entities.ActionUpToDate, rows[1].Action)
		assert.Empty(t, rows[1].Frameworks)
	})

	t.Run("should produce identical rows for identical inputs", func(t *testing.T) {
		t.Parallel()

		// given
		project := builders.NewProjectInventoryBuilder().
			WithFramework("net8.0").WithPackage("Foo", "1.0.0").WithTransitivePackage("Bar", "3.0.0").
			WithFramework("net6.0").WithPackage("Bar", "2.0.0").
			BuildProjectInventory()
		rules := ruleSetOf(t, true,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "higher").WithNote("1.*", "n").BuildPackageRule(),
			builders.NewPackageRuleBuilder().WithID("Bar").AsRemoval().BuildPackageRule())

		// when
		first, firstErr := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())
		second, secondErr := entities.BuildReportRows(inventoryOf(project), rules, fixedClock())

		// then
		require.NoError(t, firstErr)
		require.NoError(t, secondErr)
		assert.Equal(t, first, second)
		require.Len(t, first, 2)
		assert.Equal(t, "Bar", first[1].NugetName)
		assert.False(t, first[1].IsTransitive)
		assert.Equal(t, "net6.0,net8.0", first[1].Frameworks)
	})
}
