//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	infraRepos "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories"
	builders "github.com/rios0rios0/nugetsync/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/nugetsync/test/infrastructure/repositorydoubles"
)

type reportFixture struct {
	dataRoot  string
	repoRoot  string
	settings  *doubles.StubSettingsRepository
	rules     *doubles.InMemoryRulesRepository
	manager   *doubles.SpyPackageRepository
	gitInfo   *doubles.StubGitInfoRepository
	inventory *doubles.InMemoryInventoryRepository
	reports   *doubles.SpyReportRepository
}

func newReportFixture(t *testing.T, rules ...entities.PackageRule) *reportFixture {
	t.Helper()

	dataRoot := t.TempDir()
	repoRoot := filepath.Join(t.TempDir(), "shop")
	settings := &entities.Settings{DataRoot: dataRoot}

	file := entities.NewRulesFile()
	file.Packages = rules

	return &reportFixture{
		dataRoot: dataRoot,
		repoRoot: repoRoot,
		settings: &doubles.StubSettingsRepository{Settings: settings},
		rules:    doubles.NewInMemoryRulesRepository(settings.RulesPath(), file),
		manager: &doubles.SpyPackageRepository{
			Listings: map[string][]entities.ProjectInventory{},
			ListErrs: map[string]error{},
		},
		gitInfo: &doubles.StubGitInfoRepository{Info: entities.GitInfo{
			ProjectURL: "https://example.com/shop.git",
			RepoRef:    "main",
			Branch:     "main",
			CommitSHA:  "0123456789abcdef0123456789abcdef01234567",
		}},
		inventory: &doubles.InMemoryInventoryRepository{},
		reports:   &doubles.SpyReportRepository{},
	}
}

func (f *reportFixture) addProject(rel string, listing ...entities.ProjectInventory) string {
	path := filepath.Join(f.repoRoot, filepath.FromSlash(rel))
	f.manager.Projects = append(f.manager.Projects, path)
	f.manager.Listings[path] = listing
	return path
}

func (f *reportFixture) command() *commands.ReportCommand {
	registry := infraRepos.NewPackageRegistry()
	registry.Register(f.manager)
	clock := func() time.Time { return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC) }
	return commands.NewReportCommand(f.settings, f.rules, registry, f.gitInfo, f.inventory, f.reports, clock)
}

func (f *reportFixture) outputDir(t *testing.T) string {
	t.Helper()
	key, err := entities.RepoKey(f.repoRoot)
	require.NoError(t, err)
	return filepath.Join(f.dataRoot, "outputs", key)
}

func TestReportCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should write inventory, report and packages under the data root", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("2.0.0", "exact_or_higher").BuildPackageRule())
		fixture.addProject("src/App/App.csproj",
			builders.NewProjectInventoryBuilder().WithPackage("Foo", "1.0.0").BuildProjectInventory())

		// when
		summary, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot},
		})

		// then
		require.NoError(t, err)
		require.Len(t, summary.Results, 1)
		outputDir := fixture.outputDir(t)
		result := summary.Results[0]
		assert.Equal(t, filepath.Join(outputDir, entities.ReportFileName), result.ReportPath)
		assert.Equal(t, filepath.Join(outputDir, entities.InventoryFileName), result.InventoryPath)
		assert.Equal(t, filepath.Join(outputDir, entities.PackagesFileName), result.PackagesPath)
		assert.Equal(t, 1, result.Rows)

		rows := fixture.reports.Reports[result.ReportPath]
		require.Len(t, rows, 1)
		assert.Equal(t, "upgrade", rows[0].Action)
		assert.Equal(t, "https://example.com/shop.git", rows[0].ProjectURL)

		inv := fixture.inventory.Inventories[result.InventoryPath]
		require.NotNil(t, inv)
		assert.Equal(t, fixture.repoRoot, inv.RepoRoot)
		assert.Equal(t, "main", inv.BranchName)
		assert.Contains(t, fixture.reports.Packages, result.PackagesPath)
		assert.Equal(t, 1, fixture.manager.PrepareCalls)
	})

	t.Run("should keep a project whose listing failed as a degraded entry", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)
		broken := fixture.addProject("src/Broken/Broken.csproj")
		fixture.manager.ListErrs[broken] = errors.New("restore failed")
		fixture.addProject("src/Empty/Empty.csproj")

		// when
		summary, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot},
		})

		// then
		require.NoError(t, err)
		result := summary.Results[0]
		assert.Equal(t, 2, result.Projects)
		assert.Equal(t, 1, result.FailedProjects)

		inv := fixture.inventory.Inventories[result.InventoryPath]
		require.Len(t, inv.Projects, 2)
		assert.Equal(t, "src/Broken/Broken.csproj", inv.Projects[0].CsprojPath)
		assert.Equal(t, "restore failed", inv.Projects[0].Error)
		assert.Equal(t, "src/Empty/Empty.csproj", inv.Projects[1].CsprojPath)
		assert.Empty(t, inv.Projects[1].Error)

		rows := fixture.reports.Reports[result.ReportPath]
		require.Len(t, rows, 2)
		assert.Equal(t, entities.ActionUpToDate, rows[0].Action)
		assert.Equal(t, entities.ActionUpToDate, rows[1].Action)
	})

	t.Run("should honor output overrides and the transitive flag", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)
		fixture.addProject("App.csproj")
		outputs := t.TempDir()
		include := false
		rulesPath := filepath.Join(outputs, "custom-rules.json")
		require.NoError(t, fixture.rules.Save(rulesPath, entities.NewRulesFile()))

		// when
		summary, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs:          []string{fixture.repoRoot},
			RulesPath:         rulesPath,
			OutputPath:        filepath.Join(outputs, "report.tsv"),
			InventoryPath:     filepath.Join(outputs, "inventory.json"),
			IncludeTransitive: &include,
		})

		// then
		require.NoError(t, err)
		result := summary.Results[0]
		assert.Equal(t, filepath.Join(outputs, "report.tsv"), result.ReportPath)
		assert.Equal(t, filepath.Join(outputs, "inventory.json"), result.InventoryPath)
		assert.Equal(t, filepath.Join(outputs, entities.PackagesFileName), result.PackagesPath)
		require.Len(t, fixture.manager.ListCalls, 1)
		assert.False(t, fixture.manager.ListCalls[0].IncludeTransitive)
	})

	t.Run("should reject output overrides with several repositories", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)

		// when
		_, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs:   []string{"a", "b"},
			OutputPath: "report.tsv",
		})

		// then
		require.Error(t, err)
		assert.Equal(t, 0, fixture.manager.PrepareCalls)
	})

	t.Run("should fail before listing when settings are missing", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)
		fixture.settings.Settings = nil

		// when
		_, err := fixture.command().Execute(context.Background(), commands.ReportOptions{})

		// then
		require.ErrorIs(t, err, entities.ErrSettingsNotFound)
		assert.Equal(t, 0, fixture.manager.PrepareCalls)
	})

	t.Run("should fail before listing when the rules are invalid", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t, builders.NewPackageRuleBuilder().WithAction("pin").BuildPackageRule())

		// when
		_, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot},
		})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidRules)
		assert.Equal(t, 0, fixture.manager.PrepareCalls)
	})

	t.Run("should abort on an invalid target version", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t,
			builders.NewPackageRuleBuilder().WithID("Foo").WithTarget("latest", "exact").BuildPackageRule())
		fixture.addProject("App.csproj",
			builders.NewProjectInventoryBuilder().WithPackage("Foo", "1.0.0").BuildProjectInventory())

		// when
		_, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot, fixture.repoRoot},
		})

		// then
		require.ErrorIs(t, err, entities.ErrInvalidVersion)
		assert.Equal(t, 1, fixture.manager.PrepareCalls)
		assert.Empty(t, fixture.reports.Reports)
	})

	t.Run("should abort before listing when the SDK check fails", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)
		fixture.addProject("App.csproj")
		fixture.manager.PrepareErr = errors.New("dotnet SDK unavailable")

		// when
		summary, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot, t.TempDir()},
		})

		// then
		require.EqualError(t, err, "dotnet SDK unavailable")
		assert.Nil(t, summary)
		assert.Equal(t, 1, fixture.manager.PrepareCalls)
		assert.Empty(t, fixture.manager.ListCalls)
	})

	t.Run("should count a failing repository and continue with the next", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)
		fixture.addProject("App.csproj")
		fixture.manager.DiscoverErr = errors.New("walk failed")

		// when
		summary, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot, t.TempDir()},
		})

		// then
		require.ErrorIs(t, err, commands.ErrRepositoriesFailed)
		assert.Equal(t, 2, summary.Errors)
		assert.Empty(t, summary.Results)
		assert.Equal(t, 1, fixture.manager.PrepareCalls)
	})

	t.Run("should count a repository without project files as failed", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)

		// when
		summary, err := fixture.command().Execute(context.Background(), commands.ReportOptions{
			RepoDirs: []string{fixture.repoRoot},
		})

		// then
		require.ErrorIs(t, err, commands.ErrRepositoriesFailed)
		assert.Equal(t, 1, summary.Errors)
		assert.Empty(t, summary.Results)
		assert.Empty(t, fixture.reports.Reports)
		assert.Empty(t, fixture.manager.ListCalls)
	})

	t.Run("should reject an unknown ecosystem", func(t *testing.T) {
		t.Parallel()

		// given
		fixture := newReportFixture(t)

		// when
		_, err := fixture.command().Execute(context.Background(), commands.ReportOptions{Ecosystem: "npm"})

		// then
		require.ErrorContains(t, err, "npm")
	})
}
