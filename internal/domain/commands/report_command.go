package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories"
)

// ErrRepositoriesFailed is returned when at least one repository could not
// be processed.
var ErrRepositoriesFailed = errors.New("some repositories failed")

// ErrNoProjects is returned for a repository without any project file.
var ErrNoProjects = errors.New("no project files found")

// Report is the interface for the run command.
type Report interface {
	Execute(ctx context.Context, opts ReportOptions) (*ReportSummary, error)
}

// ReportOptions holds runtime options for a single run.
type ReportOptions struct {
	RepoDirs          []string
	RulesPath         string // overrides the rules file from settings
	OutputPath        string // single repository only
	InventoryPath     string // single repository only
	IncludeTransitive *bool  // overrides the settings value
	Ecosystem         string
}

// RepoResult describes the outputs written for one repository.
type RepoResult struct {
	RepoRoot       string
	ReportPath     string
	InventoryPath  string
	PackagesPath   string
	Projects       int
	FailedProjects int
	Rows           int
}

// ReportSummary is the outcome of a run over all requested repositories.
type ReportSummary struct {
	Results []RepoResult
	Errors  int
}

// ReportCommand orchestrates the full inventory flow:
// list packages -> read git metadata -> decide -> write outputs.
type ReportCommand struct {
	settings  repositories.SettingsRepository
	rules     repositories.RulesRepository
	registry  *infraRepos.PackageRegistry
	gitInfo   repositories.GitInfoRepository
	inventory repositories.InventoryRepository
	reports   repositories.ReportRepository
	clock     entities.Clock
}

// NewReportCommand creates a new ReportCommand.
func NewReportCommand(
	settings repositories.SettingsRepository,
	rules repositories.RulesRepository,
	registry *infraRepos.PackageRegistry,
	gitInfo repositories.GitInfoRepository,
	inventory repositories.InventoryRepository,
	reports repositories.ReportRepository,
	clock entities.Clock,
) *ReportCommand {
	return &ReportCommand{
		settings:  settings,
		rules:     rules,
		registry:  registry,
		gitInfo:   gitInfo,
		inventory: inventory,
		reports:   reports,
		clock:     clock,
	}
}

// Execute inventories every repository and writes its report. Configuration
// problems, an unusable package manager and invalid versions abort the run;
// any other repository failure is logged and counted.
func (it *ReportCommand) Execute(ctx context.Context, opts ReportOptions) (*ReportSummary, error) {
	repoDirs := opts.RepoDirs
	if len(repoDirs) == 0 {
		repoDirs = []string{"."}
	}
	if len(repoDirs) > 1 && (opts.OutputPath != "" || opts.InventoryPath != "") {
		return nil, errors.New("--output and --inventory can only be used with a single repository")
	}

	settings, err := it.settings.Load()
	if err != nil {
		return nil, err
	}

	rulesPath := opts.RulesPath
	if rulesPath == "" {
		rulesPath = settings.RulesPath()
	}
	ruleSet, err := loadRuleSet(it.rules, rulesPath)
	if err != nil {
		return nil, err
	}

	ecosystem := opts.Ecosystem
	if ecosystem == "" {
		ecosystem = infraRepos.DefaultEcosystem
	}
	manager, err := it.registry.Get(ecosystem)
	if err != nil {
		return nil, err
	}

	includeTransitive := settings.IncludesTransitive()
	if opts.IncludeTransitive != nil {
		includeTransitive = *opts.IncludeTransitive
	}

	if prepareErr := manager.Prepare(ctx); prepareErr != nil {
		return nil, prepareErr
	}

	summary := &ReportSummary{}
	for _, repoDir := range repoDirs {
		result, repoErr := it.processRepository(ctx, manager, repoDir, settings, ruleSet, includeTransitive, opts)
		if repoErr != nil {
			if errors.Is(repoErr, entities.ErrInvalidVersion) {
				return summary, repoErr
			}
			logger.Errorf("Failed to process %q: %v", repoDir, repoErr)
			summary.Errors++
			continue
		}
		summary.Results = append(summary.Results, *result)
	}

	logger.Infof(
		"Run complete: %d repos processed, %d errors",
		len(summary.Results), summary.Errors,
	)
	if summary.Errors > 0 {
		return summary, fmt.Errorf("%w: %d of %d", ErrRepositoriesFailed, summary.Errors, len(repoDirs))
	}
	return summary, nil
}

func (it *ReportCommand) processRepository(
	ctx context.Context,
	manager repositories.PackageRepository,
	repoDir string,
	settings *entities.Settings,
	ruleSet *entities.RuleSet,
	includeTransitive bool,
	opts ReportOptions,
) (*RepoResult, error) {
	repoRoot, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("invalid repository path %q: %w", repoDir, err)
	}
	logger.Infof("Processing repository %s", repoRoot)

	inventory, err := it.collectInventory(ctx, manager, repoRoot, includeTransitive)
	if err != nil {
		return nil, err
	}

	rows, err := entities.BuildReportRows(*inventory, ruleSet, it.clock)
	if err != nil {
		return nil, fmt.Errorf("repository %q: %w", repoRoot, err)
	}

	result, err := it.outputPaths(settings, repoRoot, opts)
	if err != nil {
		return nil, err
	}

	if writeErr := it.inventory.Write(result.InventoryPath, inventory); writeErr != nil {
		return nil, writeErr
	}
	if writeErr := it.reports.WriteReport(result.ReportPath, rows); writeErr != nil {
		return nil, writeErr
	}
	if writeErr := it.reports.WritePackages(result.PackagesPath, inventory); writeErr != nil {
		return nil, writeErr
	}

	result.Projects = len(inventory.Projects)
	result.Rows = len(rows)
	for _, project := range inventory.Projects {
		if project.Error != "" {
			result.FailedProjects++
		}
	}

	logger.Infof("Report written: %s (%d rows)", result.ReportPath, result.Rows)
	if result.FailedProjects > 0 {
		logger.Warnf("%d of %d projects could not be listed", result.FailedProjects, result.Projects)
	}
	return result, nil
}

// collectInventory lists every project of the repository. A project whose
// listing fails is kept with its error so the report still mentions it.
func (it *ReportCommand) collectInventory(
	ctx context.Context,
	manager repositories.PackageRepository,
	repoRoot string,
	includeTransitive bool,
) (*entities.RepoInventory, error) {
	projects, err := manager.DiscoverProjects(repoRoot)
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoProjects, repoRoot)
	}

	inventory := &entities.RepoInventory{
		RepoRoot:       repoRoot,
		GeneratedAtUTC: it.clock().UTC(),
		Projects:       []entities.ProjectInventory{},
	}

	for _, project := range projects {
		relative := entities.ToRepoRelativePath(repoRoot, project)
		listed, listErr := manager.ListPackages(ctx, repoRoot, project, includeTransitive)
		if listErr != nil {
			logger.Errorf("Failed to list packages of %s: %v", relative, listErr)
			inventory.Projects = append(inventory.Projects, entities.ProjectInventory{
				CsprojPath: relative,
				Error:      listErr.Error(),
				Frameworks: []entities.FrameworkInventory{},
			})
			continue
		}
		if len(listed) == 0 {
			inventory.Projects = append(inventory.Projects, entities.ProjectInventory{
				CsprojPath: relative,
				Frameworks: []entities.FrameworkInventory{},
			})
			continue
		}
		inventory.Projects = append(inventory.Projects, listed...)
	}

	inventory.ApplyGitInfo(it.gitInfo.Describe(repoRoot))
	return inventory, nil
}

func (it *ReportCommand) outputPaths(
	settings *entities.Settings,
	repoRoot string,
	opts ReportOptions,
) (*RepoResult, error) {
	outputDir, err := settings.RepoOutputDir(repoRoot)
	if err != nil {
		return nil, err
	}

	result := &RepoResult{
		RepoRoot:      repoRoot,
		ReportPath:    filepath.Join(outputDir, entities.ReportFileName),
		InventoryPath: filepath.Join(outputDir, entities.InventoryFileName),
	}
	if opts.OutputPath != "" {
		result.ReportPath = opts.OutputPath
	}
	if opts.InventoryPath != "" {
		result.InventoryPath = opts.InventoryPath
	}
	result.PackagesPath = filepath.Join(filepath.Dir(result.ReportPath), entities.PackagesFileName)
	return result, nil
}

func loadRuleSet(repository repositories.RulesRepository, path string) (*entities.RuleSet, error) {
	file, err := repository.Load(path)
	if err != nil {
		return nil, err
	}
	ruleSet, err := entities.NewRuleSet(file)
	if err != nil {
		return nil, fmt.Errorf("rules file %q: %w", path, err)
	}
	logger.Debugf("Loaded %d rules from %s", ruleSet.Len(), path)
	return ruleSet, nil
}
