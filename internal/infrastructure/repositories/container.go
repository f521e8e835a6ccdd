package repositories

import (
	"go.uber.org/dig"

	dotnetRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/dotnet"
	gitRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/gitinfo"
	invRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/inventory"
	promptRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/prompt"
	rulesRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/rules"
	settingsRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/settings"
	tsvRepo "github.com/rios0rios0/nugetsync/internal/infrastructure/repositories/tsv"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register package registry with all package manager implementations
	if err := container.Provide(func() *PackageRegistry {
		reg := NewPackageRegistry()
		reg.Register(dotnetRepo.NewPackageRepository())
		return reg
	}); err != nil {
		return err
	}

	providers := []interface{}{
		gitRepo.NewGitInfoRepository,
		invRepo.NewJSONInventoryRepository,
		promptRepo.NewHuhPromptRepository,
		rulesRepo.NewFileRulesRepository,
		settingsRepo.NewYAMLSettingsRepository,
		tsvRepo.NewReportRepository,
	}
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return err
		}
	}

	return nil
}
