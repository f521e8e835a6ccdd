package repositories

import (
	"context"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// PackageRepository abstracts the package manager of an ecosystem.
// The dotnet implementation shells out to "dotnet restore" and
// "dotnet list package --format json".
type PackageRepository interface {
	// Name returns the ecosystem identifier (e.g. "dotnet").
	Name() string

	// Prepare verifies that the package manager is installed and recent
	// enough. It is called once per repository before listing.
	Prepare(ctx context.Context) error

	// DiscoverProjects returns the project files found below repoRoot.
	DiscoverProjects(repoRoot string) ([]string, error)

	// ListPackages restores the project and returns its per-framework
	// package listing. Project paths are relative to repoRoot.
	ListPackages(
		ctx context.Context,
		repoRoot, project string,
		includeTransitive bool,
	) ([]entities.ProjectInventory, error)
}
