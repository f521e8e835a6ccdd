//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// SpyPackageRepository implements repositories.PackageRepository as a configurable spy.
type SpyPackageRepository struct {
	// --- identity ---
	ManagerName string

	// --- Prepare ---
	PrepareErr   error
	PrepareCalls int

	// --- DiscoverProjects ---
	Projects    []string
	DiscoverErr error

	// --- ListPackages ---
	// Listings and ListErrs are keyed by the project path passed in.
	Listings  map[string][]entities.ProjectInventory
	ListErrs  map[string]error
	ListCalls []ListPackagesCall
}

// ListPackagesCall records a single invocation of ListPackages.
type ListPackagesCall struct {
	RepoRoot          string
	Project           string
	IncludeTransitive bool
}

var _ repositories.PackageRepository = (*SpyPackageRepository)(nil)

func (s *SpyPackageRepository) Name() string {
	if s.ManagerName == "" {
		return "dotnet"
	}
	return s.ManagerName
}

func (s *SpyPackageRepository) Prepare(_ context.Context) error {
	s.PrepareCalls++
	return s.PrepareErr
}

func (s *SpyPackageRepository) DiscoverProjects(_ string) ([]string, error) {
	return s.Projects, s.DiscoverErr
}

func (s *SpyPackageRepository) ListPackages(
	_ context.Context,
	repoRoot, project string,
	includeTransitive bool,
) ([]entities.ProjectInventory, error) {
	s.ListCalls = append(s.ListCalls, ListPackagesCall{
		RepoRoot:          repoRoot,
		Project:           project,
		IncludeTransitive: includeTransitive,
	})
	if err := s.ListErrs[project]; err != nil {
		return nil, err
	}
	return s.Listings[project], nil
}
