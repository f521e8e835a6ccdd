package repositories

import (
	"fmt"
	"sort"

	domainRepos "github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// DefaultEcosystem is the package manager used when none is requested.
const DefaultEcosystem = "dotnet"

// PackageRegistry manages all registered package manager implementations.
type PackageRegistry struct {
	managers map[string]domainRepos.PackageRepository
}

// NewPackageRegistry creates an empty package registry.
func NewPackageRegistry() *PackageRegistry {
	return &PackageRegistry{
		managers: make(map[string]domainRepos.PackageRepository),
	}
}

// Register adds a package manager under its name.
func (r *PackageRegistry) Register(p domainRepos.PackageRepository) {
	r.managers[p.Name()] = p
}

// Get returns the package manager with the given name.
func (r *PackageRegistry) Get(name string) (domainRepos.PackageRepository, error) {
	manager, ok := r.managers[name]
	if !ok {
		return nil, fmt.Errorf("unsupported ecosystem %q (available: %v)", name, r.Names())
	}
	return manager, nil
}

// Names returns the registered ecosystem names in lexical order.
func (r *PackageRegistry) Names() []string {
	names := make([]string, 0, len(r.managers))
	for name := range r.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
