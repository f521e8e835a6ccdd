//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// ProjectInventoryBuilder helps create test project inventories with a
// fluent interface. Packages are added to the most recent framework.
type ProjectInventoryBuilder struct {
	*testkit.BaseBuilder
	csprojPath string
	projectErr string
	frameworks []entities.FrameworkInventory
}

// NewProjectInventoryBuilder creates a new project inventory builder with sensible defaults.
func NewProjectInventoryBuilder() *ProjectInventoryBuilder {
	return &ProjectInventoryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		csprojPath:  "src/App/App.csproj",
	}
}

// WithPath sets the project path.
func (b *ProjectInventoryBuilder) WithPath(path string) *ProjectInventoryBuilder {
	b.csprojPath = path
	return b
}

// WithError marks the project as degraded.
func (b *ProjectInventoryBuilder) WithError(message string) *ProjectInventoryBuilder {
	b.projectErr = message
	return b
}

// WithFramework starts a new target framework.
func (b *ProjectInventoryBuilder) WithFramework(tfm string) *ProjectInventoryBuilder {
	b.frameworks = append(b.frameworks, entities.FrameworkInventory{Tfm: tfm})
	return b
}

// WithPackage adds a direct package to the current framework.
func (b *ProjectInventoryBuilder) WithPackage(id, version string) *ProjectInventoryBuilder {
	return b.addPackage(id, version, false)
}

// WithTransitivePackage adds a transitive package to the current framework.
func (b *ProjectInventoryBuilder) WithTransitivePackage(id, version string) *ProjectInventoryBuilder {
	return b.addPackage(id, version, true)
}

func (b *ProjectInventoryBuilder) addPackage(id, version string, transitive bool) *ProjectInventoryBuilder {
	if len(b.frameworks) == 0 {
		b.WithFramework("net8.0")
	}
	last := &b.frameworks[len(b.frameworks)-1]
	last.Packages = append(last.Packages, entities.PackageInventory{
		ID:               id,
		RequestedVersion: version,
		ResolvedVersion:  version,
		IsTransitive:     transitive,
	})
	return b
}

// Build creates the project inventory (satisfies testkit.Builder interface).
func (b *ProjectInventoryBuilder) Build() interface{} {
	return b.BuildProjectInventory()
}

// BuildProjectInventory creates the project inventory with a concrete return type.
func (b *ProjectInventoryBuilder) BuildProjectInventory() entities.ProjectInventory {
	return entities.ProjectInventory{
		CsprojPath: b.csprojPath,
		Error:      b.projectErr,
		Frameworks: cloneFrameworks(b.frameworks),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ProjectInventoryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.csprojPath = "src/App/App.csproj"
	b.projectErr = ""
	b.frameworks = nil
	return b
}

// Clone creates a deep copy of the ProjectInventoryBuilder.
func (b *ProjectInventoryBuilder) Clone() testkit.Builder {
	return &ProjectInventoryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		csprojPath:  b.csprojPath,
		projectErr:  b.projectErr,
		frameworks:  cloneFrameworks(b.frameworks),
	}
}

func cloneFrameworks(frameworks []entities.FrameworkInventory) []entities.FrameworkInventory {
	cloned := make([]entities.FrameworkInventory, 0, len(frameworks))
	for _, framework := range frameworks {
		packages := make([]entities.PackageInventory, len(framework.Packages))
		copy(packages, framework.Packages)
		cloned = append(cloned, entities.FrameworkInventory{Tfm: framework.Tfm, Packages: packages})
	}
	return cloned
}
