package dotnet

import (
	"encoding/json"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// listOutput mirrors the document printed by "dotnet list package --format json".
type listOutput struct {
	Problems []listProblem `json:"problems"`
	Projects []listProject `json:"projects"`
}

type listProblem struct {
	Project string `json:"project"`
	Level   string `json:"level"`
	Text    string `json:"text"`
}

type listProject struct {
	Path       *string         `json:"path"`
	Frameworks []listFramework `json:"frameworks"`
}

type listFramework struct {
	Framework          string        `json:"framework"`
	TopLevelPackages   []listPackage `json:"topLevelPackages"`
	TransitivePackages []listPackage `json:"transitivePackages"`
}

type listPackage struct {
	ID               string `json:"id"`
	RequestedVersion string `json:"requestedVersion"`
	ResolvedVersion  string `json:"resolvedVersion"`
}

// ParseListOutput converts the JSON package listing into project
// inventories with repo-relative paths. Projects without a path are skipped.
func ParseListOutput(data []byte, repoRoot string) ([]entities.ProjectInventory, error) {
	var doc listOutput
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse dotnet list output: %w", err)
	}

	for _, problem := range doc.Problems {
		logger.Warnf("[dotnet] %s: %s (%s)", problem.Project, strings.TrimSpace(problem.Text), problem.Level)
	}

	projects := make([]entities.ProjectInventory, 0, len(doc.Projects))
	for _, project := range doc.Projects {
		if project.Path == nil {
			continue
		}

		inventory := entities.ProjectInventory{
			CsprojPath: entities.ToRepoRelativePath(repoRoot, *project.Path),
			Frameworks: make([]entities.FrameworkInventory, 0, len(project.Frameworks)),
		}
		for _, framework := range project.Frameworks {
			inventory.Frameworks = append(inventory.Frameworks, toFramework(framework))
		}
		projects = append(projects, inventory)
	}
	return projects, nil
}

func toFramework(framework listFramework) entities.FrameworkInventory {
	packages := make([]entities.PackageInventory, 0, len(framework.TopLevelPackages)+len(framework.TransitivePackages))
	for _, pkg := range framework.TopLevelPackages {
		packages = append(packages, toPackage(pkg, false))
	}
	for _, pkg := range framework.TransitivePackages {
		packages = append(packages, toPackage(pkg, true))
	}
	return entities.FrameworkInventory{Tfm: framework.Framework, Packages: packages}
}

func toPackage(pkg listPackage, transitive bool) entities.PackageInventory {
	return entities.PackageInventory{
		ID:               pkg.ID,
		RequestedVersion: pkg.RequestedVersion,
		ResolvedVersion:  pkg.ResolvedVersion,
		IsTransitive:     transitive,
	}
}
