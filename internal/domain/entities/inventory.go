package entities

import "time"

// RepoInventory is the package listing of one repository together with its
// version-control metadata.
type RepoInventory struct {
	RepoRoot       string             `json:"RepoRoot"`
	ProjectURL     string             `json:"ProjectUrl"`
	RepoRef        string             `json:"RepoRef"`
	BranchName     string             `json:"BranchName"`
	CommitSHA      string             `json:"CommitSha"`
	GeneratedAtUTC time.Time          `json:"GeneratedAtUtc"`
	Projects       []ProjectInventory `json:"Projects"`
}

// ProjectInventory is one buildable project (a .csproj). Error is set when
// listing its packages failed and the project was kept as a placeholder.
type ProjectInventory struct {
	CsprojPath string               `json:"CsprojPath"`
	Error      string               `json:"Error,omitempty"`
	Frameworks []FrameworkInventory `json:"Frameworks"`
}

// FrameworkInventory lists the packages resolved for one target framework.
type FrameworkInventory struct {
	Tfm      string             `json:"Tfm"`
	Packages []PackageInventory `json:"Packages"`
}

// PackageInventory is a single package occurrence under a framework.
type PackageInventory struct {
	ID               string `json:"Id"`
	RequestedVersion string `json:"RequestedVersion,omitempty"`
	ResolvedVersion  string `json:"ResolvedVersion,omitempty"`
	IsTransitive     bool   `json:"IsTransitive"`
}

// GitInfo is the version-control metadata copied into every report row.
type GitInfo struct {
	ProjectURL string
	RepoRef    string
	Branch     string
	CommitSHA  string
}

// ApplyGitInfo copies the git metadata into the inventory.
func (i *RepoInventory) ApplyGitInfo(info GitInfo) {
	i.ProjectURL = info.ProjectURL
	i.RepoRef = info.RepoRef
	i.BranchName = info.Branch
	i.CommitSHA = info.CommitSHA
}

// FrameworkNames returns every framework moniker declared by the project,
// including frameworks without packages.
func (p ProjectInventory) FrameworkNames() []string {
	names := make([]string, 0, len(p.Frameworks))
	for _, framework := range p.Frameworks {
		names = append(names, framework.Tfm)
	}
	return names
}
