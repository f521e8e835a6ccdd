package entities

import "time"

// ActionUpToDate marks the fallback row of a project without any action.
const ActionUpToDate = "up to date"

const (
	// ReportFileName is the per-repository change report.
	ReportFileName = "NugetSync.Report.tsv"
	// InventoryFileName is the per-repository package inventory.
	InventoryFileName = "NugetSync.Inventory.json"
	// PackagesFileName is the flat per-repository package listing.
	PackagesFileName = "NugetSync.Packages.tsv"
)

// ReportRow is one line of the change report.
type ReportRow struct {
	ProjectURL    string
	RepoRef       string
	CsprojPath    string
	Frameworks    string
	NugetName     string
	IsTransitive  bool
	Action        string
	TargetVersion string
	Comment       string
	DateUpdated   time.Time
}

// Clock returns the current time. It is injected so report rows can be
// reproduced in tests.
type Clock func() time.Time

// NewSystemClock returns the wall clock in local time.
func NewSystemClock() Clock {
	return time.Now
}
