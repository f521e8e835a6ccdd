package repositories

import "github.com/rios0rios0/nugetsync/internal/domain/entities"

// ReportRepository writes the tabular outputs of a run.
type ReportRepository interface {
	// WriteReport writes the change report.
	WriteReport(path string, rows []entities.ReportRow) error

	// WritePackages writes the flat package listing of an inventory.
	WritePackages(path string, inventory *entities.RepoInventory) error

	// Merge concatenates every change report found below root into one file
	// and returns how many reports were merged.
	Merge(root, outputPath string) (int, error)
}
