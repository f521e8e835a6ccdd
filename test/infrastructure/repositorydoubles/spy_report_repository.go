//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// SpyReportRepository records every report written.
type SpyReportRepository struct {
	// --- WriteReport ---
	Reports        map[string][]entities.ReportRow
	WriteReportErr error

	// --- WritePackages ---
	Packages map[string]*entities.RepoInventory

	// --- Merge ---
	MergeCount int
	MergeErr   error
	MergeCalls []MergeCall
}

// MergeCall records a single invocation of Merge.
type MergeCall struct {
	Root       string
	OutputPath string
}

var _ repositories.ReportRepository = (*SpyReportRepository)(nil)

func (s *SpyReportRepository) WriteReport(path string, rows []entities.ReportRow) error {
	if s.WriteReportErr != nil {
		return s.WriteReportErr
	}
	if s.Reports == nil {
		s.Reports = make(map[string][]entities.ReportRow)
	}
	s.Reports[path] = rows
	return nil
}

func (s *SpyReportRepository) WritePackages(path string, inventory *entities.RepoInventory) error {
	if s.Packages == nil {
		s.Packages = make(map[string]*entities.RepoInventory)
	}
	s.Packages[path] = inventory
	return nil
}

func (s *SpyReportRepository) Merge(root, outputPath string) (int, error) {
	s.MergeCalls = append(s.MergeCalls, MergeCall{Root: root, OutputPath: outputPath})
	return s.MergeCount, s.MergeErr
}
