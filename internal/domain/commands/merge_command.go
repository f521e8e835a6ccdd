package commands

import (
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// MegaReportFileName is the default name of the merged report.
const MegaReportFileName = "NugetSync.MegaReport.tsv"

// Merge is the interface for the merge command.
type Merge interface {
	Execute(opts MergeOptions) (string, int, error)
}

// MergeOptions holds runtime options for merging reports.
type MergeOptions struct {
	OutputPath string // defaults to the mega report under the data root
}

// MergeCommand concatenates every per-repository report under the outputs
// root into one mega report.
type MergeCommand struct {
	settings repositories.SettingsRepository
	reports  repositories.ReportRepository
}

// NewMergeCommand creates a new MergeCommand.
func NewMergeCommand(
	settings repositories.SettingsRepository,
	reports repositories.ReportRepository,
) *MergeCommand {
	return &MergeCommand{settings: settings, reports: reports}
}

// Execute returns the merged report path and how many reports it contains.
func (it *MergeCommand) Execute(opts MergeOptions) (string, int, error) {
	settings, err := it.settings.Load()
	if err != nil {
		return "", 0, err
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = filepath.Join(settings.DataRoot, MegaReportFileName)
	}

	count, err := it.reports.Merge(settings.OutputsRoot(), outputPath)
	if err != nil {
		return "", 0, err
	}

	logger.Infof("Merged %d reports into %s", count, outputPath)
	return outputPath, count, nil
}
