package tsv

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	dateLayout   = "2006-01-02 15:04:05"
	dirFileMode  = 0o755
	fileFileMode = 0o644
	trueValue    = "TRUE"
	falseValue   = "FALSE"
)

//nolint:gochecknoglobals // fixed column layout
var (
	reportHeader = []string{
		"ProjectUrl", "RepoRef", "CsprojPath", "Frameworks", "NugetName",
		"IsTransitive", "Action", "TargetVersion", "Comment", "DateUpdated",
	}
	packagesHeader = []string{
		"ProjectUrl", "RepoRef", "CsprojPath", "Framework", "Package",
		"Version", "IsTransitive", "DateUpdated",
	}
	fieldCleaner = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")
)

// ErrNoReports is returned by Merge when there is nothing to merge.
var ErrNoReports = errors.New("no report files found to merge")

// ReportRepository writes tab-separated reports.
type ReportRepository struct{}

// NewReportRepository creates a new TSV report repository.
func NewReportRepository() repositories.ReportRepository {
	return &ReportRepository{}
}

// WriteReport writes the change report rows to path.
func (r *ReportRepository) WriteReport(path string, rows []entities.ReportRow) error {
	var sb strings.Builder
	writeLine(&sb, reportHeader)
	for _, row := range rows {
		writeLine(&sb, FormatReportRow(row))
	}
	return writeFile(path, sb.String())
}

// FormatReportRow renders the fields of one change report line.
func FormatReportRow(row entities.ReportRow) []string {
	return []string{
		clean(row.ProjectURL),
		clean(row.RepoRef),
		clean(row.CsprojPath),
		clean(row.Frameworks),
		clean(row.NugetName),
		formatBool(row.IsTransitive),
		clean(row.Action),
		quote(clean(row.TargetVersion)),
		clean(row.Comment),
		formatDate(row.DateUpdated),
	}
}

// WritePackages writes one line per (project, framework, package).
func (r *ReportRepository) WritePackages(path string, inventory *entities.RepoInventory) error {
	generated := formatDate(inventory.GeneratedAtUTC.Local())

	var sb strings.Builder
	writeLine(&sb, packagesHeader)
	for _, project := range inventory.Projects {
		for _, framework := range project.Frameworks {
			for _, pkg := range framework.Packages {
				writeLine(&sb, []string{
					clean(inventory.ProjectURL),
					clean(inventory.RepoRef),
					clean(project.CsprojPath),
					clean(framework.Tfm),
					clean(pkg.ID),
					clean(pkg.ResolvedVersion),
					formatBool(pkg.IsTransitive),
					generated,
				})
			}
		}
	}
	return writeFile(path, sb.String())
}

// Merge concatenates every change report below root, sorted by path
// (case-insensitive), keeping the first header only and skipping blank lines.
func (r *ReportRepository) Merge(root, outputPath string) (int, error) {
	reports, err := findReports(root, outputPath)
	if err != nil {
		return 0, err
	}
	if len(reports) == 0 {
		return 0, fmt.Errorf("%w under %s", ErrNoReports, root)
	}

	var sb strings.Builder
	headerWritten := false
	for _, report := range reports {
		lines, readErr := readLines(report)
		if readErr != nil {
			return 0, readErr
		}
		for i, line := range lines {
			if i == 0 {
				if !headerWritten {
					sb.WriteString(line + "\n")
					headerWritten = true
				}
				continue
			}
			if line == "" {
				continue
			}
			sb.WriteString(line + "\n")
		}
	}

	logger.Debugf("Merged %d reports into %s", len(reports), outputPath)
	return len(reports), writeFile(outputPath, sb.String())
}

func findReports(root, outputPath string) ([]string, error) {
	outputAbs, _ := filepath.Abs(outputPath)

	var reports []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || entry.Name() != entities.ReportFileName {
			return nil
		}
		if abs, _ := filepath.Abs(path); abs == outputAbs {
			return nil
		}
		reports = append(reports, path)
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.SliceStable(reports, func(i, j int) bool {
		return strings.ToUpper(reports[i]) < strings.ToUpper(reports[j])
	})
	return reports, nil
}

func readLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open report %q: %w", path, err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), 1<<20) //nolint:mnd // 1 MiB lines
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("failed to read report %q: %w", path, scanErr)
	}
	return lines, nil
}

func writeLine(sb *strings.Builder, fields []string) {
	sb.WriteString(strings.Join(fields, "\t"))
	sb.WriteString("\n")
}

func writeFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirFileMode); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), fileFileMode); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return nil
}

func clean(value string) string {
	return fieldCleaner.Replace(value)
}

func quote(value string) string {
	if value == "" {
		return ""
	}
	return "'" + value + "'"
}

func formatBool(value bool) string {
	if value {
		return trueValue
	}
	return falseValue
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.Format(dateLayout)
}
