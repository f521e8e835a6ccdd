package dotnet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	ecosystemName = "dotnet"
	dotnetBinary  = "dotnet"
	projectExt    = ".csproj"

	// "dotnet list package --format json" first shipped with SDK 7.0.200.
	minimumSDKConstraint = ">= 7.0.200"
	versionTimeout       = 30 * time.Second
)

// ErrSDKUnavailable is returned when the dotnet SDK is missing or too old.
var ErrSDKUnavailable = errors.New("dotnet SDK unavailable")

// Runner executes a program in dir and returns its standard output.
// Failures must include the standard error text.
type Runner func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

// PackageRepository implements repositories.PackageRepository on top of
// the dotnet CLI.
type PackageRepository struct {
	run Runner
}

// NewPackageRepository creates a dotnet package repository that runs the
// real dotnet binary.
func NewPackageRepository() repositories.PackageRepository {
	return NewPackageRepositoryWithRunner(execRunner)
}

// NewPackageRepositoryWithRunner creates a dotnet package repository with a
// custom process runner.
func NewPackageRepositoryWithRunner(run Runner) *PackageRepository {
	return &PackageRepository{run: run}
}

func (r *PackageRepository) Name() string { return ecosystemName }

// Prepare checks that the installed SDK supports JSON package listings.
func (r *PackageRepository) Prepare(ctx context.Context) error {
	versionCtx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	output, err := r.run(versionCtx, "", dotnetBinary, "--version")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSDKUnavailable, err)
	}

	raw := strings.TrimSpace(string(output))
	sdkVersion, err := semver.NewVersion(raw)
	if err != nil {
		logger.Warnf("[dotnet] Could not parse SDK version %q: %v (continuing)", raw, err)
		return nil
	}

	// Constraints skip pre-release versions, so check the release core.
	core, err := sdkVersion.SetPrerelease("")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSDKUnavailable, err)
	}

	constraint, err := semver.NewConstraint(minimumSDKConstraint)
	if err != nil {
		return fmt.Errorf("invalid SDK constraint: %w", err)
	}
	if !constraint.Check(&core) {
		return fmt.Errorf("%w: SDK %s does not satisfy %s", ErrSDKUnavailable, raw, minimumSDKConstraint)
	}

	logger.Debugf("[dotnet] Using SDK %s", raw)
	return nil
}

// DiscoverProjects returns every *.csproj below repoRoot, skipping build
// output folders, in lexical order.
func (r *PackageRepository) DiscoverProjects(repoRoot string) ([]string, error) {
	var projects []string
	err := filepath.WalkDir(repoRoot, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			if path != repoRoot && isSkippedDir(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), projectExt) {
			projects = append(projects, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to discover projects in %q: %w", repoRoot, err)
	}

	sort.Strings(projects)
	return projects, nil
}

// ListPackages restores the project and parses the JSON package listing.
func (r *PackageRepository) ListPackages(
	ctx context.Context,
	repoRoot, project string,
	includeTransitive bool,
) ([]entities.ProjectInventory, error) {
	logger.Infof("[dotnet] Restoring %s", entities.ToRepoRelativePath(repoRoot, project))
	if _, err := r.run(ctx, repoRoot, dotnetBinary, "restore", project); err != nil {
		return nil, fmt.Errorf("dotnet restore %q failed: %w", project, err)
	}

	args := []string{"list", project, "package", "--format", "json"}
	if includeTransitive {
		args = append(args, "--include-transitive")
	}

	output, err := r.run(ctx, repoRoot, dotnetBinary, args...)
	if err != nil {
		return nil, fmt.Errorf("dotnet %s failed: %w", strings.Join(args, " "), err)
	}

	return ParseListOutput(output, repoRoot)
}

func isSkippedDir(name string) bool {
	switch strings.ToLower(name) {
	case "bin", "obj", ".git":
		return true
	default:
		return false
	}
}

func execRunner(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(stderr.String()+"\n"+stdout.String()))
	}
	return stdout.Bytes(), nil
}
