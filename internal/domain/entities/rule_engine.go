package entities

import (
	"fmt"
	"strings"
)

// ResolvedPackage is an aggregated package paired with the rule that
// applies to it.
type ResolvedPackage struct {
	Package PackageRecord
	Rule    Rule
}

// ResolveRules pairs each record with its rule. Records without a rule, and
// transitive records whose rule does not include transitive packages, are
// dropped.
func ResolveRules(records []PackageRecord, rules *RuleSet) []ResolvedPackage {
	resolved := make([]ResolvedPackage, 0, len(records))
	for _, record := range records {
		rule, ok := rules.Lookup(record.ID)
		if !ok {
			continue
		}
		if record.IsTransitive && !rules.IncludesTransitive(rule) {
			continue
		}
		resolved = append(resolved, ResolvedPackage{Package: record, Rule: rule})
	}
	return resolved
}

// Decide returns the action required for a resolved package, or ok=false
// when nothing has to change. An unparsable current or target version is
// reported as ErrInvalidVersion.
func Decide(resolved ResolvedPackage) (action RuleAction, ok bool, err error) {
	rule := resolved.Rule
	current := resolved.Package.ResolvedVersion

	if rule.Action == ActionRemove {
		return ActionRemove, true, nil
	}

	if strings.TrimSpace(rule.TargetVersion) == "" || strings.TrimSpace(current) == "" {
		return "", false, nil
	}

	needed, err := NeedsAction(current, rule.TargetVersion, rule.TargetPolicy)
	if err != nil {
		return "", false, fmt.Errorf("package %q against rule target %q: %w", resolved.Package.ID, rule.TargetVersion, err)
	}
	if !needed {
		return "", false, nil
	}
	return ActionUpgrade, true, nil
}

// BuildReportRows runs the decision engine over every project of the
// inventory. Projects without any action produce a single "up to date" row.
// The first invalid version aborts the build.
func BuildReportRows(inventory RepoInventory, rules *RuleSet, clock Clock) ([]ReportRow, error) {
	if clock == nil {
		clock = NewSystemClock()
	}

	var rows []ReportRow
	for _, project := range inventory.Projects {
		projectRows, err := buildProjectRows(inventory, project, rules, clock)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", project.CsprojPath, err)
		}
		rows = append(rows, projectRows...)
	}
	return rows, nil
}

func buildProjectRows(
	inventory RepoInventory,
	project ProjectInventory,
	rules *RuleSet,
	clock Clock,
) ([]ReportRow, error) {
	var rows []ReportRow
	for _, resolved := range ResolveRules(AggregatePackages(project), rules) {
		action, ok, err := Decide(resolved)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		target := ""
		if action == ActionUpgrade {
			target = resolved.Rule.TargetVersion
		}

		rows = append(rows, ReportRow{
			ProjectURL:    inventory.ProjectURL,
			RepoRef:       inventory.RepoRef,
			CsprojPath:    project.CsprojPath,
			Frameworks:    FormatFrameworks(resolved.Package.Frameworks),
			NugetName:     resolved.Package.ID,
			IsTransitive:  resolved.Package.IsTransitive,
			Action:        string(action),
			TargetVersion: target,
			Comment:       SelectNote(resolved.Rule.Notes, resolved.Package.ResolvedVersion),
			DateUpdated:   clock(),
		})
	}

	if len(rows) == 0 {
		rows = append(rows, ReportRow{
			ProjectURL:  inventory.ProjectURL,
			RepoRef:     inventory.RepoRef,
			CsprojPath:  project.CsprojPath,
			Frameworks:  FormatFrameworks(project.FrameworkNames()),
			Action:      ActionUpToDate,
			DateUpdated: clock(),
		})
	}
	return rows, nil
}
