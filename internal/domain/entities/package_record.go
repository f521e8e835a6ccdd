package entities

import (
	"sort"
	"strings"
)

// PackageRecord is one package of a project after its per-framework
// occurrences have been merged.
type PackageRecord struct {
	ID              string
	ResolvedVersion string
	IsTransitive    bool
	Frameworks      []string // case-insensitive set, first spelling kept
}

// PackageAggregate is the accumulator of the aggregation fold. The zero
// value is an empty aggregate.
type PackageAggregate struct {
	order   []string
	records map[string]PackageRecord
}

// AggregatePackages folds every package occurrence of the project into one
// record per package id, in first-seen order.
func AggregatePackages(project ProjectInventory) []PackageRecord {
	var aggregate PackageAggregate
	for _, framework := range project.Frameworks {
		for _, pkg := range framework.Packages {
			aggregate = aggregate.Fold(framework.Tfm, pkg)
		}
	}
	return aggregate.Records()
}

// Fold merges one occurrence and returns the new aggregate. Records already
// held are replaced, not modified, so earlier aggregates stay intact.
func (a PackageAggregate) Fold(tfm string, pkg PackageInventory) PackageAggregate {
	key := strings.ToLower(pkg.ID)

	next := PackageAggregate{
		order:   a.order,
		records: make(map[string]PackageRecord, len(a.records)+1),
	}
	for k, v := range a.records {
		next.records[k] = v
	}

	existing, found := a.records[key]
	if !found {
		next.order = append(append(make([]string, 0, len(a.order)+1), a.order...), key)
		existing = PackageRecord{ID: pkg.ID, IsTransitive: true}
	}

	next.records[key] = PackageRecord{
		ID:              existing.ID,
		ResolvedVersion: higherVersion(existing.ResolvedVersion, pkg.ResolvedVersion),
		IsTransitive:    existing.IsTransitive && pkg.IsTransitive,
		Frameworks:      addFramework(existing.Frameworks, tfm),
	}
	return next
}

// Records returns the aggregated records in first-seen order.
func (a PackageAggregate) Records() []PackageRecord {
	records := make([]PackageRecord, 0, len(a.order))
	for _, key := range a.order {
		records = append(records, a.records[key])
	}
	return records
}

// Len returns the number of distinct package ids folded so far.
func (a PackageAggregate) Len() int {
	return len(a.order)
}

// higherVersion keeps held unless candidate is known to be strictly higher.
// A blank held value is replaced by any non-blank candidate.
func higherVersion(held, candidate string) string {
	if strings.TrimSpace(candidate) == "" {
		return held
	}
	if strings.TrimSpace(held) == "" {
		return candidate
	}
	cmp, err := CompareVersions(candidate, held)
	if err != nil || cmp <= 0 {
		return held
	}
	return candidate
}

func addFramework(frameworks []string, tfm string) []string {
	for _, existing := range frameworks {
		if strings.EqualFold(existing, tfm) {
			return frameworks
		}
	}
	return append(append(make([]string, 0, len(frameworks)+1), frameworks...), tfm)
}

// FormatFrameworks deduplicates names case-insensitively, sorts them
// case-insensitively and joins them with commas.
func FormatFrameworks(names []string) string {
	var unique []string
	for _, name := range names {
		unique = addFramework(unique, name)
	}
	sort.SliceStable(unique, func(i, j int) bool {
		return strings.ToUpper(unique[i]) < strings.ToUpper(unique[j])
	})
	return strings.Join(unique, ",")
}
