package entities

import "strings"

// TargetPolicy decides when a package's current version is out of
// compliance with a rule's target version.
type TargetPolicy string

const (
	PolicyHigher        TargetPolicy = "higher"
	PolicyExactOrHigher TargetPolicy = "exact_or_higher"
	PolicyExact         TargetPolicy = "exact"
	PolicyExactOrLower  TargetPolicy = "exact_or_lower"
	PolicyLower         TargetPolicy = "lower"
	PolicyNone          TargetPolicy = "none"
)

// UpgradePolicies lists the policies offered when authoring an upgrade rule.
func UpgradePolicies() []string {
	return []string{
		string(PolicyHigher),
		string(PolicyExactOrHigher),
		string(PolicyExact),
		string(PolicyExactOrLower),
		string(PolicyLower),
	}
}

// ParseTargetPolicy normalizes a policy name. The boolean is false for
// unrecognized names, which fall back to PolicyExactOrHigher.
func ParseTargetPolicy(value string) (TargetPolicy, bool) {
	normalized := TargetPolicy(strings.ToLower(strings.TrimSpace(value)))
	switch normalized {
	case PolicyHigher, PolicyExactOrHigher, PolicyExact, PolicyExactOrLower, PolicyLower, PolicyNone:
		return normalized, true
	case "":
		return PolicyExactOrHigher, true
	default:
		return PolicyExactOrHigher, false
	}
}

// NeedsAction reports whether current must change to satisfy target under
// the given policy. Both versions must parse; otherwise ErrInvalidVersion is
// returned and the caller is expected to stop.
func NeedsAction(current, target string, policy TargetPolicy) (bool, error) {
	cmp, err := CompareVersions(current, target)
	if err != nil {
		return false, err
	}

	normalized, _ := ParseTargetPolicy(string(policy))
	switch normalized {
	case PolicyHigher:
		return cmp <= 0, nil
	case PolicyExact:
		return cmp != 0, nil
	case PolicyExactOrLower:
		return cmp > 0, nil
	case PolicyLower:
		return cmp >= 0, nil
	case PolicyNone:
		return false, nil
	default:
		return cmp < 0, nil
	}
}
