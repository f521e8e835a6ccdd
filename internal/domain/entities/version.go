package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

const maxVersionSegments = 4

// ErrInvalidVersion is returned when a version string cannot be parsed.
var ErrInvalidVersion = errors.New("invalid version")

// Version is a NuGet package version: up to four numeric release segments,
// an optional pre-release label and optional build metadata.
type Version struct {
	Major    int
	Minor    int
	Patch    int
	Revision int
	Release  string // pre-release labels without the leading '-'
	Metadata string // build metadata without the leading '+'
}

// ParseVersion parses a NuGet version string such as "1.2", "1.2.3.4" or
// "2.0.0-beta.1+build.5".
func ParseVersion(value string) (Version, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Version{}, fmt.Errorf("%w: empty string", ErrInvalidVersion)
	}

	core, metadata, hasMetadata := strings.Cut(trimmed, "+")
	if hasMetadata && !validLabels(metadata) {
		return Version{}, fmt.Errorf("%w: %q has malformed build metadata", ErrInvalidVersion, value)
	}

	numbers, release, hasRelease := strings.Cut(core, "-")
	if hasRelease && !validLabels(release) {
		return Version{}, fmt.Errorf("%w: %q has a malformed pre-release label", ErrInvalidVersion, value)
	}

	segments := strings.Split(numbers, ".")
	if len(segments) > maxVersionSegments {
		return Version{}, fmt.Errorf("%w: %q has more than %d segments", ErrInvalidVersion, value, maxVersionSegments)
	}

	parsed := make([]int, maxVersionSegments)
	for i, segment := range segments {
		number, err := parseSegment(segment)
		if err != nil {
			return Version{}, fmt.Errorf("%w: %q: %w", ErrInvalidVersion, value, err)
		}
		parsed[i] = number
	}

	return Version{
		Major:    parsed[0],
		Minor:    parsed[1],
		Patch:    parsed[2],
		Revision: parsed[3],
		Release:  release,
		Metadata: metadata,
	}, nil
}

// MustParseVersion is like ParseVersion but panics on malformed input.
// It is meant for constants and tests.
func MustParseVersion(value string) Version {
	version, err := ParseVersion(value)
	if err != nil {
		panic(err)
	}
	return version
}

// CompareVersions parses both strings and compares them. A parse failure on
// either side is reported as ErrInvalidVersion.
func CompareVersions(a, b string) (int, error) {
	left, err := ParseVersion(a)
	if err != nil {
		return 0, err
	}
	right, err := ParseVersion(b)
	if err != nil {
		return 0, err
	}
	return left.Compare(right), nil
}

// IsPrerelease reports whether the version carries a pre-release label.
func (v Version) IsPrerelease() bool {
	return v.Release != ""
}

// Compare returns -1, 0 or +1. Build metadata does not take part in precedence.
func (v Version) Compare(other Version) int {
	for _, pair := range [][2]int{
		{v.Major, other.Major},
		{v.Minor, other.Minor},
		{v.Patch, other.Patch},
		{v.Revision, other.Revision},
	} {
		if pair[0] != pair[1] {
			if pair[0] < pair[1] {
				return -1
			}
			return 1
		}
	}

	switch {
	case v.Release == "" && other.Release == "":
		return 0
	case v.Release == "":
		return 1
	case other.Release == "":
		return -1
	}

	// x/mod/semver implements SemVer 2 label precedence; NuGet compares
	// labels case-insensitively and ignores leading zeros on numeric labels.
	return semver.Compare(
		"v0.0.0-"+normalizeRelease(v.Release),
		"v0.0.0-"+normalizeRelease(other.Release),
	)
}

// Equal reports whether both versions have the same precedence.
func (v Version) Equal(other Version) bool {
	return v.Compare(other) == 0
}

// String returns the normalized form, e.g. "1.2.3" or "1.2.3.4-beta+sha".
func (v Version) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch))
	if v.Revision > 0 {
		sb.WriteString(fmt.Sprintf(".%d", v.Revision))
	}
	if v.Release != "" {
		sb.WriteString("-" + v.Release)
	}
	if v.Metadata != "" {
		sb.WriteString("+" + v.Metadata)
	}
	return sb.String()
}

func parseSegment(segment string) (int, error) {
	if segment == "" {
		return 0, errors.New("empty segment")
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("segment %q is not numeric", segment)
		}
	}
	number, err := strconv.Atoi(segment)
	if err != nil {
		return 0, fmt.Errorf("segment %q: %w", segment, err)
	}
	return number, nil
}

// validLabels checks dot-separated labels made of [0-9A-Za-z-].
func validLabels(value string) bool {
	if value == "" {
		return false
	}
	for _, label := range strings.Split(value, ".") {
		if label == "" {
			return false
		}
		for _, r := range label {
			isDigit := r >= '0' && r <= '9'
			isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
			if !isDigit && !isLetter && r != '-' {
				return false
			}
		}
	}
	return true
}

func normalizeRelease(release string) string {
	labels := strings.Split(strings.ToLower(release), ".")
	for i, label := range labels {
		if isNumeric(label) {
			trimmed := strings.TrimLeft(label, "0")
			if trimmed == "" {
				trimmed = "0"
			}
			labels[i] = trimmed
		}
	}
	return strings.Join(labels, ".")
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
