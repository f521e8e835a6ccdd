package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRange is returned when an interval expression cannot be parsed.
var ErrInvalidRange = errors.New("invalid version range")

// VersionRange is a NuGet interval such as "[1.0,2.0)". A nil bound is open.
type VersionRange struct {
	Min          *Version
	Max          *Version
	MinInclusive bool
	MaxInclusive bool
}

// ParseVersionRange parses the NuGet interval notation. A bare version
// means "that version or higher".
func ParseVersionRange(value string) (VersionRange, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return VersionRange{}, fmt.Errorf("%w: empty string", ErrInvalidRange)
	}

	if trimmed[0] != '[' && trimmed[0] != '(' {
		minimum, err := ParseVersion(trimmed)
		if err != nil {
			return VersionRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
		return VersionRange{Min: &minimum, MinInclusive: true}, nil
	}

	if len(trimmed) < 3 { //nolint:mnd // two brackets and at least one character
		return VersionRange{}, fmt.Errorf("%w: %q is too short", ErrInvalidRange, value)
	}

	minInclusive := trimmed[0] == '['
	var maxInclusive bool
	switch trimmed[len(trimmed)-1] {
	case ']':
		maxInclusive = true
	case ')':
		maxInclusive = false
	default:
		return VersionRange{}, fmt.Errorf("%w: %q is not closed", ErrInvalidRange, value)
	}

	parts := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(parts) > 2 { //nolint:mnd // lower and upper bound
		return VersionRange{}, fmt.Errorf("%w: %q has more than two bounds", ErrInvalidRange, value)
	}

	lower := strings.TrimSpace(parts[0])
	upper := lower
	if len(parts) == 2 { //nolint:mnd // lower and upper bound
		upper = strings.TrimSpace(parts[1])
	} else if !minInclusive || !maxInclusive {
		return VersionRange{}, fmt.Errorf("%w: single version %q must use [ ]", ErrInvalidRange, value)
	}

	if lower == "" && upper == "" {
		return VersionRange{}, fmt.Errorf("%w: %q has no bounds", ErrInvalidRange, value)
	}

	result := VersionRange{MinInclusive: minInclusive, MaxInclusive: maxInclusive}
	if lower != "" {
		minimum, err := ParseVersion(lower)
		if err != nil {
			return VersionRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
		result.Min = &minimum
	}
	if upper != "" {
		maximum, err := ParseVersion(upper)
		if err != nil {
			return VersionRange{}, fmt.Errorf("%w: %w", ErrInvalidRange, err)
		}
		result.Max = &maximum
	}

	if result.Min != nil && result.Max != nil {
		cmp := result.Min.Compare(*result.Max)
		if cmp > 0 || (cmp == 0 && (!minInclusive || !maxInclusive)) {
			return VersionRange{}, fmt.Errorf("%w: %q is empty", ErrInvalidRange, value)
		}
	}

	return result, nil
}

// Satisfies reports whether version lies inside the interval.
func (r VersionRange) Satisfies(version Version) bool {
	if r.Min != nil {
		cmp := version.Compare(*r.Min)
		if cmp < 0 || (cmp == 0 && !r.MinInclusive) {
			return false
		}
	}
	if r.Max != nil {
		cmp := version.Compare(*r.Max)
		if cmp > 0 || (cmp == 0 && !r.MaxInclusive) {
			return false
		}
	}
	return true
}
