package entities

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	anyVersion        = "*"
	wildcardPadLength = 3
)

var errNoNumericPrefix = errors.New("wildcard has no numeric prefix")

// selectorMatcher is one variant of the "from" selector grammar. The first
// matcher that claims a selector decides the outcome; a parse error counts
// as no match.
type selectorMatcher struct {
	claims func(selector string) bool
	match  func(selector, current string) (bool, error)
}

//nolint:gochecknoglobals // fixed precedence table
var selectorMatchers = []selectorMatcher{
	{
		claims: func(selector string) bool { return strings.TrimSpace(selector) == anyVersion },
		match:  func(string, string) (bool, error) { return true, nil },
	},
	{
		claims: func(selector string) bool { return strings.ContainsAny(selector, "[(,") },
		match:  matchRange,
	},
	{
		claims: func(selector string) bool { return strings.Contains(selector, anyVersion) },
		match:  matchWildcard,
	},
	{
		claims: func(string) bool { return true },
		match:  matchExact,
	},
}

// MatchesSelector reports whether current is selected by a rule note's
// "from" expression: "*", an interval like "[1.0,2.0)", a wildcard like
// "1.2.*" or an exact version. Malformed selectors never match.
func MatchesSelector(selector, current string) bool {
	if strings.TrimSpace(selector) == "" {
		return false
	}

	for _, matcher := range selectorMatchers {
		if !matcher.claims(selector) {
			continue
		}
		matched, err := matcher.match(selector, current)
		if err != nil {
			return false
		}
		return matched
	}
	return false
}

// SelectNote returns the notes of the first entry whose selector matches
// current, or "" when current is blank or nothing matches.
func SelectNote(notes []RuleNote, current string) string {
	if strings.TrimSpace(current) == "" {
		return ""
	}
	for _, note := range notes {
		if MatchesSelector(note.From, current) {
			return note.Notes
		}
	}
	return ""
}

func matchRange(selector, current string) (bool, error) {
	versionRange, err := ParseVersionRange(selector)
	if err != nil {
		return false, err
	}
	version, err := ParseVersion(current)
	if err != nil {
		return false, err
	}
	return versionRange.Satisfies(version), nil
}

func matchWildcard(selector, current string) (bool, error) {
	var prefix []int
	for _, part := range strings.Split(selector, ".") {
		if part == "" {
			continue
		}
		if part == anyVersion {
			break
		}
		number, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return false, fmt.Errorf("wildcard segment %q: %w", part, err)
		}
		prefix = append(prefix, number)
	}

	if len(prefix) == 0 {
		return false, errNoNumericPrefix
	}

	upper := make([]int, len(prefix))
	copy(upper, prefix)
	upper[len(upper)-1]++

	lowerVersion, err := ParseVersion(joinPadded(prefix))
	if err != nil {
		return false, err
	}
	upperVersion, err := ParseVersion(joinPadded(upper))
	if err != nil {
		return false, err
	}
	version, err := ParseVersion(current)
	if err != nil {
		return false, err
	}

	return version.Compare(lowerVersion) >= 0 && version.Compare(upperVersion) < 0, nil
}

func matchExact(selector, current string) (bool, error) {
	expected, expectedErr := ParseVersion(selector)
	actual, actualErr := ParseVersion(current)
	if expectedErr == nil && actualErr == nil {
		return expected.Equal(actual), nil
	}
	return strings.EqualFold(selector, current), nil
}

// joinPadded renders segments as a dotted version padded with zeros.
func joinPadded(segments []int) string {
	parts := make([]string, 0, max(len(segments), wildcardPadLength))
	for _, segment := range segments {
		parts = append(parts, strconv.Itoa(segment))
	}
	for len(parts) < wildcardPadLength {
		parts = append(parts, "0")
	}
	return strings.Join(parts, ".")
}
