package entities

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	// RulesSchemaVersion is written into newly created rules files.
	RulesSchemaVersion = 1
	// DefaultRulesFileName is the rules file looked up under the data root.
	DefaultRulesFileName = "nugetsyncrules.json"
)

// ErrInvalidRules is returned when a rules file is structurally wrong.
var ErrInvalidRules = errors.New("invalid rules")

// RuleAction is what a rule asks for when it applies.
type RuleAction string

const (
	ActionUpgrade RuleAction = "upgrade"
	ActionRemove  RuleAction = "remove"
)

// RulesFile is the persisted form of the rule set.
type RulesFile struct {
	SchemaVersion            int           `json:"schemaVersion" yaml:"schemaVersion"`
	DefaultIncludeTransitive bool          `json:"defaultIncludeTransitive" yaml:"defaultIncludeTransitive"`
	Packages                 []PackageRule `json:"packages" yaml:"packages"`
}

// PackageRule is the persisted rule of one package id.
type PackageRule struct {
	ID                string        `json:"id" yaml:"id"`
	Action            string        `json:"action,omitempty" yaml:"action,omitempty"`
	TargetVersion     string        `json:"targetVersion,omitempty" yaml:"targetVersion,omitempty"`
	TargetPolicy      string        `json:"targetPolicy,omitempty" yaml:"targetPolicy,omitempty"`
	IncludeTransitive *bool         `json:"includeTransitive,omitempty" yaml:"includeTransitive,omitempty"`
	Upgrades          []UpgradeRule `json:"upgrades" yaml:"upgrades"`
}

// UpgradeRule attaches notes to the versions matched by From. A missing
// From means "*"; an explicit null From is kept as "" and matches nothing.
type UpgradeRule struct {
	From  *string `json:"from,omitempty" yaml:"from,omitempty"`
	To    string  `json:"to,omitempty" yaml:"to,omitempty"`
	Notes string  `json:"notes" yaml:"notes"`
}

// upgradeRuleFields is UpgradeRule without its decoding hooks.
type upgradeRuleFields UpgradeRule

const fromProperty = "from"

func (u *UpgradeRule) UnmarshalJSON(data []byte) error {
	var decoded upgradeRuleFields
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*u = UpgradeRule(decoded)
	if u.From != nil {
		return nil
	}

	var properties map[string]json.RawMessage
	if err := json.Unmarshal(data, &properties); err != nil {
		return err
	}
	for key, value := range properties {
		if strings.EqualFold(key, fromProperty) && strings.TrimSpace(string(value)) == "null" {
			u.From = new(string)
		}
	}
	return nil
}

func (u *UpgradeRule) UnmarshalYAML(node *yaml.Node) error {
	var decoded upgradeRuleFields
	if err := node.Decode(&decoded); err != nil {
		return err
	}
	*u = UpgradeRule(decoded)
	if u.From != nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		if key.Value == fromProperty && value.Tag == "!!null" {
			u.From = new(string)
		}
	}
	return nil
}

// NewRulesFile returns an empty rules file with the current schema version.
func NewRulesFile() *RulesFile {
	return &RulesFile{SchemaVersion: RulesSchemaVersion, Packages: []PackageRule{}}
}

// UpsertRule replaces the rule with the same id (case-insensitive) or
// appends it.
func (f *RulesFile) UpsertRule(rule PackageRule) {
	for i, existing := range f.Packages {
		if strings.EqualFold(existing.ID, rule.ID) {
			f.Packages[i] = rule
			return
		}
	}
	f.Packages = append(f.Packages, rule)
}

// FindRule returns the rule for id, if any.
func (f *RulesFile) FindRule(id string) (PackageRule, bool) {
	for _, existing := range f.Packages {
		if strings.EqualFold(existing.ID, id) {
			return existing, true
		}
	}
	return PackageRule{}, false
}

// RuleNote is an explanatory note selected by the current version.
type RuleNote struct {
	From  string
	Notes string
}

// Rule is the validated form of a PackageRule.
type Rule struct {
	ID                string
	Action            RuleAction
	TargetVersion     string
	TargetPolicy      TargetPolicy
	IncludeTransitive *bool
	Notes             []RuleNote
}

// RuleSet is the validated rule set keyed by lower-cased package id.
type RuleSet struct {
	DefaultIncludeTransitive bool
	rules                    map[string]Rule
}

// NewRuleSet validates the rules file. Later rules override earlier ones
// with the same id.
func NewRuleSet(file *RulesFile) (*RuleSet, error) {
	set := &RuleSet{rules: make(map[string]Rule)}
	if file == nil {
		return set, nil
	}

	set.DefaultIncludeTransitive = file.DefaultIncludeTransitive
	for i, pkg := range file.Packages {
		rule, err := compileRule(pkg)
		if err != nil {
			return nil, fmt.Errorf("packages[%d]: %w", i, err)
		}

		key := strings.ToLower(rule.ID)
		if _, duplicate := set.rules[key]; duplicate {
			logger.Warnf("Rule for %q is defined more than once, the last definition wins", rule.ID)
		}
		set.rules[key] = rule
	}
	return set, nil
}

// Lookup finds the rule for a package id, ignoring case.
func (s *RuleSet) Lookup(id string) (Rule, bool) {
	if s == nil {
		return Rule{}, false
	}
	rule, ok := s.rules[strings.ToLower(id)]
	return rule, ok
}

// Len returns the number of distinct rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// IncludesTransitive resolves the transitive inclusion of a rule.
func (s *RuleSet) IncludesTransitive(rule Rule) bool {
	if rule.IncludeTransitive != nil {
		return *rule.IncludeTransitive
	}
	return s.DefaultIncludeTransitive
}

func compileRule(pkg PackageRule) (Rule, error) {
	id := strings.TrimSpace(pkg.ID)
	if id == "" {
		return Rule{}, fmt.Errorf("%w: id is required", ErrInvalidRules)
	}

	action, err := parseAction(pkg.Action)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: rule %q: %w", ErrInvalidRules, id, err)
	}

	policy, known := ParseTargetPolicy(pkg.TargetPolicy)
	if !known {
		logger.Warnf("Rule %q has unknown target policy %q, using %q", id, pkg.TargetPolicy, policy)
	}

	notes := make([]RuleNote, 0, len(pkg.Upgrades))
	for _, upgrade := range pkg.Upgrades {
		from := anyVersion
		if upgrade.From != nil {
			from = *upgrade.From
		}
		notes = append(notes, RuleNote{From: from, Notes: upgrade.Notes})
	}

	return Rule{
		ID:                id,
		Action:            action,
		TargetVersion:     pkg.TargetVersion,
		TargetPolicy:      policy,
		IncludeTransitive: pkg.IncludeTransitive,
		Notes:             notes,
	}, nil
}

func parseAction(value string) (RuleAction, error) {
	switch RuleAction(strings.ToLower(strings.TrimSpace(value))) {
	case "", ActionUpgrade:
		return ActionUpgrade, nil
	case ActionRemove:
		return ActionRemove, nil
	default:
		return "", fmt.Errorf("unknown action %q (expected %q or %q)", value, ActionUpgrade, ActionRemove)
	}
}
