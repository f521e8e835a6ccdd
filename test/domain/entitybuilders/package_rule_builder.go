//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageRuleBuilder helps create test package rules with a fluent interface.
type PackageRuleBuilder struct {
	*testkit.BaseBuilder
	id                string
	action            string
	targetVersion     string
	targetPolicy      string
	includeTransitive *bool
	upgrades          []entities.UpgradeRule
}

// NewPackageRuleBuilder creates a new package rule builder with sensible defaults.
func NewPackageRuleBuilder() *PackageRuleBuilder {
	return &PackageRuleBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		id:            "Newtonsoft.Json",
		action:        "upgrade",
		targetVersion: "13.0.3",
		targetPolicy:  "exact_or_higher",
	}
}

// WithID sets the package id.
func (b *PackageRuleBuilder) WithID(id string) *PackageRuleBuilder {
	b.id = id
	return b
}

// WithAction sets the rule action.
func (b *PackageRuleBuilder) WithAction(action string) *PackageRuleBuilder {
	b.action = action
	return b
}

// WithTarget sets the target version and policy.
func (b *PackageRuleBuilder) WithTarget(version, policy string) *PackageRuleBuilder {
	b.targetVersion = version
	b.targetPolicy = policy
	return b
}

// AsRemoval turns the rule into a remove rule without a target.
func (b *PackageRuleBuilder) AsRemoval() *PackageRuleBuilder {
	b.action = "remove"
	b.targetVersion = ""
	b.targetPolicy = "none"
	return b
}

// WithIncludeTransitive overrides the rules file default.
func (b *PackageRuleBuilder) WithIncludeTransitive(include bool) *PackageRuleBuilder {
	b.includeTransitive = &include
	return b
}

// WithNote appends an upgrade note for the given selector.
func (b *PackageRuleBuilder) WithNote(from, notes string) *PackageRuleBuilder {
	b.upgrades = append(b.upgrades, entities.UpgradeRule{From: &from, To: b.targetVersion, Notes: notes})
	return b
}

// Build creates the package rule (satisfies testkit.Builder interface).
func (b *PackageRuleBuilder) Build() interface{} {
	return b.BuildPackageRule()
}

// BuildPackageRule creates the package rule with a concrete return type.
func (b *PackageRuleBuilder) BuildPackageRule() entities.PackageRule {
	upgrades := make([]entities.UpgradeRule, len(b.upgrades))
	copy(upgrades, b.upgrades)
	return entities.PackageRule{
		ID:                b.id,
		Action:            b.action,
		TargetVersion:     b.targetVersion,
		TargetPolicy:      b.targetPolicy,
		IncludeTransitive: b.includeTransitive,
		Upgrades:          upgrades,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageRuleBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.id = "Newtonsoft.Json"
	b.action = "upgrade"
	b.targetVersion = "13.0.3"
	b.targetPolicy = "exact_or_higher"
	b.includeTransitive = nil
	b.upgrades = nil
	return b
}

// Clone creates a deep copy of the PackageRuleBuilder.
func (b *PackageRuleBuilder) Clone() testkit.Builder {
	upgrades := make([]entities.UpgradeRule, len(b.upgrades))
	copy(upgrades, b.upgrades)
	return &PackageRuleBuilder{
		BaseBuilder:       b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		id:                b.id,
		action:            b.action,
		targetVersion:     b.targetVersion,
		targetPolicy:      b.targetPolicy,
		includeTransitive: b.includeTransitive,
		upgrades:          upgrades,
	}
}
