//go:build unit

package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	builders "github.com/rios0rios0/nugetsync/test/domain/entitybuilders"
	doubles "github.com/rios0rios0/nugetsync/test/infrastructure/repositorydoubles"
)

func TestAddRuleCommandExecute(t *testing.T) {
	t.Parallel()

	const rulesPath = "/data/nugetsyncrules.json"
	settings := func() *doubles.StubSettingsRepository {
		return &doubles.StubSettingsRepository{Settings: &entities.Settings{DataRoot: "/data"}}
	}

	t.Run("should append an upgrade rule with notes", func(t *testing.T) {
		t.Parallel()

		// given
		rules := &doubles.InMemoryRulesRepository{}
		prompt := &doubles.ScriptedPromptRepository{Answers: []string{
			"Serilog", "upgrade", "exact_or_higher", "3.1.1",
			"yes", "[2.0,3.0)", "sinks were split",
			"yes", "*", "check the changelog",
			"no",
		}}
		cmd := commands.NewAddRuleCommand(settings(), rules, prompt)

		// when
		rule, err := cmd.Execute(commands.AddRuleOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "Serilog", rule.ID)
		assert.Equal(t, "upgrade", rule.Action)
		assert.Equal(t, "exact_or_higher", rule.TargetPolicy)
		assert.Equal(t, "3.1.1", rule.TargetVersion)
		require.Len(t, rule.Upgrades, 2)
		assert.Equal(t, "[2.0,3.0)", *rule.Upgrades[0].From)
		assert.Equal(t, "3.1.1", rule.Upgrades[0].To)
		assert.Equal(t, "check the changelog", rule.Upgrades[1].Notes)

		saved := rules.Files[rulesPath]
		require.NotNil(t, saved)
		require.Len(t, saved.Packages, 1)
		assert.Equal(t, entities.RulesSchemaVersion, saved.SchemaVersion)
	})

	t.Run("should replace an existing rule and keep its transitive override", func(t *testing.T) {
		t.Parallel()

		// given
		existing := entities.NewRulesFile()
		existing.UpsertRule(builders.NewPackageRuleBuilder().WithID("Legacy.Lib").
			WithIncludeTransitive(true).WithNote("*", "old note").BuildPackageRule())
		existing.UpsertRule(builders.NewPackageRuleBuilder().WithID("Other").BuildPackageRule())
		rules := doubles.NewInMemoryRulesRepository(rulesPath, existing)
		prompt := &doubles.ScriptedPromptRepository{Answers: []string{"legacy.lib", "remove", "no"}}
		cmd := commands.NewAddRuleCommand(settings(), rules, prompt)

		// when
		rule, err := cmd.Execute(commands.AddRuleOptions{})

		// then
		require.NoError(t, err)
		assert.Equal(t, "remove", rule.Action)
		assert.Equal(t, "none", rule.TargetPolicy)
		assert.Empty(t, rule.TargetVersion)
		assert.Empty(t, rule.Upgrades)
		require.NotNil(t, rule.IncludeTransitive)
		assert.True(t, *rule.IncludeTransitive)

		saved := rules.Files[rulesPath]
		require.Len(t, saved.Packages, 2)
		assert.Equal(t, "remove", saved.Packages[0].Action)
		assert.Equal(t, "Other", saved.Packages[1].ID)
		assert.Equal(t, []string{"Package id", "Action", "Add upgrade note?"}, prompt.Labels)
	})

	t.Run("should write to an explicit rules file", func(t *testing.T) {
		t.Parallel()

		// given
		rules := &doubles.InMemoryRulesRepository{}
		prompt := &doubles.ScriptedPromptRepository{Answers: []string{"Foo", "remove", "no"}}
		cmd := commands.NewAddRuleCommand(&doubles.StubSettingsRepository{}, rules, prompt)

		// when
		_, err := cmd.Execute(commands.AddRuleOptions{RulesPath: "rules.yaml"})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"rules.yaml"}, rules.Saved)
	})

	t.Run("should not save when the prompt is aborted", func(t *testing.T) {
		t.Parallel()

		// given
		rules := &doubles.InMemoryRulesRepository{}
		prompt := &doubles.ScriptedPromptRepository{Answers: []string{"Foo", "upgrade"}}
		cmd := commands.NewAddRuleCommand(settings(), rules, prompt)

		// when
		_, err := cmd.Execute(commands.AddRuleOptions{})

		// then
		require.ErrorIs(t, err, doubles.ErrScriptExhausted)
		assert.Empty(t, rules.Saved)
	})
}
