package commands

import (
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	answerYes = "yes"
	answerNo  = "no"
)

// AddRule is the interface for the rules add command.
type AddRule interface {
	Execute(opts AddRuleOptions) (*entities.PackageRule, error)
}

// AddRuleOptions holds runtime options for the rule wizard.
type AddRuleOptions struct {
	RulesPath string // defaults to the rules file from settings
}

// AddRuleCommand asks for one package rule and stores it in the rules file,
// replacing an existing rule with the same id.
type AddRuleCommand struct {
	settings repositories.SettingsRepository
	rules    repositories.RulesRepository
	prompt   repositories.PromptRepository
}

// NewAddRuleCommand creates a new AddRuleCommand.
func NewAddRuleCommand(
	settings repositories.SettingsRepository,
	rules repositories.RulesRepository,
	prompt repositories.PromptRepository,
) *AddRuleCommand {
	return &AddRuleCommand{settings: settings, rules: rules, prompt: prompt}
}

// Execute runs the wizard and saves the rules file.
func (it *AddRuleCommand) Execute(opts AddRuleOptions) (*entities.PackageRule, error) {
	rulesPath := opts.RulesPath
	if rulesPath == "" {
		settings, err := it.settings.Load()
		if err != nil {
			return nil, err
		}
		rulesPath = settings.RulesPath()
	}

	file, err := it.rules.LoadOrCreate(rulesPath)
	if err != nil {
		return nil, err
	}

	rule, err := it.askRule(file)
	if err != nil {
		return nil, err
	}

	file.UpsertRule(*rule)
	if saveErr := it.rules.Save(rulesPath, file); saveErr != nil {
		return nil, saveErr
	}

	logger.Infof("Rules saved to %s", rulesPath)
	return rule, nil
}

func (it *AddRuleCommand) askRule(file *entities.RulesFile) (*entities.PackageRule, error) {
	id, err := it.prompt.Input("Package id")
	if err != nil {
		return nil, err
	}
	action, err := it.prompt.Choice("Action", []string{string(entities.ActionUpgrade), string(entities.ActionRemove)})
	if err != nil {
		return nil, err
	}

	rule, found := file.FindRule(id)
	if !found {
		rule = entities.PackageRule{ID: id}
	}
	rule.Action = action

	if action == string(entities.ActionUpgrade) {
		policy, choiceErr := it.prompt.Choice("Target policy", entities.UpgradePolicies())
		if choiceErr != nil {
			return nil, choiceErr
		}
		target, inputErr := it.prompt.Input("Target version")
		if inputErr != nil {
			return nil, inputErr
		}
		rule.TargetPolicy = policy
		rule.TargetVersion = target
	} else {
		rule.TargetPolicy = string(entities.PolicyNone)
		rule.TargetVersion = ""
	}

	rule.Upgrades, err = it.askNotes(rule.TargetVersion)
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (it *AddRuleCommand) askNotes(target string) ([]entities.UpgradeRule, error) {
	notes := []entities.UpgradeRule{}
	for {
		answer, err := it.prompt.Choice("Add upgrade note?", []string{answerYes, answerNo})
		if err != nil {
			return nil, err
		}
		if answer == answerNo {
			return notes, nil
		}

		from, err := it.prompt.Input("From version (range, wildcard, or *)")
		if err != nil {
			return nil, err
		}
		text, err := it.prompt.Input("Notes")
		if err != nil {
			return nil, fmt.Errorf("notes for %q: %w", from, err)
		}
		notes = append(notes, entities.UpgradeRule{From: &from, To: target, Notes: text})
	}
}
