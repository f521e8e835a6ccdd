package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// ErrNotInteractive is returned when stdin is not a terminal.
var ErrNotInteractive = errors.New("rule authoring requires an interactive terminal")

// HuhPromptRepository asks questions with charmbracelet/huh forms.
type HuhPromptRepository struct {
	isTerminal func() bool
}

// NewHuhPromptRepository creates a prompt repository bound to stdin.
func NewHuhPromptRepository() repositories.PromptRepository {
	return &HuhPromptRepository{
		isTerminal: func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
	}
}

// Input asks for a non-blank value.
func (r *HuhPromptRepository) Input(label string) (string, error) {
	if !r.isTerminal() {
		return "", ErrNotInteractive
	}

	var value string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(label).
				Value(&value).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("value is required")
					}
					return nil
				}),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt %q: %w", label, err)
	}
	return strings.TrimSpace(value), nil
}

// Choice asks the user to pick one of options.
func (r *HuhPromptRepository) Choice(label string, options []string) (string, error) {
	if !r.isTerminal() {
		return "", ErrNotInteractive
	}
	if len(options) == 0 {
		return "", fmt.Errorf("prompt %q: no options", label)
	}

	choices := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		choices = append(choices, huh.NewOption(option, option))
	}

	value := options[0]
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(label).
				Options(choices...).
				Value(&value),
		),
	)
	if err := form.Run(); err != nil {
		return "", fmt.Errorf("prompt %q: %w", label, err)
	}
	return value, nil
}
