//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"errors"

	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// ErrScriptExhausted is returned when a prompt has no scripted answer left.
var ErrScriptExhausted = errors.New("no scripted answer left")

// ScriptedPromptRepository answers prompts from a fixed list, in order.
type ScriptedPromptRepository struct {
	Answers []string
	Labels  []string
}

var _ repositories.PromptRepository = (*ScriptedPromptRepository)(nil)

func (p *ScriptedPromptRepository) Input(label string) (string, error) {
	return p.next(label)
}

func (p *ScriptedPromptRepository) Choice(label string, _ []string) (string, error) {
	return p.next(label)
}

func (p *ScriptedPromptRepository) next(label string) (string, error) {
	p.Labels = append(p.Labels, label)
	if len(p.Answers) == 0 {
		return "", ErrScriptExhausted
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}
