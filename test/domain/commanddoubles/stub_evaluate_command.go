//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/nugetsync/internal/domain/commands"
)

// StubEvaluateCommand is a stub implementation of commands.Evaluate.
type StubEvaluateCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.EvaluateOptions
}

var _ commands.Evaluate = (*StubEvaluateCommand)(nil)

func (s *StubEvaluateCommand) Execute(
	_ context.Context,
	opts commands.EvaluateOptions,
) (*commands.RepoResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &commands.RepoResult{InventoryPath: opts.InventoryPath}, nil
}
