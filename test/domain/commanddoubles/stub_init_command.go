//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// StubInitCommand is a stub implementation of commands.Init.
type StubInitCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.InitOptions
}

var _ commands.Init = (*StubInitCommand)(nil)

func (s *StubInitCommand) Execute(opts commands.InitOptions) (*entities.Settings, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &entities.Settings{DataRoot: opts.DataRoot, IncludeTransitive: opts.IncludeTransitive}, nil
}
