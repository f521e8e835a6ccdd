//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/commands"
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
)

// StubAddRuleCommand is a stub implementation of commands.AddRule.
type StubAddRuleCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Rule             entities.PackageRule
	LastOpts         commands.AddRuleOptions
}

var _ commands.AddRule = (*StubAddRuleCommand)(nil)

func (s *StubAddRuleCommand) Execute(opts commands.AddRuleOptions) (*entities.PackageRule, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	return &s.Rule, nil
}
