//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/commands"
)

// StubMergeCommand is a stub implementation of commands.Merge.
type StubMergeCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Count            int
	LastOpts         commands.MergeOptions
}

var _ commands.Merge = (*StubMergeCommand)(nil)

func (s *StubMergeCommand) Execute(opts commands.MergeOptions) (string, int, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return opts.OutputPath, s.Count, s.ExecuteErr
}
