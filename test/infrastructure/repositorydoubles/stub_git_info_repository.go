//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

// StubGitInfoRepository returns a fixed GitInfo for every repository.
type StubGitInfoRepository struct {
	Info           entities.GitInfo
	DescribedRoots []string
}

var _ repositories.GitInfoRepository = (*StubGitInfoRepository)(nil)

func (s *StubGitInfoRepository) Describe(repoRoot string) entities.GitInfo {
	s.DescribedRoots = append(s.DescribedRoots, repoRoot)
	return s.Info
}
