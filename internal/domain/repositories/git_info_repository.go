package repositories

import "github.com/rios0rios0/nugetsync/internal/domain/entities"

// GitInfoRepository reads version-control metadata of a local checkout.
type GitInfoRepository interface {
	// Describe never fails: missing metadata is returned as empty fields.
	Describe(repoRoot string) entities.GitInfo
}
