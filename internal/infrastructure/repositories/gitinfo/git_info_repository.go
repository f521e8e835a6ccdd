package gitinfo

import (
	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/storer"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/nugetsync/internal/domain/entities"
	"github.com/rios0rios0/nugetsync/internal/domain/repositories"
)

const (
	originRemote   = "origin"
	shortSHALength = 7
)

// GitInfoRepository implements repositories.GitInfoRepository with go-git,
// so no git binary is required.
type GitInfoRepository struct{}

// NewGitInfoRepository creates a new go-git backed metadata reader.
func NewGitInfoRepository() repositories.GitInfoRepository {
	return &GitInfoRepository{}
}

// Describe reads the origin URL, current branch, tag and commit of the
// checkout containing repoRoot.
func (r *GitInfoRepository) Describe(repoRoot string) entities.GitInfo {
	repo, err := gogit.PlainOpenWithOptions(repoRoot, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logger.Debugf("[git] %s is not a git repository: %v", repoRoot, err)
		return entities.GitInfo{}
	}

	info := entities.GitInfo{ProjectURL: originURL(repo)}

	head, err := repo.Head()
	if err != nil {
		logger.Debugf("[git] Failed to resolve HEAD in %s: %v", repoRoot, err)
		return info
	}

	info.CommitSHA = head.Hash().String()
	if head.Name().IsBranch() {
		info.Branch = head.Name().Short()
		info.RepoRef = info.Branch
		return info
	}

	if tag := tagAt(repo, head.Hash()); tag != "" {
		info.RepoRef = tag
		return info
	}

	info.RepoRef = info.CommitSHA[:shortSHALength]
	return info
}

func originURL(repo *gogit.Repository) string {
	remote, err := repo.Remote(originRemote)
	if err != nil {
		logger.Debugf("[git] No %q remote: %v", originRemote, err)
		return ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return ""
	}
	return urls[0]
}

// tagAt returns the name of a lightweight or annotated tag pointing at hash.
func tagAt(repo *gogit.Repository, hash plumbing.Hash) string {
	tags, err := repo.Tags()
	if err != nil {
		return ""
	}

	var name string
	_ = tags.ForEach(func(ref *plumbing.Reference) error {
		target := ref.Hash()
		if annotated, tagErr := repo.TagObject(target); tagErr == nil {
			target = annotated.Target
		}
		if target == hash {
			name = ref.Name().Short()
			return storer.ErrStop
		}
		return nil
	})
	return name
}
