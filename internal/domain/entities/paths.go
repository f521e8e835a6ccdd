package entities

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
)

const repoKeyHashLength = 8

// RepoKey returns a stable folder name for a repository: its sanitized
// directory name followed by a short hash of the absolute path.
func RepoKey(repoRoot string) (string, error) {
	absolute, err := filepath.Abs(repoRoot)
	if err != nil {
		return "", fmt.Errorf("invalid repository path %q: %w", repoRoot, err)
	}

	sum := sha256.Sum256([]byte(absolute))
	hash := hex.EncodeToString(sum[:])[:repoKeyHashLength]
	return sanitizeKey(filepath.Base(absolute)) + "_" + hash, nil
}

// ToRepoRelativePath returns path relative to repoRoot with forward slashes.
// Paths outside the repository are returned unchanged.
func ToRepoRelativePath(repoRoot, path string) string {
	relative, err := filepath.Rel(repoRoot, path)
	if err != nil {
		relative = path
	}
	return strings.ReplaceAll(filepath.ToSlash(relative), `\`, "/")
}

func sanitizeKey(name string) string {
	var sb strings.Builder
	for _, r := range name {
		isDigit := r >= '0' && r <= '9'
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if isDigit || isLetter || r == '_' || r == '-' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune('_')
		}
	}
	return sb.String()
}
