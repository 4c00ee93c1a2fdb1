package repositories

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// GitWorkingTreeRepository checks file status through go-git.
type GitWorkingTreeRepository struct{}

// NewGitWorkingTreeRepository creates a new GitWorkingTreeRepository.
func NewGitWorkingTreeRepository() *GitWorkingTreeRepository {
	return &GitWorkingTreeRepository{}
}

// IsModified reports whether path has staged, unstaged or untracked changes.
// Directories that are not inside a Git repository are never modified.
func (it *GitWorkingTreeRepository) IsModified(root, path string) (bool, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return false, nil
		}
		return false, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read git status: %w", err)
	}

	abs, err := filepath.Abs(filepath.Join(root, path))
	if err != nil {
		return false, fmt.Errorf("invalid path %q: %w", path, err)
	}
	rel, err := filepath.Rel(worktree.Filesystem.Root(), abs)
	if err != nil {
		return false, fmt.Errorf("path %q is outside the worktree: %w", path, err)
	}

	// Status only lists changed paths; File() would invent an entry for clean ones.
	fileStatus, changed := status[filepath.ToSlash(rel)]
	if !changed {
		return false, nil
	}
	return fileStatus.Worktree != git.Unmodified || fileStatus.Staging != git.Unmodified, nil
}
