package vcs

import (
	"fmt"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
)

// ChangedFiles lists files modified, added or staged in the git worktree
// enclosing root. Paths are returned absolute. Used by delta scans to
// restrict analysis to what actually changed.
func ChangedFiles(root string) ([]string, error) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", root, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("status: %w", err)
	}

	var out []string
	for path, st := range status {
		if st.Worktree == git.Unmodified && st.Staging == git.Unmodified {
			continue
		}
		if st.Worktree == git.Deleted || st.Staging == git.Deleted {
			continue
		}
		out = append(out, filepath.Join(wt.Filesystem.Root(), path))
	}
	return out, nil
}
