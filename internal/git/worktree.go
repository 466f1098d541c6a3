package git

import (
	"strings"

	"github.com/rs/zerolog/log"
)

// Worktree is one entry from git worktree list.
type Worktree struct {
	Path   string `json:"path"`
	Head   string `json:"head,omitempty"`
	Branch string `json:"branch,omitempty"`
	Bare   bool   `json:"bare,omitempty"`
}

// WorktreeAdd creates a linked worktree at path checked out on branch.
// When newBranch is true the branch is created together with the
// worktree in a single git invocation, so branch creation and checkout
// are as atomic as git itself makes them.
func (c Client) WorktreeAdd(dir, path, branch string, newBranch bool) error {
	args := []string{"worktree", "add"}
	if newBranch {
		args = append(args, "-b", branch, path)
	} else {
		args = append(args, path, branch)
	}
	log.Debug().Str("path", path).Str("branch", branch).Bool("new_branch", newBranch).Msg("git worktree add")
	return run(dir, args...)
}

// WorktreeRemove removes a linked worktree. force is required by git
// when the worktree has uncommitted modifications.
func (c Client) WorktreeRemove(dir, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	log.Debug().Str("path", path).Bool("force", force).Msg("git worktree remove")
	return run(dir, args...)
}

// WorktreeList enumerates all worktrees of the repository containing
// dir, the primary checkout included.
func (c Client) WorktreeList(dir string) ([]Worktree, error) {
	out, err := output(dir, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, err
	}
	return parseWorktreeList(out), nil
}

// WorktreePrune removes stale administrative data for worktrees whose
// directories were deleted outside of git's control.
func (c Client) WorktreePrune(dir string) error {
	return run(dir, "worktree", "prune")
}

// parseWorktreeList parses `git worktree list --porcelain` output.
// Entries are blocks of "key value" lines separated by blank lines:
//
//	worktree /path/to/checkout
//	HEAD 1234abcd...
//	branch refs/heads/main
func parseWorktreeList(out string) []Worktree {
	var entries []Worktree
	var cur *Worktree

	flush := func() {
		if cur != nil {
			entries = append(entries, *cur)
			cur = nil
		}
	}

	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		key, value, _ := strings.Cut(line, " ")
		switch key {
		case "worktree":
			flush()
			cur = &Worktree{Path: value}
		case "HEAD":
			if cur != nil {
				cur.Head = value
			}
		case "branch":
			if cur != nil {
				cur.Branch = strings.TrimPrefix(value, "refs/heads/")
			}
		case "bare":
			if cur != nil {
				cur.Bare = true
			}
		case "detached":
			// No branch line follows; leave Branch empty.
		}
	}
	flush()
	return entries
}
