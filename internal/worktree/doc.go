// Package worktree manages linked workspaces: additional checkouts of
// one repository, each on its own branch, sharing history with the
// primary checkout. It validates branch names, places new worktrees
// under a conventional directory next to the repository, and delegates
// the actual storage operations to the version-control backend.
package worktree
