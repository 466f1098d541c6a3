// Package git provides the production version-control backend for
// spec-kit-plus. It wraps the Git CLI for repository queries (top-level
// directory, common metadata directory, current branch, dirty state)
// and worktree lifecycle operations, without depending on other
// internal packages.
package git
