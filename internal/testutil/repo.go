// Package testutil creates throwaway git repositories and worktrees
// for integration-style tests. All helpers shell out to the real git
// binary and fail the test on any error.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// CreateRepo initializes a git repository with an initial commit on
// main in a temp directory and returns its path.
func CreateRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	repo := filepath.Join(dir, "project")

	run(t, dir, "git", "init", "-b", "main", repo)
	run(t, repo, "git", "config", "user.email", "test@example.com")
	run(t, repo, "git", "config", "user.name", "Test")

	WriteFile(t, filepath.Join(repo, "README.md"), "# test\n")
	run(t, repo, "git", "add", ".")
	run(t, repo, "git", "commit", "-m", "initial commit")

	return repo
}

// CreateRepoWithBranch initializes a repository that has an extra
// branch with one commit, with main checked out.
func CreateRepoWithBranch(t *testing.T, branch string) string {
	t.Helper()
	repo := CreateRepo(t)

	run(t, repo, "git", "checkout", "-b", branch)
	WriteFile(t, filepath.Join(repo, "feature.txt"), "feature\n")
	run(t, repo, "git", "add", ".")
	run(t, repo, "git", "commit", "-m", "feature commit")
	run(t, repo, "git", "checkout", "main")

	return repo
}

// AddWorktree creates a linked worktree of repo at path on a new
// branch and returns the worktree path.
func AddWorktree(t *testing.T, repo, branch, path string) string {
	t.Helper()
	if path == "" {
		path = filepath.Join(t.TempDir(), branch)
	}
	run(t, repo, "git", "worktree", "add", "-b", branch, path)
	return path
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

func run(t *testing.T, dir string, name string, args ...string) {
	t.Helper()
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("command %s %v failed: %v", name, args, err)
	}
}
