package git

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Client executes git commands against a repository. All methods take
// the directory to operate in explicitly; the zero value is ready to use.
type Client struct{}

// IsInstalled returns true if git is available on the system PATH.
func (Client) IsInstalled() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// IsRepo returns true if dir is inside a git working tree.
func (c Client) IsRepo(dir string) bool {
	out, err := output(dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// TopLevel returns the top-level directory of the working tree
// containing dir.
func (c Client) TopLevel(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// GitDir returns the absolute path of the metadata directory for the
// working tree containing dir. For a linked worktree this is a
// per-worktree directory nested under the primary checkout's metadata.
func (c Client) GitDir(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// CommonDir returns the absolute path of the shared metadata directory
// for the repository containing dir. All worktrees of one repository
// resolve to the same common dir.
func (c Client) CommonDir(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", err
	}
	common := strings.TrimSpace(out)
	if !filepath.IsAbs(common) {
		common = filepath.Join(dir, common)
	}
	return filepath.Clean(common), nil
}

// CurrentBranch returns the current branch name. A detached HEAD is
// reported as the literal string "HEAD", matching rev-parse semantics.
func (c Client) CurrentBranch(dir string) (string, error) {
	out, err := output(dir, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// BranchExists checks if a local branch exists.
func (c Client) BranchExists(dir, branch string) (bool, error) {
	err := run(dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	if err != nil {
		if isExitError(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// IsDirty returns true if the working tree at dir has uncommitted
// changes, including untracked files.
func (c Client) IsDirty(dir string) (bool, error) {
	out, err := output(dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

// run executes a git command in dir, discarding stdout. Stderr is
// captured and included in the error on failure.
func run(dir string, args ...string) error {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return nil
}

// output executes a git command in dir and returns its stdout.
func output(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("git %s: %w: %s", strings.Join(args, " "), err, msg)
		}
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), err)
	}
	return stdout.String(), nil
}

func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}
