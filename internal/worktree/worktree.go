package worktree

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/mustafatawab/spec-kit-plus/internal/git"
	"github.com/mustafatawab/spec-kit-plus/internal/repo"
)

var (
	// ErrPathExists is returned when the target worktree path is
	// already occupied by a file or directory.
	ErrPathExists = errors.New("path already exists")

	// ErrPathRequired is returned when Remove is called without a path.
	ErrPathRequired = errors.New("worktree path required")

	// ErrRemovalDeclined is returned when the caller declines to remove
	// a worktree with uncommitted changes. Nothing is modified.
	ErrRemovalDeclined = errors.New("removal declined")
)

// VCS is the version-control capability the manager needs. The
// production implementation is git.Client.
type VCS interface {
	IsRepo(dir string) bool
	BranchExists(dir, branch string) (bool, error)
	IsDirty(dir string) (bool, error)
	WorktreeAdd(dir, path, branch string, newBranch bool) error
	WorktreeRemove(dir, path string, force bool) error
	WorktreeList(dir string) ([]git.Worktree, error)
	WorktreePrune(dir string) error
}

// Confirm decides whether a destructive operation proceeds. The reason
// describes what is at stake. Returning false aborts with no changes;
// an error aborts the whole operation.
type Confirm func(reason string) (bool, error)

// Manager creates, removes, lists, and prunes linked worktrees of one
// repository.
type Manager struct {
	vcs          VCS
	root         string // canonical repository root
	worktreesDir string // directory name for default placement
}

// NewManager returns a Manager for the repository at root. New
// worktrees default to <parent-of-root>/<worktreesDir>/<branch>.
func NewManager(vcs VCS, root, worktreesDir string) *Manager {
	return &Manager{vcs: vcs, root: root, worktreesDir: worktreesDir}
}

// DefaultPath returns the conventional location for a branch's
// worktree, a sibling of the repository so checkouts never nest.
func (m *Manager) DefaultPath(branch string) string {
	return filepath.Join(filepath.Dir(m.root), m.worktreesDir, branch)
}

// Create adds a linked worktree for branch at target, or at
// DefaultPath(branch) when target is empty. An existing branch is
// attached as-is; otherwise branch and worktree are created in one git
// request. Returns the worktree's absolute path.
func (m *Manager) Create(branch, target string) (string, error) {
	if err := m.require(); err != nil {
		return "", err
	}
	if err := ValidateBranchName(branch); err != nil {
		return "", err
	}

	if target == "" {
		target = m.DefaultPath(branch)
	}
	target, err := filepath.Abs(target)
	if err != nil {
		return "", fmt.Errorf("resolving target path: %w", err)
	}

	if _, err := os.Lstat(target); err == nil {
		return "", fmt.Errorf("%w: %s (remove it or choose another path)", ErrPathExists, target)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking target path: %w", err)
	}

	exists, err := m.vcs.BranchExists(m.root, branch)
	if err != nil {
		return "", fmt.Errorf("checking branch %q: %w", branch, err)
	}
	if exists {
		log.Debug().Str("branch", branch).Msg("attaching worktree to existing branch")
	}

	// All checks passed; only now touch the filesystem.
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return "", fmt.Errorf("creating parent directory: %w", err)
	}

	if err := m.vcs.WorktreeAdd(m.root, target, branch, !exists); err != nil {
		return "", err
	}
	return target, nil
}

// Remove deletes the worktree at path. When the worktree has
// uncommitted modifications, confirm decides whether removal proceeds;
// a nil confirm declines. Declining leaves the worktree untouched.
func (m *Manager) Remove(path string, confirm Confirm) error {
	if path == "" {
		return ErrPathRequired
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving worktree path: %w", err)
	}

	dirty, err := m.vcs.IsDirty(path)
	if err != nil {
		return fmt.Errorf("checking worktree state: %w", err)
	}

	force := false
	if dirty {
		reason := fmt.Sprintf("worktree %s has uncommitted changes that will be lost", path)
		if confirm == nil {
			return fmt.Errorf("%w: %s", ErrRemovalDeclined, reason)
		}
		ok, err := confirm(reason)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: %s", ErrRemovalDeclined, reason)
		}
		force = true
	}

	return m.vcs.WorktreeRemove(m.root, path, force)
}

// List enumerates the repository's worktrees, the primary checkout
// included.
func (m *Manager) List() ([]git.Worktree, error) {
	if err := m.require(); err != nil {
		return nil, err
	}
	return m.vcs.WorktreeList(m.root)
}

// Prune asks the backend to drop administrative data for worktrees
// whose directories were deleted outside this tool's control.
func (m *Manager) Prune() error {
	if err := m.require(); err != nil {
		return err
	}
	return m.vcs.WorktreePrune(m.root)
}

func (m *Manager) require() error {
	if !m.vcs.IsRepo(m.root) {
		return fmt.Errorf("%w: %s", repo.ErrNotARepo, m.root)
	}
	return nil
}
