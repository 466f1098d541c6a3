package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ErrNotARepo is returned by operations that require version control
// when the directory is not inside a git repository.
var ErrNotARepo = errors.New("not a git repository")

// VCS is the version-control capability the locator needs. The
// production implementation is git.Client; tests substitute fakes.
type VCS interface {
	IsRepo(dir string) bool
	TopLevel(dir string) (string, error)
	GitDir(dir string) (string, error)
	CommonDir(dir string) (string, error)
}

// Locator resolves workspace and repository roots.
type Locator struct {
	vcs VCS

	// executable reports the running binary's path, overridable in
	// tests. Used only for the no-version-control fallback.
	executable func() (string, error)
}

// NewLocator returns a Locator backed by the given version-control
// implementation.
func NewLocator(vcs VCS) *Locator {
	return &Locator{vcs: vcs, executable: os.Executable}
}

// IsLinked reports whether dir is inside a linked worktree rather than
// the primary checkout. A directory with no version control at all is
// not linked.
func (l *Locator) IsLinked(dir string) bool {
	if !l.vcs.IsRepo(dir) {
		return false
	}
	gitDir, err := l.vcs.GitDir(dir)
	if err != nil {
		return false
	}
	commonDir, err := l.vcs.CommonDir(dir)
	if err != nil {
		return false
	}
	// A linked worktree has its own metadata directory nested under
	// the shared one; in the primary checkout the two coincide.
	return filepath.Clean(gitDir) != filepath.Clean(commonDir)
}

// CanonicalRoot resolves the one location where shared project state
// lives, identical no matter which worktree dir belongs to. For the
// primary checkout this is its top-level directory; for a linked
// worktree it is the parent of the shared metadata directory. Without
// version control it falls back to three directory levels above the
// running binary, so the tool stays usable in plain-file projects.
func (l *Locator) CanonicalRoot(dir string) (string, error) {
	if !l.vcs.IsRepo(dir) {
		root, err := l.installRoot()
		if err != nil {
			return "", fmt.Errorf("resolving fallback root: %w", err)
		}
		log.Debug().Str("root", root).Msg("no version control detected, using install-derived root")
		return root, nil
	}

	if l.IsLinked(dir) {
		commonDir, err := l.vcs.CommonDir(dir)
		if err != nil {
			return "", fmt.Errorf("resolving shared metadata dir: %w", err)
		}
		return filepath.Dir(commonDir), nil
	}

	top, err := l.vcs.TopLevel(dir)
	if err != nil {
		return "", fmt.Errorf("resolving repository root: %w", err)
	}
	return top, nil
}

// ActiveRoot resolves the top-level directory of whichever checkout
// (primary or linked) dir is inside, falling back to dir itself when
// no version control is detected.
func (l *Locator) ActiveRoot(dir string) (string, error) {
	if !l.vcs.IsRepo(dir) {
		return dir, nil
	}
	top, err := l.vcs.TopLevel(dir)
	if err != nil {
		return "", fmt.Errorf("resolving workspace root: %w", err)
	}
	return top, nil
}

// Require returns ErrNotARepo when dir has no version control. It is
// the gate for lifecycle operations that cannot work without git.
func (l *Locator) Require(dir string) error {
	if !l.vcs.IsRepo(dir) {
		return fmt.Errorf("%w: %s", ErrNotARepo, dir)
	}
	return nil
}

// installRoot derives a project root from the binary's install
// location, three levels up from the directory containing it.
func (l *Locator) installRoot() (string, error) {
	exe, err := l.executable()
	if err != nil {
		return "", err
	}
	dir := filepath.Dir(exe)
	for i := 0; i < 3; i++ {
		dir = filepath.Dir(dir)
	}
	return dir, nil
}
