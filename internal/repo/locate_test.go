package repo

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafatawab/spec-kit-plus/internal/git"
	"github.com/mustafatawab/spec-kit-plus/internal/testutil"
)

// fakeVCS is an in-memory backend for unit tests that must not depend
// on a real git binary.
type fakeVCS struct {
	repo      bool
	top       string
	gitDir    string
	commonDir string
}

func (f fakeVCS) IsRepo(string) bool               { return f.repo }
func (f fakeVCS) TopLevel(string) (string, error)  { return f.top, nil }
func (f fakeVCS) GitDir(string) (string, error)    { return f.gitDir, nil }
func (f fakeVCS) CommonDir(string) (string, error) { return f.commonDir, nil }

func TestIsLinked(t *testing.T) {
	primary := fakeVCS{repo: true, top: "/work/project", gitDir: "/work/project/.git", commonDir: "/work/project/.git"}
	linked := fakeVCS{repo: true, top: "/work/wt", gitDir: "/work/project/.git/worktrees/wt", commonDir: "/work/project/.git"}
	none := fakeVCS{}

	assert.False(t, NewLocator(primary).IsLinked("/work/project"))
	assert.True(t, NewLocator(linked).IsLinked("/work/wt"))
	assert.False(t, NewLocator(none).IsLinked("/anywhere"))
}

func TestCanonicalRoot_primary(t *testing.T) {
	l := NewLocator(fakeVCS{repo: true, top: "/work/project", gitDir: "/work/project/.git", commonDir: "/work/project/.git"})

	root, err := l.CanonicalRoot("/work/project/sub")
	require.NoError(t, err)
	assert.Equal(t, "/work/project", root)
}

func TestCanonicalRoot_linkedResolvesToPrimary(t *testing.T) {
	l := NewLocator(fakeVCS{repo: true, top: "/work/wt", gitDir: "/work/project/.git/worktrees/wt", commonDir: "/work/project/.git"})

	root, err := l.CanonicalRoot("/work/wt")
	require.NoError(t, err)
	assert.Equal(t, "/work/project", root, "canonical root must be the primary checkout, never the linked worktree")
}

func TestCanonicalRoot_noVersionControlFallsBackToInstallRoot(t *testing.T) {
	l := NewLocator(fakeVCS{})
	l.executable = func() (string, error) {
		return "/opt/project/.specify/scripts/bin/specify", nil
	}

	root, err := l.CanonicalRoot("/somewhere/else")
	require.NoError(t, err)
	assert.Equal(t, "/opt/project", root)
}

func TestActiveRoot(t *testing.T) {
	linked := NewLocator(fakeVCS{repo: true, top: "/work/wt", gitDir: "/work/project/.git/worktrees/wt", commonDir: "/work/project/.git"})
	root, err := linked.ActiveRoot("/work/wt/sub")
	require.NoError(t, err)
	assert.Equal(t, "/work/wt", root, "active root is the worktree the caller is inside")

	none := NewLocator(fakeVCS{})
	root, err = none.ActiveRoot("/plain/dir")
	require.NoError(t, err)
	assert.Equal(t, "/plain/dir", root)
}

func TestRequire(t *testing.T) {
	err := NewLocator(fakeVCS{}).Require("/plain")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotARepo))

	assert.NoError(t, NewLocator(fakeVCS{repo: true}).Require("/repo"))
}

func TestCanonicalRoot_realWorktrees(t *testing.T) {
	repoDir := testutil.CreateRepo(t)
	wt := testutil.AddWorktree(t, repoDir, "042-login", "")
	l := NewLocator(git.Client{})

	fromPrimary, err := l.CanonicalRoot(repoDir)
	require.NoError(t, err)
	fromLinked, err := l.CanonicalRoot(wt)
	require.NoError(t, err)

	assert.Equal(t, resolve(t, fromPrimary), resolve(t, fromLinked),
		"canonical root must be identical from every worktree")
	assert.Equal(t, resolve(t, repoDir), resolve(t, fromLinked))

	assert.False(t, l.IsLinked(repoDir))
	assert.True(t, l.IsLinked(wt))

	active, err := l.ActiveRoot(wt)
	require.NoError(t, err)
	assert.Equal(t, resolve(t, wt), resolve(t, active))
}

func TestEnsureLayout(t *testing.T) {
	root := t.TempDir()

	require.NoError(t, EnsureLayout(root, "specs", "memory"))
	assert.DirExists(t, filepath.Join(root, "specs"))
	assert.FileExists(t, filepath.Join(root, "memory", "constitution.md"))

	// A second run must not touch existing content.
	custom := filepath.Join(root, "memory", "constitution.md")
	testutil.WriteFile(t, custom, "customized\n")
	require.NoError(t, EnsureLayout(root, "specs", "memory"))
	data, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "customized\n", string(data))
}

func resolve(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}
