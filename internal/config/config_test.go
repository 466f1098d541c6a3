package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mustafatawab/spec-kit-plus/internal/testutil"
)

func TestLoad_missingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "specs", cfg.SpecsDir)
	assert.Equal(t, "memory", cfg.MemoryDir)
	assert.Equal(t, "workspaces", cfg.WorktreesDir)
	assert.Nil(t, cfg.Worktree)
}

func TestLoad_fileOverridesDefaults(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, Path(root), "version: 1\nspecs_dir: features\nworktree: true\n")

	cfg, err := Load(root)
	require.NoError(t, err)
	assert.Equal(t, "features", cfg.SpecsDir)
	assert.Equal(t, "memory", cfg.MemoryDir, "omitted fields keep defaults")
	require.NotNil(t, cfg.Worktree)
	assert.True(t, *cfg.Worktree)
}

func TestLoad_invalidYAMLNamesFile(t *testing.T) {
	root := t.TempDir()
	testutil.WriteFile(t, Path(root), "version: [nope\n")

	_, err := Load(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), filepath.Join(".specify", "config.yaml"))
}

func TestParse_rejectsBadValues(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"wrong version", "version: 2\n", "unsupported config version"},
		{"empty specs dir", "version: 1\nspecs_dir: \"\"\n", "specs_dir must not be empty"},
		{"absolute path", "version: 1\nmemory_dir: /etc\n", "must be a relative path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.in))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestWorktreeDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.WorktreeDefault())

	yes := true
	cfg.Worktree = &yes
	assert.True(t, cfg.WorktreeDefault())

	t.Setenv(WorktreeEnv, "false")
	assert.False(t, cfg.WorktreeDefault(), "env overrides config")

	t.Setenv(WorktreeEnv, "1")
	cfg.Worktree = nil
	assert.True(t, cfg.WorktreeDefault())
}
