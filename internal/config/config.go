// Package config loads the optional project configuration file
// .specify/config.yaml from the canonical repository root. Every field
// has a default, so a project without the file behaves identically to
// one with an empty config.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FeatureEnv overrides the resolved branch identifier for one invocation.
const FeatureEnv = "SPECIFY_FEATURE"

// WorktreeEnv enables linked-workspace-by-default behavior in upstream
// feature-creation tooling. This core only reads it.
const WorktreeEnv = "SPECIFY_WORKTREE"

// Config is the project configuration.
type Config struct {
	Version      int    `yaml:"version"`
	SpecsDir     string `yaml:"specs_dir,omitempty"`
	MemoryDir    string `yaml:"memory_dir,omitempty"`
	WorktreesDir string `yaml:"worktrees_dir,omitempty"`
	Worktree     *bool  `yaml:"worktree,omitempty"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:      1,
		SpecsDir:     "specs",
		MemoryDir:    "memory",
		WorktreesDir: "workspaces",
	}
}

// Path returns the config file location for a repository root.
func Path(root string) string {
	return filepath.Join(root, ".specify", "config.yaml")
}

// Load reads the config file for root, falling back to defaults when
// the file does not exist.
func Load(root string) (*Config, error) {
	path := Path(root)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse parses and validates config file content. Omitted fields take
// their default values.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WorktreeDefault reports whether feature-creation tooling should
// create a linked workspace by default: the SPECIFY_WORKTREE
// environment variable wins, then the config file, then false.
func (c *Config) WorktreeDefault() bool {
	switch os.Getenv(WorktreeEnv) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	if c.Worktree != nil {
		return *c.Worktree
	}
	return false
}

func validate(cfg *Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", cfg.Version)
	}
	for name, v := range map[string]string{
		"specs_dir":     cfg.SpecsDir,
		"memory_dir":    cfg.MemoryDir,
		"worktrees_dir": cfg.WorktreesDir,
	} {
		if v == "" {
			return fmt.Errorf("config: %s must not be empty", name)
		}
		if filepath.IsAbs(v) {
			return fmt.Errorf("config: %s must be a relative path, got %q", name, v)
		}
	}
	return nil
}
