package feature

import (
	"path/filepath"

	"github.com/mustafatawab/spec-kit-plus/internal/config"
	"github.com/mustafatawab/spec-kit-plus/internal/repo"
)

// Paths is the resolved-path bundle handed to external collaborators:
// everything an argument-parsing CLI or a templating layer needs to
// operate on the active feature, derived once per invocation.
type Paths struct {
	RepoRoot     string `json:"repo_root"`
	Branch       string `json:"branch"`
	HasGit       bool   `json:"has_git"`
	FeatureDir   string `json:"feature_dir"`
	FeatureSpec  string `json:"feature_spec"`
	ImplPlan     string `json:"impl_plan"`
	Tasks        string `json:"tasks"`
	Research     string `json:"research"`
	DataModel    string `json:"data_model"`
	QuickStart   string `json:"quickstart"`
	ContractsDir string `json:"contracts_dir"`
}

// NewPaths derives the well-known artifact paths for a feature
// directory.
func NewPaths(repoRoot, branch string, hasGit bool, featureDir string) Paths {
	return Paths{
		RepoRoot:     repoRoot,
		Branch:       branch,
		HasGit:       hasGit,
		FeatureDir:   featureDir,
		FeatureSpec:  filepath.Join(featureDir, "spec.md"),
		ImplPlan:     filepath.Join(featureDir, "plan.md"),
		Tasks:        filepath.Join(featureDir, "tasks.md"),
		Research:     filepath.Join(featureDir, "research.md"),
		DataModel:    filepath.Join(featureDir, "data-model.md"),
		QuickStart:   filepath.Join(featureDir, "quickstart.md"),
		ContractsDir: filepath.Join(featureDir, "contracts"),
	}
}

// Resolve establishes the full path bundle for one invocation: the
// canonical root, the active branch, and the feature directory. The
// shared layout is created first so every returned path has a valid
// parent. An *AmbiguousPrefixError is returned alongside a usable
// bundle; every other error means the bundle is unusable.
func Resolve(vcs VCS, loc *repo.Locator, cfg *config.Config, dir string) (Paths, error) {
	root, err := loc.CanonicalRoot(dir)
	if err != nil {
		return Paths{}, err
	}
	if err := repo.EnsureLayout(root, cfg.SpecsDir, cfg.MemoryDir); err != nil {
		return Paths{}, err
	}

	specsRoot := filepath.Join(root, cfg.SpecsDir)
	branch, err := ResolveBranch(vcs, dir, specsRoot)
	if err != nil {
		return Paths{}, err
	}

	featureDir, dirErr := Dir(specsRoot, branch)
	paths := NewPaths(root, branch, vcs.IsRepo(dir), featureDir)
	return paths, dirErr
}
