package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mustafatawab/spec-kit-plus/internal/config"
	"github.com/mustafatawab/spec-kit-plus/internal/feature"
	"github.com/mustafatawab/spec-kit-plus/internal/git"
	"github.com/mustafatawab/spec-kit-plus/internal/repo"
	"github.com/mustafatawab/spec-kit-plus/internal/ui"
)

func newContextCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Resolve and print the active feature's paths",
		RunE:  runContext,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	cmd.Flags().Bool("require-feature-branch", false, "Fail unless the active branch is a feature branch")
	cmd.Flags().Bool("paths-only", false, "Print only the path fields of the bundle")
	cmd.MarkFlagsMutuallyExclusive("json", "paths-only")
	return cmd
}

func runContext(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")
	pathsOnly, _ := cmd.Flags().GetBool("paths-only")
	requireFeature, _ := cmd.Flags().GetBool("require-feature-branch")

	paths, err := resolvePaths(cmd)
	if err != nil {
		return err
	}

	if requireFeature {
		if err := feature.CheckBranch(paths.Branch, paths.HasGit); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(paths)
	}

	kvs := [][2]string{
		{"REPO_ROOT", paths.RepoRoot},
		{"BRANCH", paths.Branch},
		{"HAS_GIT", fmt.Sprintf("%t", paths.HasGit)},
		{"FEATURE_DIR", paths.FeatureDir},
		{"FEATURE_SPEC", paths.FeatureSpec},
		{"IMPL_PLAN", paths.ImplPlan},
		{"TASKS", paths.Tasks},
		{"RESEARCH", paths.Research},
		{"DATA_MODEL", paths.DataModel},
		{"QUICKSTART", paths.QuickStart},
		{"CONTRACTS_DIR", paths.ContractsDir},
	}
	if pathsOnly {
		// Drop the non-path fields so the output pipes cleanly into
		// collaborators that only consume locations.
		kvs = append(kvs[:1], kvs[3:]...)
	}
	for _, kv := range kvs {
		_, _ = fmt.Fprintf(out, "%s: %s\n", kv[0], kv[1])
	}
	return nil
}

// resolvePaths runs the full resolution pipeline for the current
// invocation. An ambiguous feature prefix is reported on stderr but
// does not abort: the returned bundle carries a literal path the
// caller can inspect.
func resolvePaths(cmd *cobra.Command) (feature.Paths, error) {
	dir, err := workdir(cmd)
	if err != nil {
		return feature.Paths{}, err
	}

	c := git.Client{}
	loc := repo.NewLocator(c)

	root, err := loc.CanonicalRoot(dir)
	if err != nil {
		return feature.Paths{}, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return feature.Paths{}, err
	}

	paths, err := feature.Resolve(c, loc, cfg, dir)
	if err != nil {
		var ambig *feature.AmbiguousPrefixError
		if !errors.As(err, &ambig) {
			return feature.Paths{}, err
		}
		ui.Error(cmd.ErrOrStderr(), "%v", ambig)
	}
	return paths, nil
}
