package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mustafatawab/spec-kit-plus/internal/config"
	"github.com/mustafatawab/spec-kit-plus/internal/feature"
	"github.com/mustafatawab/spec-kit-plus/internal/git"
	"github.com/mustafatawab/spec-kit-plus/internal/repo"
	"github.com/mustafatawab/spec-kit-plus/internal/ui"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check the environment and the active branch",
		RunE:  runCheck,
	}
}

func runCheck(cmd *cobra.Command, _ []string) error {
	dir, err := workdir(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	c := git.Client{}

	if !c.IsInstalled() {
		ui.Warn(out, "git is not installed; workspace management is unavailable")
		return nil
	}
	ui.OK(out, "git is installed")

	if !c.IsRepo(dir) {
		ui.Warn(out, "%s is not inside a git repository; branch checks skipped", dir)
		return nil
	}

	loc := repo.NewLocator(c)
	root, err := loc.CanonicalRoot(dir)
	if err != nil {
		return err
	}
	if loc.IsLinked(dir) {
		ui.OK(out, "linked worktree of %s", root)
	} else {
		ui.OK(out, "primary checkout at %s", root)
	}

	cfg, err := config.Load(root)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "worktree by default: %t\n", cfg.WorktreeDefault())

	branch, err := c.CurrentBranch(dir)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "branch: %s\n", branch)

	if err := feature.CheckBranch(branch, true); err != nil {
		return err
	}
	ui.OK(out, "on a feature branch")
	return nil
}
