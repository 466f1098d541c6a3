package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mustafatawab/spec-kit-plus/internal/config"
	"github.com/mustafatawab/spec-kit-plus/internal/git"
	"github.com/mustafatawab/spec-kit-plus/internal/repo"
	"github.com/mustafatawab/spec-kit-plus/internal/ui"
	"github.com/mustafatawab/spec-kit-plus/internal/worktree"
)

func newWorktreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worktree",
		Short: "Manage linked worktrees of the repository",
	}
	cmd.AddCommand(
		newWorktreeAddCmd(),
		newWorktreeRemoveCmd(),
		newWorktreeListCmd(),
		newWorktreePruneCmd(),
	)
	return cmd
}

func newWorktreeAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [branch] [path]",
		Short: "Create a linked worktree for a branch",
		Args:  cobra.MaximumNArgs(2),
		RunE:  runWorktreeAdd,
	}
}

func runWorktreeAdd(cmd *cobra.Command, args []string) error {
	m, err := newManager(cmd)
	if err != nil {
		return err
	}

	var branch, target string
	if len(args) == 0 {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("no branch given and stdin is not a TTY; pass a branch name")
		}
		branch, err = promptInput("Branch name", "042-short-description", worktree.ValidateBranchName)
		if err != nil {
			return fmt.Errorf("interactive add: %w", err)
		}
	} else {
		branch = args[0]
		if len(args) > 1 {
			target = args[1]
		}
	}

	path, err := m.Create(branch, target)
	if err != nil {
		return err
	}
	ui.OK(cmd.OutOrStdout(), "worktree created at %s", path)
	return nil
}

func newWorktreeRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <path>",
		Short: "Remove a linked worktree",
		Args:  cobra.ExactArgs(1),
		RunE:  runWorktreeRemove,
	}
	cmd.Flags().Bool("force", false, "Remove even with uncommitted changes, without prompting")
	return cmd
}

func runWorktreeRemove(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	m, err := newManager(cmd)
	if err != nil {
		return err
	}

	confirm := removalConfirm(cmd, force)
	if err := m.Remove(args[0], confirm); err != nil {
		return err
	}
	ui.OK(cmd.OutOrStdout(), "worktree removed: %s", args[0])
	return nil
}

// removalConfirm builds the decision callback for dirty-worktree
// removal: --force answers yes, a TTY prompts the user, and a
// non-interactive call without --force declines.
func removalConfirm(cmd *cobra.Command, force bool) worktree.Confirm {
	if force {
		return func(string) (bool, error) { return true, nil }
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return func(reason string) (bool, error) {
			ui.Warn(cmd.ErrOrStderr(), "%s; pass --force to remove anyway", reason)
			return false, nil
		}
	}
	return func(reason string) (bool, error) {
		return promptConfirm(fmt.Sprintf("%s. Remove?", reason))
	}
}

func newWorktreeListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all worktrees of the repository",
		RunE:  runWorktreeList,
	}
	cmd.Flags().Bool("json", false, "Output as JSON")
	return cmd
}

func runWorktreeList(cmd *cobra.Command, _ []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	m, err := newManager(cmd)
	if err != nil {
		return err
	}
	entries, err := m.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	tbl := ui.NewTable(out, "PATH", "BRANCH", "HEAD")
	for _, e := range entries {
		branch := e.Branch
		if branch == "" {
			branch = "(detached)"
		}
		head := e.Head
		if len(head) > 12 {
			head = head[:12]
		}
		tbl.Row(e.Path, branch, head)
	}
	return tbl.Flush()
}

func newWorktreePruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune",
		Short: "Drop stale records of deleted worktrees",
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := newManager(cmd)
			if err != nil {
				return err
			}
			if err := m.Prune(); err != nil {
				return err
			}
			ui.OK(cmd.OutOrStdout(), "stale worktree records pruned")
			return nil
		},
	}
}

// newManager wires a lifecycle manager for the repository containing
// --dir. Worktree management requires version control.
func newManager(cmd *cobra.Command) (*worktree.Manager, error) {
	dir, err := workdir(cmd)
	if err != nil {
		return nil, err
	}

	c := git.Client{}
	loc := repo.NewLocator(c)
	if err := loc.Require(dir); err != nil {
		return nil, err
	}

	root, err := loc.CanonicalRoot(dir)
	if err != nil {
		return nil, err
	}
	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}
	return worktree.NewManager(c, root, cfg.WorktreesDir), nil
}
