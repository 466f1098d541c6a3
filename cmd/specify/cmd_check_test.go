package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/mustafatawab/spec-kit-plus/internal/feature"
	"github.com/mustafatawab/spec-kit-plus/internal/testutil"
)

func TestCheck_outsideRepositoryWarnsButSucceeds(t *testing.T) {
	out, _, err := execute(t, "--dir", t.TempDir(), "check")
	if err != nil {
		t.Fatalf("check outside a repo must not fail: %v", err)
	}
	if !strings.Contains(out, "not inside a git repository") {
		t.Errorf("expected a warning, got:\n%s", out)
	}
}

func TestCheck_mainBranchFailsGate(t *testing.T) {
	repoDir := testutil.CreateRepo(t)

	_, _, err := execute(t, "--dir", repoDir, "check")
	if !errors.Is(err, feature.ErrNotFeatureBranch) {
		t.Fatalf("expected ErrNotFeatureBranch on main, got %v", err)
	}
}

func TestCheck_featureWorktreePasses(t *testing.T) {
	repoDir := testutil.CreateRepo(t)
	wt := testutil.AddWorktree(t, repoDir, "042-login", "")

	out, _, err := execute(t, "--dir", wt, "check")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if !strings.Contains(out, "linked worktree") {
		t.Errorf("expected linked worktree detection, got:\n%s", out)
	}
	if !strings.Contains(out, "branch: 042-login") {
		t.Errorf("expected branch line, got:\n%s", out)
	}
	if !strings.Contains(out, "feature branch") {
		t.Errorf("expected gate verdict, got:\n%s", out)
	}
}
