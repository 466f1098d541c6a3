package feature

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrDetached is returned by the branch gate when HEAD is not attached
// to any branch.
var ErrDetached = errors.New("not on a branch")

// ErrNotFeatureBranch is returned by the branch gate for branch names
// outside the feature naming convention.
var ErrNotFeatureBranch = errors.New("not a feature branch")

// CheckBranch decides whether branch is acceptable as a feature branch
// before file operations proceed. Without version control the check is
// reduced to a warning, since branch discipline cannot be enforced.
func CheckBranch(branch string, hasGit bool) error {
	if !hasGit {
		log.Warn().Msg("no version control detected; skipping feature branch check")
		return nil
	}
	if branch == "HEAD" {
		return fmt.Errorf("%w: HEAD is detached; checkout or create a feature branch first", ErrDetached)
	}
	if !prefixRe.MatchString(branch) {
		return fmt.Errorf("%w: %q (feature branches are named like 042-user-login)", ErrNotFeatureBranch, branch)
	}
	return nil
}
