package feature

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mustafatawab/spec-kit-plus/internal/config"
)

// FallbackBranch is the identifier used when nothing else resolves: no
// override, no version control, and no feature directories on disk.
const FallbackBranch = "main"

// prefixRe matches the feature naming convention: exactly three digits
// followed by a dash. Longer or shorter numeric prefixes do not match
// and fall through to literal directory resolution.
var prefixRe = regexp.MustCompile(`^(\d{3})-`)

// VCS is the version-control capability the resolver needs.
type VCS interface {
	IsRepo(dir string) bool
	CurrentBranch(dir string) (string, error)
}

// AmbiguousPrefixError reports that more than one feature directory
// shares a numeric prefix. The repository state is inconsistent; the
// resolver surfaces every conflicting name instead of picking one.
type AmbiguousPrefixError struct {
	Prefix  string
	Matches []string
}

func (e *AmbiguousPrefixError) Error() string {
	return fmt.Sprintf("ambiguous feature prefix %q: matches %s", e.Prefix, strings.Join(e.Matches, ", "))
}

// ResolveBranch produces the branch identifier for the current
// invocation. Resolution order, first success wins: the SPECIFY_FEATURE
// environment override, the version-control current branch, the
// highest-numbered feature directory under specsRoot, and finally
// FallbackBranch.
func ResolveBranch(vcs VCS, dir, specsRoot string) (string, error) {
	if override := os.Getenv(config.FeatureEnv); override != "" {
		log.Debug().Str("branch", override).Msg("branch overridden via environment")
		return override, nil
	}

	if vcs.IsRepo(dir) {
		branch, err := vcs.CurrentBranch(dir)
		if err != nil {
			return "", fmt.Errorf("resolving current branch: %w", err)
		}
		return branch, nil
	}

	if latest := latestFeatureDir(specsRoot); latest != "" {
		log.Debug().Str("branch", latest).Msg("no version control, using latest feature directory")
		return latest, nil
	}

	return FallbackBranch, nil
}

// Dir maps a branch identifier to its feature directory under
// specsRoot. Identifiers without a three-digit prefix resolve to the
// literal directory of the same name. With a prefix, existing
// directories are matched on "<prefix>-": one match wins; zero matches
// return the literal path so downstream errors stay inspectable; more
// than one returns the literal path together with an
// *AmbiguousPrefixError naming every conflicting directory.
func Dir(specsRoot, branch string) (string, error) {
	literal := filepath.Join(specsRoot, branch)

	m := prefixRe.FindStringSubmatch(branch)
	if m == nil {
		return literal, nil
	}
	prefix := m[1]

	matches := matchPrefix(specsRoot, prefix)
	switch len(matches) {
	case 0:
		return literal, nil
	case 1:
		return filepath.Join(specsRoot, matches[0]), nil
	default:
		return literal, &AmbiguousPrefixError{Prefix: prefix, Matches: matches}
	}
}

// matchPrefix returns the names of directories under specsRoot that
// begin with "<prefix>-", sorted for deterministic error messages.
func matchPrefix(specsRoot, prefix string) []string {
	entries, err := os.ReadDir(specsRoot)
	if err != nil {
		return nil
	}
	var matches []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix+"-") {
			matches = append(matches, e.Name())
		}
	}
	sort.Strings(matches)
	return matches
}

// latestFeatureDir returns the feature directory name with the highest
// numeric prefix, or "" when none match the convention.
func latestFeatureDir(specsRoot string) string {
	entries, err := os.ReadDir(specsRoot)
	if err != nil {
		return ""
	}
	best := ""
	bestNum := -1
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		m := prefixRe.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > bestNum {
			bestNum = n
			best = e.Name()
		}
	}
	return best
}
