package worktree

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidBranchName is wrapped by every branch name rejection; the
// message names the specific rule violated.
var ErrInvalidBranchName = errors.New("invalid branch name")

const maxBranchNameLen = 200

// forbiddenChars are rejected outright in branch names. They collide
// with git revision syntax or shell globbing.
const forbiddenChars = "~^:?*[\\"

// ValidateBranchName rejects names git would refuse or that would
// produce hostile filesystem paths. Validation happens before any
// mutation, so a rejection leaves no partial state.
func ValidateBranchName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrInvalidBranchName)
	}
	for _, r := range name {
		if unicode.IsSpace(r) {
			return fmt.Errorf("%w: %q contains whitespace", ErrInvalidBranchName, name)
		}
	}
	if len(name) > maxBranchNameLen {
		return fmt.Errorf("%w: %q exceeds %d characters", ErrInvalidBranchName, name, maxBranchNameLen)
	}
	if i := strings.IndexAny(name, forbiddenChars); i >= 0 {
		return fmt.Errorf("%w: %q contains forbidden character %q", ErrInvalidBranchName, name, name[i])
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains \"..\"", ErrInvalidBranchName, name)
	}
	if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".") {
		return fmt.Errorf("%w: %q starts or ends with \".\"", ErrInvalidBranchName, name)
	}
	if strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/") {
		return fmt.Errorf("%w: %q starts or ends with \"/\"", ErrInvalidBranchName, name)
	}
	if strings.Contains(name, "//") {
		return fmt.Errorf("%w: %q contains \"//\"", ErrInvalidBranchName, name)
	}
	return nil
}
