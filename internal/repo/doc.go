// Package repo locates the canonical repository root from any
// directory inside any checkout. A repository has exactly one
// canonical root no matter how many linked worktrees exist; shared
// project state (feature specifications, project memory) always lives
// under it. The locator takes the working directory as an explicit
// argument so resolution is a pure function of filesystem state plus
// that directory.
package repo
