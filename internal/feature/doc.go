// Package feature resolves the active feature for an invocation: which
// branch is in play, which specification directory it maps to, and the
// well-known artifact paths under that directory. Branch names follow
// a three-digit numeric prefix convention ("042-user-login"); several
// branches sharing one prefix collaborate on one feature directory.
package feature
