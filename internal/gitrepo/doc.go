// Package gitrepo implements a typed facade over the git command line.
//
// It exposes Repository for issuing git operations against a filesystem path,
// pure parsers translating git's textual output into Branch, Commit, and
// StatusSnapshot values, and the typed errors surfaced when the repository is
// missing, empty, or produces unparseable output.
package gitrepo
