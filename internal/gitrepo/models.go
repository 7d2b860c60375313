package gitrepo

import "time"

// Branch identifies a repository branch by name. Equality and display are by
// name alone.
type Branch string

// String returns the branch name.
func (branch Branch) String() string {
	return string(branch)
}

// Commit is an immutable record of a single commit parsed from a formatted
// log line.
type Commit struct {
	Hash      string
	Author    string
	Timestamp time.Time
	Message   string
}

// StatusSnapshot captures one classification pass over git status output. It
// is rebuilt fresh on every call and never cached.
type StatusSnapshot struct {
	Branch         string
	NewFiles       []string
	ModifiedFiles  []string
	UntrackedFiles []string
}
