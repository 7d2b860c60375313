package gitrepo

import (
	"errors"
	"fmt"
)

const (
	repositoryNotFoundMessageConstant = "repository metadata directory not found"
	repositoryEmptyMessageConstant    = "repository has no commits"
	gitExecutorMissingMessageConstant = "git executor not configured"
	commitParseErrorTemplateConstant  = "failed to parse commit log line %q: %s"
)

// ErrRepositoryNotFound indicates the requested path has no repository
// metadata directory and creation was not requested.
var ErrRepositoryNotFound = errors.New(repositoryNotFoundMessageConstant)

// ErrRepositoryEmpty indicates a branch or log query produced no output, as
// on a freshly initialized repository.
var ErrRepositoryEmpty = errors.New(repositoryEmptyMessageConstant)

// ErrGitExecutorNotConfigured indicates the git executor dependency was missing.
var ErrGitExecutorNotConfigured = errors.New(gitExecutorMissingMessageConstant)

// CommitParseError reports a formatted log line that did not match the
// expected field count or date-time pattern.
type CommitParseError struct {
	Line    string
	Message string
}

// Error describes the parse failure.
func (parseError CommitParseError) Error() string {
	return fmt.Sprintf(commitParseErrorTemplateConstant, parseError.Line, parseError.Message)
}
