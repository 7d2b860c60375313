package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/juanbenitopr/gyt/internal/execshell"
)

const (
	metadataDirectoryNameConstant           = ".git"
	repositoryPathFlagConstant              = "-C"
	defaultRepositoryPathConstant           = "."
	defaultRemoteNameConstant               = "origin"
	createdDirectoryPermissionsConstant     = 0o755
	refspecSeparatorConstant                = ":"
	ancestorOffsetReferenceTemplateConstant = "HEAD~%d"
	prettyFormatFlagTemplateConstant        = "--pretty=format:%s"
	projectCreationErrorTemplateConstant    = "failed to create project directory %s: %w"
	negativeOffsetMessageConstant           = "ancestor offset must not be negative"
	commitMessageRequiredMessageConstant    = "commit message must be provided"
	remoteURLRequiredMessageConstant        = "remote url must be provided"
	branchNameRequiredMessageConstant       = "branch name must be provided"
	destinationRequiredMessageConstant      = "checkout destination must be provided"
)

// ErrCommitMessageRequired indicates an empty commit message was supplied.
var ErrCommitMessageRequired = errors.New(commitMessageRequiredMessageConstant)

// ErrRemoteURLRequired indicates an empty remote URL was supplied.
var ErrRemoteURLRequired = errors.New(remoteURLRequiredMessageConstant)

// ErrBranchNameRequired indicates an empty branch name was supplied.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// ErrCheckoutDestinationRequired indicates an empty checkout destination was supplied.
var ErrCheckoutDestinationRequired = errors.New(destinationRequiredMessageConstant)

// ErrNegativeAncestorOffset indicates a negative ancestor position was requested.
var ErrNegativeAncestorOffset = errors.New(negativeOffsetMessageConstant)

// GitExecutor exposes the subset of shell execution the repository facade uses.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Repository is a facade over a git working tree identified by its filesystem
// path. It holds no session state beyond the path; every operation re-invokes
// the git executable and reparses its output.
type Repository struct {
	path     string
	executor GitExecutor
}

// BuildOptions controls how a Repository handle is constructed.
type BuildOptions struct {
	// Path locates the working tree. Defaults to the current directory.
	Path string
	// CreateRepository initializes repository metadata when it is missing.
	CreateRepository bool
	// CreateProject creates the directory itself before initializing metadata.
	CreateProject bool
}

// BuildRepository constructs a Repository handle. Without a creation request
// the path must already contain repository metadata; otherwise the directory
// and metadata are created through git init before the handle is returned.
func BuildRepository(executionContext context.Context, options BuildOptions, executor GitExecutor) (*Repository, error) {
	if executor == nil {
		return nil, ErrGitExecutorNotConfigured
	}

	repositoryPath := strings.TrimSpace(options.Path)
	if len(repositoryPath) == 0 {
		repositoryPath = defaultRepositoryPathConstant
	}

	repository := &Repository{path: repositoryPath, executor: executor}

	metadataPath := filepath.Join(repositoryPath, metadataDirectoryNameConstant)
	if _, statError := os.Stat(metadataPath); statError == nil {
		return repository, nil
	}

	switch {
	case options.CreateProject:
		if mkdirError := os.MkdirAll(repositoryPath, createdDirectoryPermissionsConstant); mkdirError != nil {
			return nil, fmt.Errorf(projectCreationErrorTemplateConstant, repositoryPath, mkdirError)
		}
		if initError := repository.initialize(executionContext); initError != nil {
			return nil, initError
		}
	case options.CreateRepository:
		if initError := repository.initialize(executionContext); initError != nil {
			return nil, initError
		}
	default:
		return nil, ErrRepositoryNotFound
	}

	return repository, nil
}

// Path returns the filesystem path the repository handle is bound to.
func (repository *Repository) Path() string {
	return repository.path
}

func (repository *Repository) initialize(executionContext context.Context) error {
	_, executionError := repository.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments: []string{gitInitSubcommandConstant, repository.path},
	})
	return executionError
}

const (
	gitInitSubcommandConstant      = "init"
	gitStatusSubcommandConstant    = "status"
	gitLogSubcommandConstant       = "log"
	gitShowSubcommandConstant      = "show"
	gitAddSubcommandConstant       = "add"
	gitCommitSubcommandConstant    = "commit"
	gitPushSubcommandConstant      = "push"
	gitPullSubcommandConstant      = "pull"
	gitCheckoutSubcommandConstant  = "checkout"
	gitBranchSubcommandConstant    = "branch"
	gitMergeSubcommandConstant     = "merge"
	gitRevertSubcommandConstant    = "revert"
	gitRemoteSubcommandConstant    = "remote"
	gitRevParseSubcommandConstant  = "rev-parse"
	gitAbbrevRefFlagConstant       = "--abbrev-ref"
	gitHeadReferenceConstant       = "HEAD"
	gitAddAllFlagConstant          = "-A"
	gitMessageFlagConstant         = "-m"
	gitAmendFlagConstant           = "--amend"
	gitForceFlagConstant           = "-f"
	gitNoEditFlagConstant          = "--no-edit"
	gitFastForwardOnlyFlagConstant = "--ff-only"
	gitSquashFlagConstant          = "--squash"
	gitNoCommitFlagConstant        = "--no-commit"
	gitContainsFlagConstant        = "--contains"
	gitIsoDateFlagConstant         = "--date=iso"
	gitSuppressDiffFlagConstant    = "-s"
	gitSingleEntryFlagConstant     = "-1"
	gitRemoteAddActionConstant     = "add"
	gitRemoteRemoveActionConstant  = "remove"
)

// execute runs git with the repository path bound through the global -C flag
// and returns the captured standard output.
func (repository *Repository) execute(executionContext context.Context, commandTokens ...string) (string, error) {
	arguments := append([]string{repositoryPathFlagConstant, repository.path}, commandTokens...)
	executionResult, executionError := repository.executor.ExecuteGit(executionContext, execshell.CommandDetails{Arguments: arguments})
	if executionError != nil {
		return "", executionError
	}
	return executionResult.StandardOutput, nil
}

// CurrentBranch reports the branch HEAD currently points to.
func (repository *Repository) CurrentBranch(executionContext context.Context) (Branch, error) {
	branchOutput, executionError := repository.execute(executionContext, gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant)
	if executionError != nil {
		return Branch(""), executionError
	}

	trimmedBranch := strings.TrimSpace(branchOutput)
	if len(trimmedBranch) == 0 {
		return Branch(""), ErrRepositoryEmpty
	}

	return Branch(trimmedBranch), nil
}

// LocalBranches lists every local branch.
func (repository *Repository) LocalBranches(executionContext context.Context) ([]Branch, error) {
	branchOutput, executionError := repository.execute(executionContext, gitBranchSubcommandConstant)
	if executionError != nil {
		return nil, executionError
	}

	branches := parseBranchLines(branchOutput)
	if len(branches) == 0 {
		return nil, ErrRepositoryEmpty
	}

	return branches, nil
}

// Remotes lists the names of every configured remote.
func (repository *Repository) Remotes(executionContext context.Context) ([]string, error) {
	remoteOutput, executionError := repository.execute(executionContext, gitRemoteSubcommandConstant)
	if executionError != nil {
		return nil, executionError
	}

	remoteNames := []string{}
	for _, remoteLine := range strings.Split(remoteOutput, "\n") {
		trimmedLine := strings.TrimSpace(remoteLine)
		if len(trimmedLine) == 0 {
			continue
		}
		remoteNames = append(remoteNames, trimmedLine)
	}
	return remoteNames, nil
}

// LastCommit returns the most recent commit reachable from HEAD.
func (repository *Repository) LastCommit(executionContext context.Context) (Commit, error) {
	logOutput, executionError := repository.execute(
		executionContext,
		gitLogSubcommandConstant,
		fmt.Sprintf(prettyFormatFlagTemplateConstant, commitLogFormatConstant),
		gitSingleEntryFlagConstant,
		gitIsoDateFlagConstant,
	)
	if executionError != nil {
		return Commit{}, executionError
	}

	if len(strings.TrimSpace(logOutput)) == 0 {
		return Commit{}, ErrRepositoryEmpty
	}

	return ParseCommitLine(logOutput)
}

// CommitAtOffset returns the commit the requested number of ancestor steps
// behind the current tip.
func (repository *Repository) CommitAtOffset(executionContext context.Context, ancestorOffset int) (Commit, error) {
	if ancestorOffset < 0 {
		return Commit{}, ErrNegativeAncestorOffset
	}

	showOutput, executionError := repository.execute(
		executionContext,
		gitShowSubcommandConstant,
		fmt.Sprintf(ancestorOffsetReferenceTemplateConstant, ancestorOffset),
		fmt.Sprintf(prettyFormatFlagTemplateConstant, commitLogFormatConstant),
		gitIsoDateFlagConstant,
		gitSuppressDiffFlagConstant,
	)
	if executionError != nil {
		return Commit{}, executionError
	}

	return ParseCommitLine(showOutput)
}

// Status reruns git status and classifies its output into a fresh snapshot.
func (repository *Repository) Status(executionContext context.Context) (StatusSnapshot, error) {
	statusOutput, executionError := repository.execute(executionContext, gitStatusSubcommandConstant)
	if executionError != nil {
		return StatusSnapshot{}, executionError
	}
	return ParseStatus(statusOutput), nil
}

// AddFiles stages the provided paths, or every change when allFiles is set,
// and returns the refreshed status snapshot. A nil slice stages nothing.
func (repository *Repository) AddFiles(executionContext context.Context, filePaths []string, allFiles bool) (StatusSnapshot, error) {
	if allFiles {
		if _, executionError := repository.execute(executionContext, gitAddSubcommandConstant, gitAddAllFlagConstant); executionError != nil {
			return StatusSnapshot{}, executionError
		}
		return repository.Status(executionContext)
	}

	for _, filePath := range filePaths {
		if _, executionError := repository.execute(executionContext, gitAddSubcommandConstant, filePath); executionError != nil {
			return StatusSnapshot{}, executionError
		}
	}
	return repository.Status(executionContext)
}

// CreateCommit records the staged changes with the provided message and
// returns the refreshed status snapshot.
func (repository *Repository) CreateCommit(executionContext context.Context, commitMessage string) (StatusSnapshot, error) {
	if len(strings.TrimSpace(commitMessage)) == 0 {
		return StatusSnapshot{}, ErrCommitMessageRequired
	}

	if _, executionError := repository.execute(executionContext, gitCommitSubcommandConstant, gitMessageFlagConstant, commitMessage); executionError != nil {
		return StatusSnapshot{}, executionError
	}
	return repository.Status(executionContext)
}

// AddRemote registers a remote under the provided name, defaulting to origin.
func (repository *Repository) AddRemote(executionContext context.Context, remoteURL string, remoteName string) (StatusSnapshot, error) {
	if len(strings.TrimSpace(remoteURL)) == 0 {
		return StatusSnapshot{}, ErrRemoteURLRequired
	}

	resolvedRemoteName := resolveRemoteName(remoteName)
	if _, executionError := repository.execute(executionContext, gitRemoteSubcommandConstant, gitRemoteAddActionConstant, resolvedRemoteName, remoteURL); executionError != nil {
		return StatusSnapshot{}, executionError
	}
	return repository.Status(executionContext)
}

// RemoveRemote deletes the remote under the provided name, defaulting to origin.
func (repository *Repository) RemoveRemote(executionContext context.Context, remoteName string) (StatusSnapshot, error) {
	resolvedRemoteName := resolveRemoteName(remoteName)
	if _, executionError := repository.execute(executionContext, gitRemoteSubcommandConstant, gitRemoteRemoveActionConstant, resolvedRemoteName); executionError != nil {
		return StatusSnapshot{}, executionError
	}
	return repository.Status(executionContext)
}

// SyncOptions configures push and pull operations.
type SyncOptions struct {
	// RemoteName defaults to origin.
	RemoteName string
	// LocalBranch defaults to the current branch.
	LocalBranch string
	// RemoteBranch, when set, extends the refspec as local:remote.
	RemoteBranch string
	// Force appends the force flag after the refspec.
	Force bool
}

// Push uploads the local branch to the remote and returns the refreshed
// status snapshot.
func (repository *Repository) Push(executionContext context.Context, options SyncOptions) (StatusSnapshot, error) {
	return repository.synchronize(executionContext, gitPushSubcommandConstant, options)
}

// Pull integrates the remote branch into the local one and returns the
// refreshed status snapshot.
func (repository *Repository) Pull(executionContext context.Context, options SyncOptions) (StatusSnapshot, error) {
	return repository.synchronize(executionContext, gitPullSubcommandConstant, options)
}

func (repository *Repository) synchronize(executionContext context.Context, verb string, options SyncOptions) (StatusSnapshot, error) {
	localBranch := strings.TrimSpace(options.LocalBranch)
	if len(localBranch) == 0 {
		currentBranch, branchError := repository.CurrentBranch(executionContext)
		if branchError != nil {
			return StatusSnapshot{}, branchError
		}
		localBranch = currentBranch.String()
	}

	refspec := localBranch
	if remoteBranch := strings.TrimSpace(options.RemoteBranch); len(remoteBranch) > 0 {
		refspec = localBranch + refspecSeparatorConstant + remoteBranch
	}

	commandTokens := []string{verb, resolveRemoteName(options.RemoteName), refspec}
	if options.Force {
		commandTokens = append(commandTokens, gitForceFlagConstant)
	}

	if _, executionError := repository.execute(executionContext, commandTokens...); executionError != nil {
		return StatusSnapshot{}, executionError
	}
	return repository.Status(executionContext)
}

// Checkout switches the working tree to the provided branch or revision and
// returns the refreshed status snapshot.
func (repository *Repository) Checkout(executionContext context.Context, destination string) (StatusSnapshot, error) {
	trimmedDestination := strings.TrimSpace(destination)
	if len(trimmedDestination) == 0 {
		return StatusSnapshot{}, ErrCheckoutDestinationRequired
	}

	if _, executionError := repository.execute(executionContext, gitCheckoutSubcommandConstant, trimmedDestination); executionError != nil {
		return StatusSnapshot{}, executionError
	}
	return repository.Status(executionContext)
}

// CreateBranch creates a branch with the provided name, optionally checking
// it out immediately.
func (repository *Repository) CreateBranch(executionContext context.Context, branchName string, moveTo bool) (Branch, error) {
	trimmedBranchName := strings.TrimSpace(branchName)
	if len(trimmedBranchName) == 0 {
		return Branch(""), ErrBranchNameRequired
	}

	if _, executionError := repository.execute(executionContext, gitBranchSubcommandConstant, trimmedBranchName); executionError != nil {
		return Branch(""), executionError
	}

	if moveTo {
		if _, checkoutError := repository.Checkout(executionContext, trimmedBranchName); checkoutError != nil {
			return Branch(""), checkoutError
		}
	}

	return Branch(trimmedBranchName), nil
}

// MergeOptions configures a merge operation.
type MergeOptions struct {
	// Squash collapses the merged history into the working tree.
	Squash bool
	// NewCommit records the merge result; when unset the merge is left
	// uncommitted for caller review.
	NewCommit bool
}

// MergeBranches checks out the target branch and fast-forwards it to the
// source branch. The merge fails rather than creating a merge commit when
// the histories have diverged.
func (repository *Repository) MergeBranches(executionContext context.Context, targetBranch Branch, sourceBranch Branch, options MergeOptions) (Branch, error) {
	if _, checkoutError := repository.Checkout(executionContext, targetBranch.String()); checkoutError != nil {
		return Branch(""), checkoutError
	}

	commandTokens := []string{gitMergeSubcommandConstant, gitFastForwardOnlyFlagConstant}
	if options.Squash {
		commandTokens = append(commandTokens, gitSquashFlagConstant)
	}
	if !options.NewCommit {
		commandTokens = append(commandTokens, gitNoCommitFlagConstant)
	}
	commandTokens = append(commandTokens, sourceBranch.String())

	if _, executionError := repository.execute(executionContext, commandTokens...); executionError != nil {
		return Branch(""), executionError
	}

	return targetBranch, nil
}

// BranchesContainingCommit lists every branch whose history includes the
// provided commit.
func (repository *Repository) BranchesContainingCommit(executionContext context.Context, commit Commit) ([]Branch, error) {
	branchOutput, executionError := repository.execute(executionContext, gitBranchSubcommandConstant, gitContainsFlagConstant, commit.Hash)
	if executionError != nil {
		return nil, executionError
	}
	return parseBranchLines(branchOutput), nil
}

// RevertLastCommit records a new commit undoing the last one and returns the
// freshly requeried last commit.
func (repository *Repository) RevertLastCommit(executionContext context.Context) (Commit, error) {
	if _, executionError := repository.execute(executionContext, gitRevertSubcommandConstant, gitNoEditFlagConstant, gitHeadReferenceConstant); executionError != nil {
		return Commit{}, executionError
	}
	return repository.LastCommit(executionContext)
}

// AmendLastCommitMessage rewrites the last commit message and returns the
// freshly requeried last commit.
func (repository *Repository) AmendLastCommitMessage(executionContext context.Context, commitMessage string) (Commit, error) {
	if len(strings.TrimSpace(commitMessage)) == 0 {
		return Commit{}, ErrCommitMessageRequired
	}

	if _, executionError := repository.execute(executionContext, gitCommitSubcommandConstant, gitAmendFlagConstant, gitMessageFlagConstant, commitMessage); executionError != nil {
		return Commit{}, executionError
	}
	return repository.LastCommit(executionContext)
}

func resolveRemoteName(remoteName string) string {
	trimmedRemoteName := strings.TrimSpace(remoteName)
	if len(trimmedRemoteName) == 0 {
		return defaultRemoteNameConstant
	}
	return trimmedRemoteName
}
