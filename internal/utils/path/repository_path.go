// Package pathutils normalizes repository path input shared by the CLI commands.
package pathutils

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	tildeSymbolConstant             = "~"
	tildeForwardSlashPrefixConstant = "~/"
)

var tildeWithPathSeparatorPrefix = tildeSymbolConstant + string(os.PathSeparator)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// RepositoryPathSanitizer trims and expands a repository path supplied on the
// command line or through configuration. The home directory lookup runs once
// and is reused across calls.
type RepositoryPathSanitizer struct {
	homeDirectoryProvider HomeDirectoryProvider
	homeDirectory         string
	homeDirectoryError    error
	initializationGuard   sync.Once
}

// NewRepositoryPathSanitizer constructs a sanitizer using the operating system lookup.
func NewRepositoryPathSanitizer() *RepositoryPathSanitizer {
	return NewRepositoryPathSanitizerWithProvider(os.UserHomeDir)
}

// NewRepositoryPathSanitizerWithProvider constructs a sanitizer with a custom home directory provider.
func NewRepositoryPathSanitizerWithProvider(provider HomeDirectoryProvider) *RepositoryPathSanitizer {
	if provider == nil {
		provider = os.UserHomeDir
	}
	return &RepositoryPathSanitizer{homeDirectoryProvider: provider}
}

// Sanitize trims surrounding whitespace and resolves a leading tilde to the
// user's home directory. Paths that cannot be expanded are returned trimmed.
func (sanitizer *RepositoryPathSanitizer) Sanitize(candidatePath string) string {
	trimmedPath := strings.TrimSpace(candidatePath)
	if sanitizer == nil {
		return trimmedPath
	}
	if len(trimmedPath) == 0 {
		return trimmedPath
	}
	if !strings.HasPrefix(trimmedPath, tildeSymbolConstant) {
		return trimmedPath
	}

	resolvedHomeDirectory := sanitizer.resolveHomeDirectory()
	if len(resolvedHomeDirectory) == 0 {
		return trimmedPath
	}

	if trimmedPath == tildeSymbolConstant {
		return resolvedHomeDirectory
	}

	if strings.HasPrefix(trimmedPath, tildeForwardSlashPrefixConstant) {
		relativePath := strings.TrimPrefix(trimmedPath, tildeForwardSlashPrefixConstant)
		return filepath.Join(resolvedHomeDirectory, relativePath)
	}

	if tildeWithPathSeparatorPrefix != tildeForwardSlashPrefixConstant && strings.HasPrefix(trimmedPath, tildeWithPathSeparatorPrefix) {
		relativePath := strings.TrimPrefix(trimmedPath, tildeWithPathSeparatorPrefix)
		return filepath.Join(resolvedHomeDirectory, relativePath)
	}

	return trimmedPath
}

func (sanitizer *RepositoryPathSanitizer) resolveHomeDirectory() string {
	sanitizer.initializationGuard.Do(func() {
		sanitizer.homeDirectory, sanitizer.homeDirectoryError = sanitizer.homeDirectoryProvider()
	})
	if sanitizer.homeDirectoryError != nil {
		return ""
	}
	return sanitizer.homeDirectory
}
