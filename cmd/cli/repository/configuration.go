package repository

import "strings"

const (
	configurationPathKeyConstant   = "path"
	configurationRemoteKeyConstant = "remote"
	defaultRepositoryPathConstant  = "."
	defaultRemoteNameConstant      = "origin"
	configurationKeySeparator      = "."
)

// CommandConfiguration captures configuration shared by the repository commands.
type CommandConfiguration struct {
	// Path selects the working tree when the --path flag is omitted.
	Path string `mapstructure:"path"`
	// Remote names the default remote for push, pull, and remote management.
	Remote string `mapstructure:"remote"`
}

// DefaultCommandConfiguration returns baseline repository command configuration.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Path:   defaultRepositoryPathConstant,
		Remote: defaultRemoteNameConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the repository commands.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparator + configurationPathKeyConstant:   defaults.Path,
		rootKey + configurationKeySeparator + configurationRemoteKeyConstant: defaults.Remote,
	}
}

// sanitize normalizes configuration values, falling back to defaults for
// blank entries.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Path = strings.TrimSpace(configuration.Path)
	if len(sanitized.Path) == 0 {
		sanitized.Path = defaultRepositoryPathConstant
	}
	sanitized.Remote = strings.TrimSpace(configuration.Remote)
	if len(sanitized.Remote) == 0 {
		sanitized.Remote = defaultRemoteNameConstant
	}
	return sanitized
}
