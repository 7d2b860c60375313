package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	configCommandUseConstant            = "config"
	configCommandShortDescription       = "Inspect the effective configuration"
	configShowUseConstant               = "show"
	configShowShortDescription          = "Print the effective configuration as YAML"
	configShowLongDescription           = "show prints the configuration after defaults, the configuration file, environment variables, and flags have been applied."
	configurationRenderErrorTemplate    = "unable to render configuration: %w"
	configurationSourceCommentTemplate  = "# configuration file: %s\n"
	configurationDefaultsCommentMessage = "# configuration file: built-in defaults\n"
)

type renderedConfiguration struct {
	Common     renderedCommonConfiguration     `yaml:"common"`
	Repository renderedRepositoryConfiguration `yaml:"repository"`
}

type renderedCommonConfiguration struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

type renderedRepositoryConfiguration struct {
	Path   string `yaml:"path"`
	Remote string `yaml:"remote"`
}

func (application *Application) buildConfigCommand() *cobra.Command {
	configCommand := &cobra.Command{
		Use:   configCommandUseConstant,
		Short: configCommandShortDescription,
	}

	showCommand := &cobra.Command{
		Use:   configShowUseConstant,
		Short: configShowShortDescription,
		Long:  configShowLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			rendered := renderedConfiguration{
				Common: renderedCommonConfiguration{
					LogLevel:  application.configuration.Common.LogLevel,
					LogFormat: application.configuration.Common.LogFormat,
				},
				Repository: renderedRepositoryConfiguration{
					Path:   application.configuration.Repository.Path,
					Remote: application.configuration.Repository.Remote,
				},
			}

			encodedConfiguration, marshalError := yaml.Marshal(rendered)
			if marshalError != nil {
				return fmt.Errorf(configurationRenderErrorTemplate, marshalError)
			}

			if configurationFile := application.configurationMetadata.ConfigFileUsed; len(configurationFile) > 0 {
				fmt.Fprintf(command.OutOrStdout(), configurationSourceCommentTemplate, configurationFile)
			} else {
				fmt.Fprint(command.OutOrStdout(), configurationDefaultsCommentMessage)
			}
			fmt.Fprint(command.OutOrStdout(), string(encodedConfiguration))
			return nil
		},
	}

	configCommand.AddCommand(showCommand)

	return configCommand
}
