package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testConfigurationFileNameConstant = "config.yaml"
	testConfigurationContentConstant  = "common:\n  log_level: warn\nrepository:\n  remote: upstream\n"
)

func writeConfigurationFile(testInstance *testing.T) string {
	testInstance.Helper()

	configurationFilePath := filepath.Join(testInstance.TempDir(), testConfigurationFileNameConstant)
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(testConfigurationContentConstant), 0o600))
	return configurationFilePath
}

func executeApplicationCommand(testInstance *testing.T, arguments []string) string {
	testInstance.Helper()

	application := NewApplication()
	outputBuffer := &bytes.Buffer{}
	application.rootCommand.SetOut(outputBuffer)
	application.rootCommand.SetErr(outputBuffer)
	application.rootCommand.SetArgs(arguments)

	require.NoError(testInstance, application.rootCommand.Execute())
	return outputBuffer.String()
}

func TestConfigShowRendersEffectiveConfiguration(testInstance *testing.T) {
	configurationFilePath := writeConfigurationFile(testInstance)

	renderedOutput := executeApplicationCommand(testInstance, []string{"config", "show", "--config", configurationFilePath})

	require.Contains(testInstance, renderedOutput, "log_level: warn")
	require.Contains(testInstance, renderedOutput, "log_format: console")
	require.Contains(testInstance, renderedOutput, "remote: upstream")
	require.Contains(testInstance, renderedOutput, "path: .")
	require.Contains(testInstance, renderedOutput, configurationFilePath)
}

func TestLogLevelFlagOverridesConfigurationFile(testInstance *testing.T) {
	configurationFilePath := writeConfigurationFile(testInstance)

	renderedOutput := executeApplicationCommand(testInstance, []string{"config", "show", "--config", configurationFilePath, "--log-level", "error"})

	require.Contains(testInstance, renderedOutput, "log_level: error")
}

func TestRepositoryCommandGroupIsRegistered(testInstance *testing.T) {
	application := NewApplication()

	commandNames := []string{}
	for _, childCommand := range application.rootCommand.Commands() {
		commandNames = append(commandNames, childCommand.Name())
	}

	require.Contains(testInstance, commandNames, "repo")
	require.Contains(testInstance, commandNames, "config")
}
