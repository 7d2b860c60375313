package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/juanbenitopr/gyt/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/tester"

func TestRepositoryPathSanitizerSanitize(testInstance *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		homeProvider  pathutils.HomeDirectoryProvider
		expectedPath  string
	}{
		{
			name:          "empty_input_stays_empty",
			candidatePath: "   ",
			expectedPath:  "",
		},
		{
			name:          "plain_path_is_trimmed",
			candidatePath: "  ./project \n",
			expectedPath:  "./project",
		},
		{
			name:          "bare_tilde_expands_to_home",
			candidatePath: "~",
			expectedPath:  testHomeDirectoryConstant,
		},
		{
			name:          "tilde_prefix_expands_to_home",
			candidatePath: "~/src/project",
			expectedPath:  filepath.Join(testHomeDirectoryConstant, "src", "project"),
		},
		{
			name:          "tilde_without_separator_is_preserved",
			candidatePath: "~project",
			expectedPath:  "~project",
		},
		{
			name:          "unresolvable_home_keeps_original",
			candidatePath: "~/src/project",
			homeProvider: func() (string, error) {
				return "", errors.New("no home directory")
			},
			expectedPath: "~/src/project",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			homeProvider := testCase.homeProvider
			if homeProvider == nil {
				homeProvider = func() (string, error) {
					return testHomeDirectoryConstant, nil
				}
			}
			sanitizer := pathutils.NewRepositoryPathSanitizerWithProvider(homeProvider)

			sanitizedPath := sanitizer.Sanitize(testCase.candidatePath)

			require.Equal(subtestInstance, testCase.expectedPath, sanitizedPath)
		})
	}
}
