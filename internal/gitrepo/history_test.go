package gitrepo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/juanbenitopr/gyt/internal/gitrepo"
)

func TestParseCommitLine(testInstance *testing.T) {
	testCases := []struct {
		name           string
		logLine        string
		expectedCommit gitrepo.Commit
		expectError    bool
	}{
		{
			name:    "well_formed_line",
			logLine: "1a2b3c4d¡|&Ada Lovelace¡|&2023-05-01 10:00:00 +0000¡|&Add analytical engine notes",
			expectedCommit: gitrepo.Commit{
				Hash:      "1a2b3c4d",
				Author:    "Ada Lovelace",
				Timestamp: time.Date(2023, time.May, 1, 10, 0, 0, 0, time.UTC),
				Message:   "Add analytical engine notes",
			},
		},
		{
			name:    "surrounding_whitespace_is_trimmed",
			logLine: "\n9f8e7d6c¡|&Grace Hopper¡|&2024-11-30 23:59:59 +0100¡|&Release compiler\n",
			expectedCommit: gitrepo.Commit{
				Hash:      "9f8e7d6c",
				Author:    "Grace Hopper",
				Timestamp: time.Date(2024, time.November, 30, 23, 59, 59, 0, time.FixedZone("", 3600)),
				Message:   "Release compiler",
			},
		},
		{
			name:        "too_few_fields",
			logLine:     "1a2b3c4d¡|&Ada Lovelace¡|&2023-05-01 10:00:00 +0000",
			expectError: true,
		},
		{
			name:        "too_many_fields",
			logLine:     "a¡|&b¡|&2023-05-01 10:00:00 +0000¡|&subject¡|&extra",
			expectError: true,
		},
		{
			name:        "timestamp_does_not_match_layout",
			logLine:     "1a2b3c4d¡|&Ada Lovelace¡|&May 1st 2023¡|&Add notes",
			expectError: true,
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtestInstance *testing.T) {
			parsedCommit, parseError := gitrepo.ParseCommitLine(testCase.logLine)
			if testCase.expectError {
				require.Error(subtestInstance, parseError)
				require.IsType(subtestInstance, gitrepo.CommitParseError{}, parseError)
				return
			}
			require.NoError(subtestInstance, parseError)
			require.Equal(subtestInstance, testCase.expectedCommit.Hash, parsedCommit.Hash)
			require.Equal(subtestInstance, testCase.expectedCommit.Author, parsedCommit.Author)
			require.Equal(subtestInstance, testCase.expectedCommit.Message, parsedCommit.Message)
			require.True(subtestInstance, testCase.expectedCommit.Timestamp.Equal(parsedCommit.Timestamp))
		})
	}
}
