package gitrepo

import (
	"strings"
	"time"
)

// commitFieldDelimiterConstant separates the formatted log fields. The
// sequence is private to this package and chosen to be vanishingly unlikely
// inside commit metadata.
const commitFieldDelimiterConstant = "¡|&"

const (
	commitLogFormatConstant           = "%H" + commitFieldDelimiterConstant + "%an" + commitFieldDelimiterConstant + "%ad" + commitFieldDelimiterConstant + "%s"
	commitTimestampLayoutConstant     = "2006-01-02 15:04:05 -0700"
	commitFieldCountConstant          = 4
	fieldCountMismatchMessageConstant = "expected exactly 4 delimiter-separated fields"
	timestampMismatchMessageConstant  = "timestamp does not match pattern 2006-01-02 15:04:05 -0700"
)

// ParseCommitLine splits a single formatted log line into a Commit. The line
// must contain exactly four delimiter-separated fields and an ISO-8601
// date-time with a numeric UTC offset; anything else surfaces as a
// CommitParseError rather than a truncated result.
func ParseCommitLine(logLine string) (Commit, error) {
	trimmedLine := strings.TrimSpace(logLine)

	commitFields := strings.Split(trimmedLine, commitFieldDelimiterConstant)
	if len(commitFields) != commitFieldCountConstant {
		return Commit{}, CommitParseError{Line: trimmedLine, Message: fieldCountMismatchMessageConstant}
	}

	commitTimestamp, timestampError := time.Parse(commitTimestampLayoutConstant, commitFields[2])
	if timestampError != nil {
		return Commit{}, CommitParseError{Line: trimmedLine, Message: timestampMismatchMessageConstant}
	}

	return Commit{
		Hash:      commitFields[0],
		Author:    commitFields[1],
		Timestamp: commitTimestamp,
		Message:   commitFields[3],
	}, nil
}

// parseBranchLines converts git branch listing output into Branch values,
// dropping the current-branch asterisk marker and blank lines.
func parseBranchLines(branchText string) []Branch {
	cleanedText := strings.ReplaceAll(branchText, "* ", "")

	branches := []Branch{}
	for _, branchLine := range strings.Split(cleanedText, "\n") {
		trimmedLine := strings.TrimSpace(branchLine)
		if len(trimmedLine) == 0 {
			continue
		}
		branches = append(branches, Branch(trimmedLine))
	}
	return branches
}
