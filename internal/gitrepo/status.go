package gitrepo

import "strings"

const (
	branchAnnouncementPrefixConstant = "On branch "
	newFileMarkerConstant            = "new file:"
	modifiedMarkerConstant           = "modified:"
	renamedMarkerConstant            = "renamed:"
	indentationMarkerConstant        = "\t"
)

// ParseStatus classifies the multi-line text produced by a git status
// invocation into a StatusSnapshot. Each line is matched against the markers
// in priority order in a single linear pass; lines matching none of them are
// discarded. Input order is preserved within every section, and a repeated
// branch announcement overwrites the previous value.
func ParseStatus(statusText string) StatusSnapshot {
	snapshot := StatusSnapshot{}

	for _, statusLine := range strings.Split(statusText, "\n") {
		switch {
		case strings.HasPrefix(statusLine, branchAnnouncementPrefixConstant):
			snapshot.Branch = strings.TrimSpace(strings.TrimPrefix(statusLine, branchAnnouncementPrefixConstant))
		case strings.Contains(statusLine, newFileMarkerConstant):
			snapshot.NewFiles = append(snapshot.NewFiles, stripMarker(statusLine, newFileMarkerConstant))
		case strings.Contains(statusLine, modifiedMarkerConstant):
			snapshot.ModifiedFiles = append(snapshot.ModifiedFiles, stripMarker(statusLine, modifiedMarkerConstant))
		case strings.Contains(statusLine, renamedMarkerConstant):
			// Renames are classified as modifications.
			snapshot.ModifiedFiles = append(snapshot.ModifiedFiles, stripMarker(statusLine, renamedMarkerConstant))
		case strings.HasPrefix(statusLine, indentationMarkerConstant):
			snapshot.UntrackedFiles = append(snapshot.UntrackedFiles, strings.TrimSpace(statusLine))
		}
	}

	return snapshot
}

// stripMarker removes everything through the marker and trims the remaining
// path text.
func stripMarker(statusLine string, marker string) string {
	markerIndex := strings.Index(statusLine, marker)
	return strings.TrimSpace(statusLine[markerIndex+len(marker):])
}
