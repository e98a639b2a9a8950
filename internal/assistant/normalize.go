package assistant

import "strings"

// contentMarker separates caller-added context from the user's question.
// BuildPrompt appends it; extractContent strips everything before its last
// occurrence so persona/date preambles can't trip the classifiers.
const contentMarker = "question:"

func normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// extractContent returns the user's own words from a possibly wrapped
// prompt: everything after the last "question:" marker, or the whole text
// when no marker is present.
func extractContent(normalized string) string {
	idx := strings.LastIndex(normalized, contentMarker)
	if idx == -1 {
		return normalized
	}
	return strings.TrimSpace(normalized[idx+len(contentMarker):])
}
