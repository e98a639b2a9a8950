package assistant

import (
	"strings"
	"time"
)

// BuildPrompt wraps a user command with persona and date context for the
// remote provider, ending in the "Question:" marker the engine's content
// extractor recognizes. The preamble gives the model its persona; the
// marker keeps the preamble out of local classification.
func BuildPrompt(assistantName, userName, command string, now time.Time) string {
	if assistantName == "" {
		assistantName = "Jarvish"
	}

	var b strings.Builder

	b.WriteString("You are ")
	b.WriteString(assistantName)
	b.WriteString(", a friendly virtual assistant")
	if userName != "" {
		b.WriteString(" helping ")
		b.WriteString(userName)
	}
	b.WriteString(". Answer briefly and helpfully in plain text without markdown formatting.\n")

	b.WriteString("Today: ")
	b.WriteString(now.Format("Monday, January 2, 2006"))
	b.WriteString("\n")

	b.WriteString("Question: ")
	b.WriteString(command)

	return b.String()
}
