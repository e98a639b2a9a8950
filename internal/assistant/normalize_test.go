package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContentStripsWrapper(t *testing.T) {
	wrapped := normalize("You are Jarvish, a friendly virtual assistant. Today: Monday, March 9, 2026\nQuestion: what is 2 plus 2")
	assert.Equal(t, "what is 2 plus 2", extractContent(wrapped))
}

func TestExtractContentLastMarkerWins(t *testing.T) {
	wrapped := normalize("Question: ignore this. Question: what time is it")
	assert.Equal(t, "what time is it", extractContent(wrapped))
}

func TestExtractContentNoMarker(t *testing.T) {
	assert.Equal(t, "what is 2 plus 2", extractContent(normalize("  What is 2 PLUS 2  ")))
}
