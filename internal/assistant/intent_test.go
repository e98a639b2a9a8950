package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		content string
		want    Intent
	}{
		{"remind me to call mom at 5 pm", IntentReminderCreate},
		{"set reminder to stretch", IntentReminderCreate},
		{"don't forget to buy milk", IntentReminderCreate},
		{"show reminders", IntentReminderList},
		{"what did i tell you to remember", IntentReminderList},
		{"what is 2 plus 2", IntentMath},
		{"calculate 10 times 5", IntentMath},
		{"what is the time", IntentDateTime},
		{"what time is it", IntentDateTime},
		{"today's date", IntentDateTime},
		{"tell me a rhyme", IntentRhyme},
		{"sing me a song", IntentRhyme},
		{"tell me about the mauryan empire", IntentKnowledge},
		{"blah blah", IntentFallback},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.content), "content %q", tt.content)
	}
}

func TestClassifyRankResolvesOverlap(t *testing.T) {
	// "remember" and "math" both live in the keyword table, but reminder
	// phrasing and math expressions outrank a keyword hit.
	assert.Equal(t, IntentReminderCreate, Classify("remind me to do math homework"))
	assert.Equal(t, IntentReminderList, Classify("show reminders about math"))
	assert.Equal(t, IntentMath, Classify("math time: 2 plus 2"))
}

func TestIntentString(t *testing.T) {
	assert.Equal(t, "reminder-create", IntentReminderCreate.String())
	assert.Equal(t, "fallback", IntentFallback.String())
}
