package assistant

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRespondDateTime(t *testing.T) {
	// Monday afternoon
	now := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)

	assert.Equal(t,
		"The current time is 03:04:05 PM.",
		respondDateTime("what time is it", now))

	assert.Equal(t,
		"Today is Monday, August 24, 2026.",
		respondDateTime("what is the date", now))

	assert.Equal(t,
		"Today is Monday, August 24, 2026.",
		respondDateTime("what is today", now))

	assert.Equal(t,
		"Today is Monday.",
		respondDateTime("what day is it", now))

	assert.Equal(t,
		"The current date and time is Monday, August 24, 2026, 03:04 PM.",
		respondDateTime("when", now))
}
