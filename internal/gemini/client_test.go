package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigured(t *testing.T) {
	assert.False(t, New("", "").Configured())
	assert.False(t, New(PlaceholderKey, "").Configured())
	assert.True(t, New("real-key", "").Configured())
}

func TestNewDefaultsModel(t *testing.T) {
	assert.Equal(t, "gemini-1.5-flash", New("k", "").Model)
	assert.Equal(t, "gemini-1.5-pro", New("k", "gemini-1.5-pro").Model)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate([]byte("abc"), 5))
	assert.Equal(t, "abcde...", truncate([]byte("abcdefgh"), 5))
}
