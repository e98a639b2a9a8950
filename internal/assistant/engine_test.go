package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvish-backend/internal/reminders"
)

func newTestEngine(now time.Time) *Engine {
	store := reminders.NewStore()
	sched := reminders.NewScheduler(store, func(reminders.Reminder) {})
	e := New(store, sched, nil)
	e.now = func() time.Time { return now }
	return e
}

// farFuture keeps extracted clock times ahead of the real scheduler clock,
// so armed triggers queue instead of firing during the test.
var farFuture = time.Date(2100, 1, 1, 9, 0, 0, 0, time.UTC)

type fakeProvider struct {
	configured bool
	text       string
	err        error
	calls      int
}

func (f *fakeProvider) Configured() bool { return f.configured }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.text, f.err
}

func TestResolveRejectsEmptyInput(t *testing.T) {
	e := newTestEngine(time.Now())

	_, err := e.Resolve(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = e.Resolve(context.Background(), "   \n\t")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestResolveWrappedPrompt(t *testing.T) {
	e := newTestEngine(farFuture)

	prompt := BuildPrompt("Jarvish", "sam", "what is 2 plus 2", farFuture)
	out, err := e.Resolve(context.Background(), prompt)
	require.NoError(t, err)
	assert.Equal(t, "The answer is 4. That was 2+2 equals 4.", out)
}

func TestResolveCreatesReminderWithTime(t *testing.T) {
	e := newTestEngine(farFuture)

	out, err := e.Resolve(context.Background(), "remind me to call mom at 5 pm")
	require.NoError(t, err)
	assert.Equal(t,
		"I'll remember to call mom at Jan 1, 2100 5:00 PM. I've set your reminder and will notify you when it's time!",
		out)

	list := e.store.List()
	require.Len(t, list, 1)
	assert.Equal(t, "call mom", list[0].Text)
	require.NotNil(t, list[0].ScheduledAt)
	assert.Equal(t, time.Date(2100, 1, 1, 17, 0, 0, 0, time.UTC), *list[0].ScheduledAt)
}

func TestResolveCreatesReminderWithoutTime(t *testing.T) {
	e := newTestEngine(farFuture)

	out, err := e.Resolve(context.Background(), "remind me to buy milk")
	require.NoError(t, err)
	assert.Equal(t,
		"I'll remember to buy milk. I've set your reminder and will notify you when it's time!",
		out)

	list := e.store.List()
	require.Len(t, list, 1)
	assert.Nil(t, list[0].ScheduledAt)
}

func TestResolveReminderClarificationStoresNothing(t *testing.T) {
	e := newTestEngine(farFuture)

	out, err := e.Resolve(context.Background(), "remind me")
	require.NoError(t, err)
	assert.Equal(t, reminderClarification, out)
	assert.Equal(t, 0, e.store.Len())
}

func TestResolveListsReminders(t *testing.T) {
	e := newTestEngine(farFuture)

	out, err := e.Resolve(context.Background(), "show reminders")
	require.NoError(t, err)
	assert.Contains(t, out, "You don't have any reminders set")

	_, err = e.Resolve(context.Background(), "remind me to call mom at 5 pm")
	require.NoError(t, err)

	out, err = e.Resolve(context.Background(), "what did i tell you to remember")
	require.NoError(t, err)
	assert.Contains(t, out, "You have 1 active reminder:")
	assert.Contains(t, out, "1. call mom at Jan 1, 2100 5:00 PM")
}

func TestResolveReminderListOutranksClauseSplitting(t *testing.T) {
	e := newTestEngine(farFuture)

	// "math" alone would trip the clause splitter, but reminder phrasing
	// must win over every other route.
	out, err := e.Resolve(context.Background(), "what did i tell you to remember. math")
	require.NoError(t, err)
	assert.Contains(t, out, "You don't have any reminders set")
}

func TestResolveCompoundInput(t *testing.T) {
	e := newTestEngine(time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC))

	out, err := e.Resolve(context.Background(), "what is the date? what is 5 plus 5?")
	require.NoError(t, err)
	assert.Equal(t,
		"Today is Monday, August 24, 2026.\n\nThe answer is 10. That was 5+5 equals 10.",
		out)
}

func TestResolveWordOperatorPhrasings(t *testing.T) {
	e := newTestEngine(time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC))

	tests := []struct {
		input string
		want  string
	}{
		{"what is 10 times 5", "The answer is 50. That was 10*5 equals 50."},
		{"what is 6 multiply 7", "The answer is 42. That was 6*7 equals 42."},
		{"what is 9 multiplied by 3", "The answer is 27. That was 9*3 equals 27."},
		{"what is 20 divided by 8", "The answer is 2.50. That was approximately 2.50."},
		{"what is 9 minus 4", "The answer is 5. That was 9-4 equals 5."},
	}
	for _, tt := range tests {
		out, err := e.Resolve(context.Background(), tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, out, "input %q", tt.input)
	}
}

func TestResolveDateTime(t *testing.T) {
	now := time.Date(2026, 8, 24, 15, 4, 5, 0, time.UTC)
	e := newTestEngine(now)

	out, err := e.Resolve(context.Background(), "what time is it")
	require.NoError(t, err)
	assert.Equal(t, "The current time is 03:04:05 PM.", out)
}

func TestResolveRhyme(t *testing.T) {
	e := newTestEngine(time.Now())

	out, err := e.Resolve(context.Background(), "tell me a rhyme")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Here's a lovely rhyme for you: "), "got %q", out)

	out, err = e.Resolve(context.Background(), "one more rhyme please")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Here's another rhyme for you: "), "got %q", out)
}

func TestResolveUsesProviderWhenConfigured(t *testing.T) {
	e := newTestEngine(time.Now())
	p := &fakeProvider{configured: true, text: "The meaning of life is 42."}
	e.provider = p

	out, err := e.Resolve(context.Background(), "what is the meaning of life")
	require.NoError(t, err)
	assert.Equal(t, "The meaning of life is 42.", out)
	assert.Equal(t, 1, p.calls)
}

func TestResolveProviderFailureFallsBackLocally(t *testing.T) {
	e := newTestEngine(time.Now())
	p := &fakeProvider{configured: true, err: errors.New("boom")}
	e.provider = p

	out, err := e.Resolve(context.Background(), "what is the meaning of life")
	require.NoError(t, err)
	assert.Contains(t, out, "Could you please specify which topic")
	assert.Equal(t, 1, p.calls)
}

func TestResolveUnconfiguredProviderIsNeverCalled(t *testing.T) {
	e := newTestEngine(time.Now())
	p := &fakeProvider{configured: false, text: "should not appear"}
	e.provider = p

	out, err := e.Resolve(context.Background(), "tell me about python")
	require.NoError(t, err)
	assert.Contains(t, out, "Python is a high-level")
	assert.Equal(t, 0, p.calls)
}

func TestResolveMathOutranksProvider(t *testing.T) {
	e := newTestEngine(time.Now())
	p := &fakeProvider{configured: true, text: "should not appear"}
	e.provider = p

	out, err := e.Resolve(context.Background(), "what is 2 plus 2")
	require.NoError(t, err)
	assert.Equal(t, "The answer is 4. That was 2+2 equals 4.", out)
	assert.Equal(t, 0, p.calls)
}

func TestResolveDefaultFallback(t *testing.T) {
	e := newTestEngine(time.Now())

	out, err := e.Resolve(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Equal(t, defaultResponse, out)
}
