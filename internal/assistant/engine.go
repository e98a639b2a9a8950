package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"jarvish-backend/internal/reminders"
)

// Provider is the remote-completion dependency. The engine must behave the
// same whether the provider succeeds, fails, or was never configured.
type Provider interface {
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

// Engine resolves natural-language commands. Recognized intents are handled
// locally and deterministically; everything else goes to the remote
// provider with the local knowledge table and fallback cascade as the
// safety net.
type Engine struct {
	store    *reminders.Store
	sched    *reminders.Scheduler
	provider Provider
	now      func() time.Time
}

func New(store *reminders.Store, sched *reminders.Scheduler, provider Provider) *Engine {
	return &Engine{
		store:    store,
		sched:    sched,
		provider: provider,
		now:      time.Now,
	}
}

// Resolve classifies input and returns the assistant's reply. It fails only
// on an empty or whitespace-only input; every failure past that boundary is
// converted into a polite message.
func (e *Engine) Resolve(ctx context.Context, input string) (string, error) {
	if strings.TrimSpace(input) == "" {
		return "", ErrInvalidInput
	}

	content := extractContent(normalize(input))

	// Reminder phrasing outranks everything else, including the clause
	// splitter: "what did i tell you to remember about math" must list
	// reminders, not explain math.
	switch {
	case reminderCreateRe.MatchString(content):
		return e.createReminder(content), nil
	case reminderListRe.MatchString(content):
		return e.listReminders(), nil
	}

	if out, ok := e.resolveCompound(content); ok {
		return out, nil
	}

	switch Classify(content) {
	case IntentMath:
		return respondMath(content), nil
	case IntentDateTime:
		return respondDateTime(content, e.now()), nil
	case IntentRhyme:
		return respondRhyme(content), nil
	}

	// Nothing deterministic matched: try the remote provider with the
	// full prompt, falling back locally on any failure or empty text.
	if e.provider != nil && e.provider.Configured() {
		text, err := e.provider.Generate(ctx, input)
		if err != nil {
			log.Printf("❌ remote completion failed, falling back to local responses: %v", err)
		} else if t := strings.TrimSpace(text); t != "" {
			return t, nil
		}
	}

	if answer := lookupKnowledge(content); answer != "" {
		return answer, nil
	}
	return respondFallback(content, e.now()), nil
}

const reminderClarification = "I can help you set reminders! Please tell me what you want to remember and when. For example, 'remind me to call mom at 5 pm' or 'remind me about the meeting tomorrow at 10 am'."

const reminderTimeLayout = "Jan 2, 2006 3:04 PM"

// createReminder extracts task text and an optional time, stores the
// reminder, and arms a deferred trigger. When no task text is extractable
// it answers with a clarification and stores nothing.
func (e *Engine) createReminder(content string) string {
	task, ok := reminders.ExtractTask(content)
	if !ok {
		return reminderClarification
	}

	now := e.now()
	at := reminders.ExtractTime(content, now)
	r := reminders.New(task, at, now)
	if err := e.store.Add(r); err != nil {
		return reminderClarification
	}

	timeText := ""
	if at != nil {
		e.sched.Schedule(r.ID, *at)
		timeText = " at " + at.Format(reminderTimeLayout)
	}
	return fmt.Sprintf("I'll remember to %s%s. I've set your reminder and will notify you when it's time!", task, timeText)
}

// listReminders is a pure read over the store: active reminders enumerated
// in creation order, plus a completed-count line when any have triggered.
func (e *Engine) listReminders() string {
	active, done := e.store.Partition()
	if len(active) == 0 && len(done) == 0 {
		return "You don't have any reminders set. You can ask me to remind you of anything by saying 'remind me to [task] at [time]'."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You have %d active reminder%s:\n", len(active), plural(len(active)))
	for i, r := range active {
		timeText := ""
		if r.ScheduledAt != nil {
			timeText = " at " + r.ScheduledAt.Format(reminderTimeLayout)
		}
		fmt.Fprintf(&b, "%d. %s%s\n", i+1, r.Text, timeText)
	}
	if len(done) > 0 {
		fmt.Fprintf(&b, "\nYou've completed %d reminder%s.", len(done), plural(len(done)))
	}
	return strings.TrimSpace(b.String())
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
