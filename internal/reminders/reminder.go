package reminders

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a single deferred notification. ScheduledAt == nil means no
// specific time could be parsed; the reminder is kept but never auto-fires.
type Reminder struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Triggered   bool       `json:"triggered"`
}

func New(text string, at *time.Time, now time.Time) Reminder {
	return Reminder{
		ID:          uuid.NewString(),
		Text:        text,
		ScheduledAt: at,
		CreatedAt:   now,
	}
}
