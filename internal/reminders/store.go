package reminders

import (
	"errors"
	"strings"
	"sync"
)

// ErrEmptyText rejects a reminder whose task text failed extraction. Stored
// reminders always carry non-empty text.
var ErrEmptyText = errors.New("reminders: text must not be empty")

// Store owns every Reminder for the process lifetime. Handlers only add and
// read; the scheduler is the only writer of the Triggered flag. Nothing is
// ever deleted.
type Store struct {
	mu  sync.Mutex
	all []Reminder
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Add(r Reminder) error {
	if strings.TrimSpace(r.Text) == "" {
		return ErrEmptyText
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.all = append(s.all, r)
	return nil
}

func (s *Store) Get(id string) (Reminder, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.all {
		if r.ID == id {
			return r, true
		}
	}
	return Reminder{}, false
}

// MarkTriggered flips a reminder to triggered exactly once. Repeated calls
// for the same id report false, so double scheduler wakes fire nothing.
func (s *Store) MarkTriggered(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.all {
		if s.all[i].ID == id {
			if s.all[i].Triggered {
				return false
			}
			s.all[i].Triggered = true
			return true
		}
	}
	return false
}

// List returns a copy of every reminder in creation order.
func (s *Store) List() []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Reminder, len(s.all))
	copy(out, s.all)
	return out
}

// Partition splits reminders into not-yet-triggered and triggered, both in
// creation order.
func (s *Store) Partition() (active, done []Reminder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.all {
		if r.Triggered {
			done = append(done, r)
		} else {
			active = append(active, r)
		}
	}
	return active, done
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.all)
}
