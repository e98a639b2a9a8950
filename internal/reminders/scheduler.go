package reminders

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"
)

// Notifier receives a reminder once its scheduled time elapses. Delivering
// it to the user (UI, push, email) is the caller's job, not this package's.
type Notifier func(Reminder)

// LogNotifier is the default delivery sink.
func LogNotifier(r Reminder) {
	log.Printf("🔔 REMINDER: %s", r.Text)
}

type entry struct {
	fireAt time.Time
	id     string
}

// Scheduler drives deferred triggers from an explicit (fireAt, id) schedule
// instead of one timer handle per reminder. A single goroutine sleeps until
// the earliest entry and recomputes the wait on every wake, so clock skew
// or a long process suspend delays a trigger but never skips it. Armed
// entries cannot be cancelled.
type Scheduler struct {
	store  *Store
	notify Notifier
	now    func() time.Time

	mu    sync.Mutex
	queue []entry
	wake  chan struct{}
}

func NewScheduler(store *Store, notify Notifier) *Scheduler {
	if notify == nil {
		notify = LogNotifier
	}
	return &Scheduler{
		store:  store,
		notify: notify,
		now:    time.Now,
		wake:   make(chan struct{}, 1),
	}
}

// Schedule arms a trigger for the reminder id. A time at or before now
// fires synchronously, so the caller sees no difference between "scheduled
// then fired" and "fired immediately".
func (s *Scheduler) Schedule(id string, at time.Time) {
	if !at.After(s.now()) {
		s.fire(id)
		return
	}

	s.mu.Lock()
	s.queue = append(s.queue, entry{fireAt: at, id: id})
	sort.SliceStable(s.queue, func(i, j int) bool {
		return s.queue[i].fireAt.Before(s.queue[j].fireAt)
	})
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Run processes the schedule until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	log.Println("⏰ reminder scheduler started")

	timer := time.NewTimer(time.Hour)
	defer timer.Stop()

	for {
		s.fireDue()

		if !timer.Stop() {
			select {
			case <-timer.C:
			default:
			}
		}
		timer.Reset(s.untilNext())

		select {
		case <-ctx.Done():
			log.Println("⏰ reminder scheduler stopped")
			return
		case <-timer.C:
		case <-s.wake:
		}
	}
}

func (s *Scheduler) untilNext() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return time.Hour
	}
	wait := s.queue[0].fireAt.Sub(s.now())
	if wait < 0 {
		wait = 0
	}
	return wait
}

// fireDue pops and fires every entry whose time has come, including any
// that went due while the process was suspended.
func (s *Scheduler) fireDue() {
	now := s.now()

	s.mu.Lock()
	var due []entry
	for len(s.queue) > 0 && !s.queue[0].fireAt.After(now) {
		due = append(due, s.queue[0])
		s.queue = s.queue[1:]
	}
	s.mu.Unlock()

	for _, e := range due {
		s.fire(e.id)
	}
}

func (s *Scheduler) fire(id string) {
	// MarkTriggered is the idempotency gate: a double wake fires nothing.
	if !s.store.MarkTriggered(id) {
		return
	}
	if r, ok := s.store.Get(id); ok {
		s.notify(r)
	}
}
