package reminders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerFiresPastDueSynchronously(t *testing.T) {
	store := NewStore()
	fired := make(chan string, 4)
	s := NewScheduler(store, func(r Reminder) { fired <- r.ID })

	r := New("call mom", nil, time.Now())
	require.NoError(t, store.Add(r))

	// no Run loop needed, a past time fires inline
	s.Schedule(r.ID, time.Now().Add(-time.Second))

	select {
	case got := <-fired:
		assert.Equal(t, r.ID, got)
	default:
		t.Fatal("past-due reminder did not fire synchronously")
	}

	got, _ := store.Get(r.ID)
	assert.True(t, got.Triggered)
}

func TestSchedulerFiresFutureReminder(t *testing.T) {
	store := NewStore()
	fired := make(chan string, 4)
	s := NewScheduler(store, func(r Reminder) { fired <- r.ID })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	r := New("stretch", nil, time.Now())
	require.NoError(t, store.Add(r))
	s.Schedule(r.ID, time.Now().Add(20*time.Millisecond))

	select {
	case got := <-fired:
		assert.Equal(t, r.ID, got)
	case <-time.After(2 * time.Second):
		t.Fatal("reminder never fired")
	}
}

func TestSchedulerFiresInOrder(t *testing.T) {
	store := NewStore()
	fired := make(chan string, 4)
	s := NewScheduler(store, func(r Reminder) { fired <- r.ID })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Run(ctx)

	first := New("first", nil, time.Now())
	second := New("second", nil, time.Now())
	require.NoError(t, store.Add(first))
	require.NoError(t, store.Add(second))

	// armed out of order, must fire in fireAt order
	s.Schedule(second.ID, time.Now().Add(60*time.Millisecond))
	s.Schedule(first.ID, time.Now().Add(20*time.Millisecond))

	var got []string
	for len(got) < 2 {
		select {
		case id := <-fired:
			got = append(got, id)
		case <-time.After(2 * time.Second):
			t.Fatalf("only %d of 2 reminders fired", len(got))
		}
	}
	assert.Equal(t, []string{first.ID, second.ID}, got)
}

func TestSchedulerDoubleScheduleFiresOnce(t *testing.T) {
	store := NewStore()
	fired := make(chan string, 4)
	s := NewScheduler(store, func(r Reminder) { fired <- r.ID })

	r := New("call mom", nil, time.Now())
	require.NoError(t, store.Add(r))

	s.Schedule(r.ID, time.Now().Add(-time.Second))
	s.Schedule(r.ID, time.Now().Add(-time.Second))

	assert.Len(t, fired, 1, "triggered flag must gate the second fire")
}

func TestSchedulerUnknownIDIsHarmless(t *testing.T) {
	store := NewStore()
	fired := make(chan string, 1)
	s := NewScheduler(store, func(r Reminder) { fired <- r.ID })

	s.Schedule("missing", time.Now().Add(-time.Second))
	assert.Len(t, fired, 0)
}
