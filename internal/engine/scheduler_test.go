package engine

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchedulerValidatesTime(t *testing.T) {
	eng, _ := newTestEngine(newMockStore())

	tests := []struct {
		at      string
		wantErr bool
	}{
		{"23:59", false},
		{"00:00", false},
		{"09:30", false},
		{"24:00", true},
		{"9:3", true},
		{"midnight", true},
		{"", true},
	}

	for _, tt := range tests {
		_, err := NewScheduler(eng, tt.at, slog.Default())
		if tt.wantErr {
			assert.Error(t, err, "at=%q", tt.at)
		} else {
			assert.NoError(t, err, "at=%q", tt.at)
		}
	}
}

func TestSchedulerFiresOnlyAtConfiguredMinute(t *testing.T) {
	store := newMockStore()
	eng, _ := newTestEngine(store)
	eng.ProcessMessage(context.Background(), incoming(1, "сообщение"))

	sched, err := NewScheduler(eng, "23:59", slog.Default())
	require.NoError(t, err)

	clock := time.Date(2026, 8, 30, 23, 58, 0, 0, time.UTC)
	sched.now = func() time.Time { return clock }
	eng.now = sched.now

	sched.tick()
	assert.Empty(t, store.reports, "must not fire before the configured time")

	clock = time.Date(2026, 8, 30, 23, 59, 5, 0, time.UTC)
	sched.tick()
	require.Len(t, store.reports["2026-08-30"], 1)

	// A second poll within the same minute must not double-fire.
	clock = time.Date(2026, 8, 30, 23, 59, 45, 0, time.UTC)
	sched.tick()
	assert.Len(t, store.reports["2026-08-30"], 1)
}

func TestSchedulerFiresAgainNextDay(t *testing.T) {
	store := newMockStore()
	eng, _ := newTestEngine(store)

	sched, err := NewScheduler(eng, "23:59", slog.Default())
	require.NoError(t, err)

	clock := time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)
	sched.now = func() time.Time { return clock }
	eng.now = sched.now
	eng.ProcessMessage(context.Background(), incoming(1, "сообщение"))

	sched.tick()
	require.Len(t, store.reports["2026-08-30"], 1)

	clock = time.Date(2026, 8, 31, 23, 59, 0, 0, time.UTC)
	next := incoming(2, "сообщение")
	next.Timestamp = clock
	eng.ProcessMessage(context.Background(), next)
	sched.tick()
	require.Len(t, store.reports["2026-08-31"], 1)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	eng, _ := newTestEngine(newMockStore())
	sched, err := NewScheduler(eng, "23:59", slog.Default())
	require.NoError(t, err)
	sched.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- sched.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancellation")
	}
}
