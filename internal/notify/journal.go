package notify

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/storage"
)

const journalKey = "notifications"

// Journal keeps the most recent events in the keyspace so the UI can show
// what happened while it was closed.
type Journal struct {
	mu    sync.Mutex
	store *storage.Facade
	limit int
}

func NewJournal(store *storage.Facade, limit int) *Journal {
	if limit <= 0 {
		limit = 200
	}
	return &Journal{store: store, limit: limit}
}

func (j *Journal) Publish(ev Event) {
	j.mu.Lock()
	defer j.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var events []Event
	j.store.Get(ctx, journalKey, &events)

	events = append(events, ev)
	if len(events) > j.limit {
		events = events[len(events)-j.limit:]
	}
	j.store.Set(ctx, journalKey, events)
}

// Recent returns up to n events, newest first.
func (j *Journal) Recent(ctx context.Context, n int) []Event {
	j.mu.Lock()
	defer j.mu.Unlock()

	var events []Event
	j.store.Get(ctx, journalKey, &events)

	out := make([]Event, 0, n)
	for i := len(events) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, events[i])
	}
	return out
}
