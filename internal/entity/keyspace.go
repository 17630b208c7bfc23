package entity

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/storage"
)

// Keyspace serialises every read-all/modify/write-all mutation. There is
// exactly one writer at a time across all collections.
type Keyspace struct {
	mu    sync.Mutex
	store *storage.Facade
	log   *zap.Logger
}

func NewKeyspace(store *storage.Facade, log *zap.Logger) *Keyspace {
	if log == nil {
		log = zap.NewNop()
	}
	return &Keyspace{store: store, log: log.Named("entity")}
}

func (k *Keyspace) Store() *storage.Facade {
	return k.store
}

// Atomic runs fn while holding the writer lock. fn must use the *Locked
// collection methods; calling Mutate from inside would deadlock.
func (k *Keyspace) Atomic(ctx context.Context, fn func(ctx context.Context) error) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	return fn(ctx)
}
