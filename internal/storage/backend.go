package storage

import (
	"context"
	"errors"
)

// ErrQuotaExceeded is returned by a backend that has run out of room.
var ErrQuotaExceeded = errors.New("storage: quota exceeded")

// Backend is the raw keyspace behind the Facade. Keys arrive already
// namespaced; values are opaque serialized collections.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Save(ctx context.Context, key string, value []byte) error
	Keys(ctx context.Context, prefix string) ([]string, error)
}
