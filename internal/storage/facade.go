package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go.uber.org/zap"
)

// Facade reads and writes whole JSON collections under namespaced keys.
// Failures never escape: Get reports a miss, Set reports false.
type Facade struct {
	backend   Backend
	namespace string
	log       *zap.Logger
}

func NewFacade(backend Backend, namespace string, log *zap.Logger) *Facade {
	if log == nil {
		log = zap.NewNop()
	}
	return &Facade{
		backend:   backend,
		namespace: namespace,
		log:       log.Named("storage"),
	}
}

func (f *Facade) key(k string) string {
	return f.namespace + "_" + k
}

// Get decodes the collection stored under key into out. It returns false
// when the key is absent or the payload cannot be decoded; out is then left
// untouched and callers fall back to an empty collection.
func (f *Facade) Get(ctx context.Context, key string, out any) bool {
	raw, ok, err := f.backend.Load(ctx, f.key(key))
	if err != nil {
		f.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		f.log.Warn("stored collection is not valid JSON",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Set serializes v and writes it under key, replacing whatever was there.
func (f *Facade) Set(ctx context.Context, key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		f.log.Error("collection serialization failed", zap.String("key", key), zap.Error(err))
		return false
	}

	if err := f.backend.Save(ctx, f.key(key), raw); err != nil {
		fields := []zap.Field{zap.String("key", key), zap.Int("bytes", len(raw)), zap.Error(err)}
		if errors.Is(err, ErrQuotaExceeded) {
			f.log.Error("storage quota exceeded", fields...)
		} else {
			f.log.Error("storage write failed", fields...)
		}
		return false
	}
	return true
}

// Snapshot returns every collection in the namespace keyed without the
// namespace prefix.
func (f *Facade) Snapshot(ctx context.Context) (map[string]json.RawMessage, error) {
	prefix := f.namespace + "_"
	keys, err := f.backend.Keys(ctx, prefix)
	if err != nil {
		return nil, err
	}

	out := make(map[string]json.RawMessage, len(keys))
	for _, k := range keys {
		raw, ok, err := f.backend.Load(ctx, k)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		out[strings.TrimPrefix(k, prefix)] = json.RawMessage(raw)
	}
	return out, nil
}

func (f *Facade) Namespace() string {
	return f.namespace
}
