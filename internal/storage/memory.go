package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
)

var _ Backend = (*MemoryBackend)(nil)

// MemoryBackend keeps the keyspace in process memory. A non-zero quota caps
// the total number of stored bytes, mirroring a browser storage limit.
type MemoryBackend struct {
	mu    sync.RWMutex
	data  map[string][]byte
	quota int
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{data: map[string][]byte{}}
}

func NewMemoryBackendWithQuota(quota int) *MemoryBackend {
	b := NewMemoryBackend()
	b.quota = quota
	return b
}

func (m *MemoryBackend) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *MemoryBackend) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.quota > 0 {
		used := 0
		for k, v := range m.data {
			if k != key {
				used += len(v)
			}
		}
		if used+len(value) > m.quota {
			return ErrQuotaExceeded
		}
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *MemoryBackend) Keys(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Put stores a raw value, bypassing serialization. Tests use it to seed
// corrupted or legacy payloads.
func (m *MemoryBackend) Put(key string, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = []byte(value)
}
