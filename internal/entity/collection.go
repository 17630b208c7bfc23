package entity

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/ids"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

var ErrStorageWrite = httperr.ErrBusiness("storage_write_failed")

// Collection is one entity type's flat record list in the keyspace.
// Every read passes records through migrate, so callers always see the
// current schema.
type Collection[T models.Record] struct {
	ks       *Keyspace
	kind     models.Kind
	migrate  func(*T)
	notFound string
}

func NewCollection[T models.Record](ks *Keyspace, kind models.Kind, migrate func(*T), notFoundCode string) *Collection[T] {
	return &Collection[T]{
		ks:       ks,
		kind:     kind,
		migrate:  migrate,
		notFound: notFoundCode,
	}
}

func (c *Collection[T]) Kind() models.Kind {
	return c.kind
}

// All returns every record, or an empty slice when nothing is stored or the
// stored payload is unreadable.
func (c *Collection[T]) All(ctx context.Context) []T {
	var items []T
	if !c.ks.store.Get(ctx, c.kind.Key(), &items) || items == nil {
		return []T{}
	}
	if c.migrate != nil {
		for i := range items {
			c.migrate(&items[i])
		}
	}
	return items
}

func (c *Collection[T]) Find(ctx context.Context, id string) (T, bool) {
	for _, it := range c.All(ctx) {
		if it.RecordID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// ==================================
// Writes (caller holds the keyspace lock)
// ==================================

// SaveLocked stamps and writes the whole collection.
func (c *Collection[T]) SaveLocked(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	if c.migrate != nil {
		for i := range items {
			c.migrate(&items[i])
		}
	}
	if !c.ks.store.Set(ctx, c.kind.Key(), items) {
		c.ks.log.Warn("collection not saved", zap.String("kind", string(c.kind)), zap.Int("records", len(items)))
		return ErrStorageWrite
	}
	return nil
}

// NextIDLocked computes the next ID from the records in items.
func (c *Collection[T]) NextIDLocked(items []T) string {
	existing := make([]string, 0, len(items))
	for _, it := range items {
		existing = append(existing, it.RecordID())
	}
	return ids.Next(c.kind.Prefix(), existing)
}

// ==================================
// Writes (self-locking)
// ==================================

// Mutate loads the collection, applies fn and writes the result back.
// Nothing is written when fn fails.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) error {
	return c.ks.Atomic(ctx, func(ctx context.Context) error {
		out, err := fn(c.All(ctx))
		if err != nil {
			return err
		}
		return c.SaveLocked(ctx, out)
	})
}

// Insert appends the record produced by build, which receives the next ID
// and the current collection for uniqueness checks.
func (c *Collection[T]) Insert(ctx context.Context, build func(id string, existing []T) (T, error)) (T, error) {
	var created T
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		rec, err := build(c.NextIDLocked(items), items)
		if err != nil {
			return nil, err
		}
		created = rec
		return append(items, rec), nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return created, nil
}

// Update applies fn to the record with the given id.
func (c *Collection[T]) Update(ctx context.Context, id string, fn func(rec *T, all []T) error) (T, error) {
	var updated T
	err := c.Mutate(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if items[i].RecordID() != id {
				continue
			}
			if err := fn(&items[i], items); err != nil {
				return nil, err
			}
			updated = items[i]
			return items, nil
		}
		return nil, httperr.ErrBusiness(c.notFound)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return updated, nil
}

// Delete removes the record with the given id by filtering and rewriting.
func (c *Collection[T]) Delete(ctx context.Context, id string) error {
	return c.Mutate(ctx, func(items []T) ([]T, error) {
		out := make([]T, 0, len(items))
		for _, it := range items {
			if it.RecordID() != id {
				out = append(out, it)
			}
		}
		if len(out) == len(items) {
			return nil, httperr.ErrBusiness(c.notFound)
		}
		return out, nil
	})
}

// Replace overwrites the whole collection.
func (c *Collection[T]) Replace(ctx context.Context, items []T) error {
	return c.ks.Atomic(ctx, func(ctx context.Context) error {
		return c.SaveLocked(ctx, items)
	})
}
