package entity

import (
	"context"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// Repository is what use cases need from a collection.
type Repository[T models.Record] interface {
	All(ctx context.Context) []T
	Find(ctx context.Context, id string) (T, bool)
	Insert(ctx context.Context, build func(id string, existing []T) (T, error)) (T, error)
	Update(ctx context.Context, id string, fn func(rec *T, all []T) error) (T, error)
	Delete(ctx context.Context, id string) error
	Replace(ctx context.Context, items []T) error
}

var (
	_ Repository[models.Patient]     = (*Collection[models.Patient])(nil)
	_ Repository[models.Appointment] = (*Collection[models.Appointment])(nil)
	_ Repository[models.Invoice]     = (*Collection[models.Invoice])(nil)
	_ Repository[models.Staff]       = (*Collection[models.Staff])(nil)
	_ Repository[models.Salary]      = (*Collection[models.Salary])(nil)
	_ Repository[models.Attendance]  = (*Collection[models.Attendance])(nil)
	_ Repository[models.Feedback]    = (*Collection[models.Feedback])(nil)
)

// Reader is the read side only, for lookups across entities.
type Reader[T models.Record] interface {
	All(ctx context.Context) []T
	Find(ctx context.Context, id string) (T, bool)
}
