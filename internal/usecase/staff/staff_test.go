package staff

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func TestStaffLifecycle(t *testing.T) {
	ctx := context.Background()
	ks := entity.NewKeyspace(storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil), nil)
	stores := entity.NewStores(ks)
	c := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC))

	in := domain.Input{Name: "Dr Hina", Phone: "03004445556", Role: "Dentist", JoinDate: "2024-06-01"}
	s, err := NewCreateStaff(stores.Staff, c, nil).Execute(ctx, in)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s.ID != "s-01" || s.Status != "active" {
		t.Fatalf("staff = %+v", s)
	}

	in.Status = "leave"
	s, err = NewUpdateStaff(stores.Staff, c, nil).Execute(ctx, s.ID, in)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if s.Status != "leave" || s.LeaveStartDate != "2025-03-03" {
		t.Fatalf("staff = %+v", s)
	}

	if _, err := NewCreateStaff(stores.Staff, c, nil).Execute(ctx, domain.Input{Name: "X"}); !httperr.IsValidation(err) {
		t.Fatalf("err = %v", err)
	}

	if err := NewDeleteStaff(stores.Staff, nil).Execute(ctx, s.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if n := len(stores.Staff.All(ctx)); n != 0 {
		t.Fatalf("staff left = %d", n)
	}
}
