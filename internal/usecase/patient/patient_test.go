package patient

import (
	"context"
	"testing"
	"time"

	appointmentdomain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	domain "github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
	"github.com/BruksfildServices01/dental-admin/internal/usecase/appointment"
)

func newStores() *entity.Stores {
	ks := entity.NewKeyspace(storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil), nil)
	return entity.NewStores(ks)
}

func clock() *timezone.Clock {
	return timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 9, 5, 0, 0, 0, time.UTC))
}

func TestCreateRejectsDuplicatePhone(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	create := NewCreatePatient(stores.Patients, clock(), nil)

	if _, err := create.Execute(ctx, domain.Input{Name: "Sana", Phone: "03001234567"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := create.Execute(ctx, domain.Input{Name: "Someone Else", Phone: "03001234567"})
	if !httperr.IsBusiness(err, "duplicate_phone") {
		t.Fatalf("err = %v, want duplicate_phone", err)
	}
	if n := len(stores.Patients.All(ctx)); n != 1 {
		t.Fatalf("patients = %d, want 1", n)
	}
}

func TestCreateValidationLeavesStoreUntouched(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	create := NewCreatePatient(stores.Patients, clock(), nil)

	_, err := create.Execute(ctx, domain.Input{Name: "Sana", Phone: "12", Email: "bad"})
	if !httperr.IsValidation(err) {
		t.Fatalf("err = %v", err)
	}
	if n := len(stores.Patients.All(ctx)); n != 0 {
		t.Fatalf("patients = %d, want 0", n)
	}
}

func TestUpdateChecksPhoneAgainstOthers(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	create := NewCreatePatient(stores.Patients, clock(), nil)
	update := NewUpdatePatient(stores.Patients, clock(), nil)

	a, _ := create.Execute(ctx, domain.Input{Name: "A", Phone: "03001111111"})
	_, _ = create.Execute(ctx, domain.Input{Name: "B", Phone: "03002222222"})

	if _, err := update.Execute(ctx, a.ID, domain.Input{Name: "A", Phone: "03001111111", Status: "Inactive"}); err != nil {
		t.Fatalf("keeping own phone: %v", err)
	}
	if _, err := update.Execute(ctx, a.ID, domain.Input{Name: "A", Phone: "03002222222"}); !httperr.IsBusiness(err, "duplicate_phone") {
		t.Fatalf("err = %v", err)
	}

	got, _ := stores.Patients.Find(ctx, a.ID)
	if got.Status != domain.StatusInactive {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestDeletePatientPrunesItsAppointments(t *testing.T) {
	ctx := context.Background()
	stores := newStores()
	c := clock()

	createPatient := NewCreatePatient(stores.Patients, c, nil)
	createAppt := appointment.NewCreateAppointment(stores.Appointments, stores.Patients, c, appointmentdomain.DefaultHours(), nil)
	deletePatient := NewDeletePatient(stores.Patients, repair.New(stores, nil, nil), nil)

	p, err := createPatient.Execute(ctx, domain.Input{Name: "Afzal", Phone: "03360121211"})
	if err != nil {
		t.Fatalf("create patient: %v", err)
	}
	if p.ID != "p-01" || p.Status != "Active" {
		t.Fatalf("patient = %+v", p)
	}
	if n := len(stores.Patients.All(ctx)); n != 1 {
		t.Fatalf("patients = %d, want 1", n)
	}

	ap, err := createAppt.Execute(ctx, appointmentdomain.Input{PatientID: "p-01", Date: "2025-01-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("create appointment: %v", err)
	}
	if ap.PatientID != "p-01" || ap.Duration != 60 || ap.Status != "scheduled" {
		t.Fatalf("appointment = %+v", ap)
	}
	if n := len(stores.Appointments.All(ctx)); n != 1 {
		t.Fatalf("appointments = %d, want 1", n)
	}

	res, err := deletePatient.Execute(ctx, "p-01")
	if err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if len(res.Pruned) != 1 || res.Pruned[0] != ap.ID {
		t.Fatalf("pruned = %v", res.Pruned)
	}
	if n := len(stores.Appointments.All(ctx)); n != 0 {
		t.Fatalf("appointments = %d, want 0", n)
	}
}

func TestDeleteUnknownPatient(t *testing.T) {
	stores := newStores()
	uc := NewDeletePatient(stores.Patients, repair.New(stores, nil, nil), nil)

	if _, err := uc.Execute(context.Background(), "p-42"); !httperr.IsBusiness(err, "patient_not_found") {
		t.Fatalf("err = %v", err)
	}
}
