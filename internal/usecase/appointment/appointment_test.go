package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func setup(t *testing.T) (*entity.Stores, *timezone.Clock) {
	t.Helper()
	ks := entity.NewKeyspace(storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil), nil)
	stores := entity.NewStores(ks)
	_ = stores.Patients.Replace(context.Background(), []models.Patient{
		{ID: "p-01", Name: "Afzal", Phone: "03360121211"},
	})
	// 2025-01-10 08:30 in Karachi
	c := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 10, 3, 30, 0, 0, time.UTC))
	return stores, c
}

func TestCreateRequiresExistingPatient(t *testing.T) {
	stores, c := setup(t)
	uc := NewCreateAppointment(stores.Appointments, stores.Patients, c, domain.DefaultHours(), nil)

	_, err := uc.Execute(context.Background(), domain.Input{PatientID: "p-99", Date: "2025-01-10", Time: "10:00"})
	if !httperr.IsBusiness(err, "patient_not_found") {
		t.Fatalf("err = %v", err)
	}
}

func TestChangeStatusFollowsTransitions(t *testing.T) {
	ctx := context.Background()
	stores, c := setup(t)

	ap, err := NewCreateAppointment(stores.Appointments, stores.Patients, c, domain.DefaultHours(), nil).
		Execute(ctx, domain.Input{PatientID: "p-01", Date: "2025-01-10", Time: "10:00"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	change := NewChangeStatus(stores.Appointments, c, nil)
	if _, err := change.Execute(ctx, ap.ID, "completed"); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if _, err := change.Execute(ctx, ap.ID, "cancelled"); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("cancel after complete: %v", err)
	}
	if _, err := change.Execute(ctx, ap.ID, "archived"); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("unknown status: %v", err)
	}

	got, _ := stores.Appointments.Find(ctx, ap.ID)
	if got.Status != "completed" {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestSuggestSlotsUsesClinicClock(t *testing.T) {
	ctx := context.Background()
	stores, c := setup(t)
	_ = stores.Appointments.Replace(ctx, []models.Appointment{
		{ID: "a-01", PatientID: "p-01", Date: "2025-01-10", Time: "09:00", Duration: 60, Status: "scheduled"},
	})

	uc := NewSuggestSlots(stores.Appointments, c, domain.Hours{Open: "09:00", Close: "12:00"})
	slots, err := uc.Execute(ctx, SuggestSlotsInput{Date: "2025-01-10", Duration: 60})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(slots) != 2 || slots[0].Start != "10:00" || slots[1].Start != "11:00" {
		t.Fatalf("slots = %+v", slots)
	}

	if _, err := uc.Execute(ctx, SuggestSlotsInput{Date: "10/01/2025"}); !httperr.IsBusiness(err, "invalid_date") {
		t.Fatalf("err = %v", err)
	}
}

func TestListByDateAndMonth(t *testing.T) {
	ctx := context.Background()
	stores, c := setup(t)
	_ = stores.Appointments.Replace(ctx, []models.Appointment{
		{ID: "a-01", PatientID: "p-01", Date: "2025-01-10", Time: "15:00"},
		{ID: "a-02", PatientID: "p-01", Date: "2025-01-10", Time: "09:30"},
		{ID: "a-03", PatientID: "p-01", Date: "2025-02-01", Time: "09:30"},
	})

	today, err := NewListAppointmentsByDate(stores.Appointments, stores.Patients, c).Execute(ctx, "")
	if err != nil {
		t.Fatalf("by date: %v", err)
	}
	if len(today) != 2 || today[0].ID != "a-02" || today[0].PatientName != "Afzal" {
		t.Fatalf("today = %+v", today)
	}

	feb, err := NewListAppointmentsByMonth(stores.Appointments, stores.Patients).Execute(ctx, 2025, 2)
	if err != nil {
		t.Fatalf("by month: %v", err)
	}
	if len(feb) != 1 || feb[0].ID != "a-03" {
		t.Fatalf("feb = %+v", feb)
	}
}

func TestAppointmentsMustFitClinicHours(t *testing.T) {
	ctx := context.Background()
	stores, c := setup(t)
	hours := domain.Hours{Open: "09:00", Close: "18:00"}
	create := NewCreateAppointment(stores.Appointments, stores.Patients, c, hours, nil)

	for _, in := range []domain.Input{
		{PatientID: "p-01", Date: "2025-01-10", Time: "08:30"},
		{PatientID: "p-01", Date: "2025-01-10", Time: "17:30"},
		{PatientID: "p-01", Date: "2025-01-10", Time: "17:00", Duration: 90},
	} {
		if _, err := create.Execute(ctx, in); !httperr.IsBusiness(err, "outside_clinic_hours") {
			t.Fatalf("%s +%d: err = %v", in.Time, in.Duration, err)
		}
	}

	ap, err := create.Execute(ctx, domain.Input{PatientID: "p-01", Date: "2025-01-10", Time: "17:00"})
	if err != nil {
		t.Fatalf("last slot: %v", err)
	}

	update := NewUpdateAppointment(stores.Appointments, stores.Patients, c, hours, nil)
	if _, err := update.Execute(ctx, ap.ID, domain.Input{PatientID: "p-01", Date: "2025-01-10", Time: "20:00"}); !httperr.IsBusiness(err, "outside_clinic_hours") {
		t.Fatalf("update err = %v", err)
	}
	if _, err := update.Execute(ctx, ap.ID, domain.Input{PatientID: "p-77", Date: "2025-01-10", Time: "10:00"}); !httperr.IsBusiness(err, "patient_not_found") {
		t.Fatalf("update err = %v", err)
	}

	got, _ := stores.Appointments.Find(ctx, ap.ID)
	if got.Time != "17:00" || got.PatientID != "p-01" {
		t.Fatalf("failed updates changed the record: %+v", got)
	}
	if n := len(stores.Appointments.All(ctx)); n != 1 {
		t.Fatalf("appointments = %d", n)
	}
}
