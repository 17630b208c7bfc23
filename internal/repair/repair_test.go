package repair

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
)

func seed(t *testing.T) (*entity.Stores, *Repairer, *notify.Recorder, *notify.Dispatcher) {
	t.Helper()
	ctx := context.Background()

	ks := entity.NewKeyspace(storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil), nil)
	stores := entity.NewStores(ks)

	_ = stores.Patients.Replace(ctx, []models.Patient{
		{ID: "p-01", Name: "Sana Malik", Phone: "03001234567", Email: "sana@example.com"},
		{ID: "p-02", Name: "Bilal Ahmed", Phone: "03219876543"},
		{ID: "p-03", Name: "Afzal", Phone: "03360121211"},
	})
	_ = stores.Appointments.Replace(ctx, []models.Appointment{
		{ID: "a-01", PatientID: "p-01", Date: "2025-01-10", Time: "10:00"},
		{ID: "a-02", PatientID: "Sana Malik sana@example.com 0300", Date: "2025-01-10", Time: "11:00"},
		{ID: "a-03", PatientID: "bilal-03219876543", Date: "2025-01-10", Time: "12:00"},
		{ID: "a-04", PatientID: "xxBilal Ahmed!!", Date: "2025-01-10", Time: "13:00"},
		{ID: "a-05", PatientID: "Afzal", Date: "2025-01-10", Time: "14:00"},
		{ID: "a-09", PatientID: "ghost-1", Date: "2025-01-10", Time: "15:00"},
	})

	rec := &notify.Recorder{}
	d := notify.NewDispatcher(nil, rec)
	return stores, New(stores, d, nil), rec, d
}

func TestRunRepairsThenPrunes(t *testing.T) {
	ctx := context.Background()
	stores, r, rec, d := seed(t)

	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	d.Close()

	if len(res.Repaired) != 4 {
		t.Fatalf("repaired = %v, want 4", res.Repaired)
	}
	if len(res.Pruned) != 1 || res.Pruned[0] != "a-09" {
		t.Fatalf("pruned = %v, want [a-09]", res.Pruned)
	}

	want := map[string]string{"a-01": "p-01", "a-02": "p-01", "a-03": "p-02", "a-04": "p-02", "a-05": "p-03"}
	got := stores.Appointments.All(ctx)
	if len(got) != len(want) {
		t.Fatalf("appointments = %+v", got)
	}
	for _, a := range got {
		if a.ID == "a-09" {
			t.Fatalf("a-09 should have been pruned")
		}
		if want[a.ID] != a.PatientID {
			t.Fatalf("%s -> %s, want %s", a.ID, a.PatientID, want[a.ID])
		}
	}

	if n := len(rec.Events()); n != 2 {
		t.Fatalf("notifications = %d, want 2", n)
	}
}

func TestRunIsIdempotent(t *testing.T) {
	ctx := context.Background()
	stores, r, _, d := seed(t)
	defer d.Close()

	if _, err := r.Run(ctx); err != nil {
		t.Fatalf("first Run: %v", err)
	}
	before := stores.Appointments.All(ctx)

	res, err := r.Run(ctx)
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if res.Changed() {
		t.Fatalf("second run changed data: %+v", res)
	}

	after := stores.Appointments.All(ctx)
	if len(before) != len(after) {
		t.Fatalf("collection changed: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].PatientID != after[i].PatientID {
			t.Fatalf("record %s changed", before[i].ID)
		}
	}
}

func TestAmbiguousNameIsNotRecovered(t *testing.T) {
	idx := NewIndex([]models.Patient{
		{ID: "p-01", Name: "Ali Khan"},
		{ID: "p-02", Name: "Ali Khan"},
	})
	if _, ok := idx.Recover("Ali Khan"); ok {
		t.Fatalf("duplicate names must not resolve")
	}
}

func TestPhoneTokenLength(t *testing.T) {
	idx := NewIndex([]models.Patient{{ID: "p-01", Phone: "0300123456789"}})
	if _, ok := idx.Recover("x0300123456789x"); ok {
		t.Fatalf("13 digit runs are not phone tokens")
	}
}

func TestPurePassesDoNotMutateInput(t *testing.T) {
	idx := NewIndex([]models.Patient{{ID: "p-01", Email: "a@b.co"}})
	in := []models.Appointment{{ID: "a-01", PatientID: "a@b.co"}}

	out, changed := Repair(in, idx)
	if len(changed) != 1 || out[0].PatientID != "p-01" {
		t.Fatalf("repair failed: %+v", out)
	}
	if in[0].PatientID != "a@b.co" {
		t.Fatalf("input mutated")
	}
}

func TestInternationalPhoneIsRecovered(t *testing.T) {
	idx := NewIndex([]models.Patient{
		{ID: "p-01", Phone: "+923001234567"},
		{ID: "p-02", Phone: "+92 311-7654321"},
	})
	if id, ok := idx.Recover("Unknown 923001234567"); !ok || id != "p-01" {
		t.Fatalf("recover = %q, %v", id, ok)
	}
	if id, ok := idx.Recover("923117654321"); !ok || id != "p-02" {
		t.Fatalf("recover = %q, %v", id, ok)
	}
	if id, ok := idx.Resolve("", "", "+923001234567", ""); !ok || id != "p-01" {
		t.Fatalf("resolve = %q, %v", id, ok)
	}
}
