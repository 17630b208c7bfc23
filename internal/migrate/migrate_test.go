package migrate

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

func TestPatientDefaultsLegacyRecord(t *testing.T) {
	p := models.Patient{
		ID:        "p-01",
		CreatedAt: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC),
	}
	Patient(&p)

	if p.Status != "Active" {
		t.Fatalf("status = %q, want Active", p.Status)
	}
	if p.AddDate != "2024-02-01" {
		t.Fatalf("addDate = %q", p.AddDate)
	}
	if p.SchemaVersion != models.SchemaVersion {
		t.Fatalf("version = %d", p.SchemaVersion)
	}
}

func TestPatientNormalisesCasing(t *testing.T) {
	p := models.Patient{Status: "inactive", SchemaVersion: 1}
	Patient(&p)
	if p.Status != "Inactive" {
		t.Fatalf("status = %q, want Inactive", p.Status)
	}
}

func TestCurrentVersionIsLeftAlone(t *testing.T) {
	a := models.Appointment{Status: "", Duration: 0, SchemaVersion: models.SchemaVersion}
	Appointment(&a)
	if a.Duration != 0 || a.Status != "" {
		t.Fatalf("current-version record was modified: %+v", a)
	}
}

func TestAppointmentDefaults(t *testing.T) {
	a := models.Appointment{Status: "Confirmed"}
	Appointment(&a)
	if a.Duration != 60 {
		t.Fatalf("duration = %d, want 60", a.Duration)
	}
	if a.Status != "confirmed" {
		t.Fatalf("status = %q", a.Status)
	}
}

func TestInvoiceRecomputesTotals(t *testing.T) {
	i := models.Invoice{
		Treatments: []models.Treatment{
			{Type: "Scaling", Amount: 3000, Discount: 500},
			{Type: "Filling", Amount: 2000},
		},
	}
	Invoice(&i)

	if i.Subtotal != 5000 || i.TotalDiscount != 500 || i.Total != 4500 {
		t.Fatalf("totals = %v/%v/%v", i.Subtotal, i.TotalDiscount, i.Total)
	}
	if i.Status != "unpaid" || i.PaymentMethod != "cash" {
		t.Fatalf("defaults = %q/%q", i.Status, i.PaymentMethod)
	}
}

func TestStaffAndSalaryDefaults(t *testing.T) {
	s := models.Staff{}
	Staff(&s)
	if s.Status != "active" {
		t.Fatalf("staff status = %q", s.Status)
	}

	sal := models.Salary{Amount: 50000}
	Salary(&sal)
	if sal.Status != "pending" || sal.NetSalary != 50000 {
		t.Fatalf("salary = %+v", sal)
	}
}

func TestIdempotent(t *testing.T) {
	p := models.Patient{Status: "active"}
	Patient(&p)
	first := p
	Patient(&p)
	if p != first {
		t.Fatalf("second migration changed the record: %+v vs %+v", p, first)
	}
}
