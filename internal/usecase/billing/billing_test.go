package billing

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func TestCreateAndMarkPaid(t *testing.T) {
	ctx := context.Background()
	ks := entity.NewKeyspace(storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil), nil)
	stores := entity.NewStores(ks)
	c := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 12, 6, 0, 0, 0, time.UTC))

	create := NewCreateInvoice(stores.Invoices, c, nil)
	inv, err := create.Execute(ctx, domain.Input{
		PatientID:  "p-07",
		Date:       "2025-01-12",
		DueDate:    "2025-01-20",
		Treatments: []domain.TreatmentInput{{Type: "Scaling", Amount: 3000, Discount: 500}, {Type: "X-ray", Amount: 1000}},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if inv.ID != "b-01" || inv.InvoiceNumber != "INV-20250112-001" {
		t.Fatalf("ids = %s / %s", inv.ID, inv.InvoiceNumber)
	}
	if inv.Total != 3500 || inv.Status != "unpaid" || inv.PaymentMethod != "cash" {
		t.Fatalf("invoice = %+v", inv)
	}

	second, _ := create.Execute(ctx, domain.Input{
		PatientID:  "p-07",
		Date:       "2025-01-12",
		Treatments: []domain.TreatmentInput{{Type: "Filling", Amount: 2000}},
	})
	if second.InvoiceNumber != "INV-20250112-002" {
		t.Fatalf("second number = %s", second.InvoiceNumber)
	}

	paid, err := NewMarkInvoicePaid(stores.Invoices, c, nil).Execute(ctx, inv.ID)
	if err != nil {
		t.Fatalf("mark paid: %v", err)
	}
	if paid.Status != "paid" || paid.PaidDate != "2025-01-12" {
		t.Fatalf("paid = %+v", paid)
	}

	if err := NewDeleteInvoice(stores.Invoices, nil).Execute(ctx, "b-09"); !httperr.IsBusiness(err, "invoice_not_found") {
		t.Fatalf("delete unknown: %v", err)
	}
}
