package billing

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type Repository = entity.Repository[models.Invoice]

// ======================================================
// CREATE
// ======================================================

type CreateInvoice struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewCreateInvoice(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *CreateInvoice {
	return &CreateInvoice{repo: repo, clock: clock, notify: n}
}

// Execute stores a new invoice with totals computed from its treatments.
// The patient reference is not checked; invoices may outlive patients.
func (uc *CreateInvoice) Execute(ctx context.Context, in domain.Input) (models.Invoice, error) {
	if err := in.Validate(); err != nil {
		return models.Invoice{}, err
	}

	now := uc.clock.Now()
	today := now.Format(timezone.DateLayout)

	inv, err := uc.repo.Insert(ctx, func(id string, existing []models.Invoice) (models.Invoice, error) {
		inv := models.Invoice{
			ID:            id,
			InvoiceNumber: domain.NextInvoiceNumber(in.Date, existing),
			PatientID:     in.PatientID,
			Date:          in.Date,
			DueDate:       in.DueDate,
			Status:        in.Status,
			PaymentMethod: in.PaymentMethod,
			ReceiptNumber: strings.TrimSpace(in.ReceiptNumber),
			Treatments:    in.Items(),
			Notes:         in.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
			SchemaVersion: models.SchemaVersion,
		}
		if inv.Status == "" {
			inv.Status = domain.StatusUnpaid
		}
		if inv.PaymentMethod == "" {
			inv.PaymentMethod = domain.MethodCash
		}
		if inv.Status == domain.StatusPaid {
			inv.PaidDate = today
		}
		domain.ApplyTotals(&inv)
		return inv, nil
	})
	if err != nil {
		return models.Invoice{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "invoice_created",
		Entity:   string(models.KindInvoices),
		EntityID: inv.ID,
		Message:  "Invoice " + inv.InvoiceNumber + " created.",
	})
	return inv, nil
}

// ======================================================
// MARK PAID
// ======================================================

type MarkInvoicePaid struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewMarkInvoicePaid(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *MarkInvoicePaid {
	return &MarkInvoicePaid{repo: repo, clock: clock, notify: n}
}

func (uc *MarkInvoicePaid) Execute(ctx context.Context, id string) (models.Invoice, error) {
	inv, err := uc.repo.Update(ctx, id, func(inv *models.Invoice, _ []models.Invoice) error {
		if err := domain.MarkPaid(inv, uc.clock.Today()); err != nil {
			return err
		}
		inv.UpdatedAt = uc.clock.Now()
		return nil
	})
	if err != nil {
		return models.Invoice{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "invoice_paid",
		Entity:   string(models.KindInvoices),
		EntityID: inv.ID,
		Message:  "Invoice " + inv.InvoiceNumber + " marked paid.",
	})
	return inv, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteInvoice struct {
	repo   Repository
	notify *notify.Dispatcher
}

func NewDeleteInvoice(repo Repository, n *notify.Dispatcher) *DeleteInvoice {
	return &DeleteInvoice{repo: repo, notify: n}
}

func (uc *DeleteInvoice) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "invoice_deleted",
		Entity:   string(models.KindInvoices),
		EntityID: id,
		Message:  "Invoice deleted.",
	})
	return nil
}
