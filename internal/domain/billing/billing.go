package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

const (
	StatusPaid   = "paid"
	StatusUnpaid = "unpaid"

	// DisplayOverdue is derived at render time and never stored.
	DisplayOverdue = "overdue"

	MethodCash   = "cash"
	MethodOnline = "online"
)

type TreatmentInput struct {
	Type     string  `json:"type" validate:"required"`
	Amount   float64 `json:"amount" validate:"gte=0"`
	Discount float64 `json:"discount" validate:"gte=0"`
}

type Input struct {
	PatientID     string           `json:"patientId" validate:"required"`
	Date          string           `json:"date" validate:"required,isodate"`
	DueDate       string           `json:"dueDate" validate:"omitempty,isodate"`
	Status        string           `json:"status" validate:"omitempty,oneof=paid unpaid"`
	PaymentMethod string           `json:"paymentMethod" validate:"omitempty,oneof=cash online card bank"`
	ReceiptNumber string           `json:"receiptNumber" validate:"required_if=PaymentMethod online"`
	Treatments    []TreatmentInput `json:"treatments" validate:"required,min=1,dive"`
	Notes         string           `json:"notes"`
}

func (in Input) Validate() error {
	ve := validators.Struct(in)
	for i, t := range in.Treatments {
		if t.Discount > t.Amount {
			ve.Add(fmt.Sprintf("treatments[%d].discount", i), "must not exceed the amount")
		}
	}
	if in.DueDate != "" && in.Date != "" && in.DueDate < in.Date {
		ve.Add("dueDate", "must not be before the invoice date")
	}
	return ve.Err()
}

func (in Input) Items() []models.Treatment {
	out := make([]models.Treatment, 0, len(in.Treatments))
	for _, t := range in.Treatments {
		out = append(out, models.Treatment{
			Type:     strings.TrimSpace(t.Type),
			Amount:   t.Amount,
			Discount: t.Discount,
		})
	}
	return out
}

// ApplyTotals recomputes subtotal, totalDiscount and total from treatments.
func ApplyTotals(inv *models.Invoice) {
	var sub, disc float64
	for _, t := range inv.Treatments {
		sub += t.Amount
		disc += t.Discount
	}
	inv.Subtotal = sub
	inv.TotalDiscount = disc
	inv.Total = sub - disc
	if inv.Total < 0 {
		inv.Total = 0
	}
}

// DisplayStatus is "overdue" for an unpaid invoice past its due date.
func DisplayStatus(inv models.Invoice, today string) string {
	if inv.Status == StatusUnpaid && inv.DueDate != "" && inv.DueDate < today {
		return DisplayOverdue
	}
	return inv.Status
}

func MarkPaid(inv *models.Invoice, today string) error {
	if inv.Status == StatusPaid {
		return httperr.ErrBusiness("invoice_already_paid")
	}
	inv.Status = StatusPaid
	inv.PaidDate = today
	return nil
}

var invoiceSeq = regexp.MustCompile(`^INV-(\d{8})-(\d+)$`)

// NextInvoiceNumber returns INV-<yyyymmdd>-<NNN>, numbering per day.
func NextInvoiceNumber(date string, existing []models.Invoice) string {
	day := strings.ReplaceAll(date, "-", "")
	max := 0
	for _, inv := range existing {
		m := invoiceSeq.FindStringSubmatch(inv.InvoiceNumber)
		if m == nil || m[1] != day {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n > max {
			max = n
		}
	}
	return fmt.Sprintf("INV-%s-%03d", day, max+1)
}

// ===============================
// Listing
// ===============================

type Category string

const (
	CategoryAll     Category = "all"
	CategoryPaid    Category = "paid"
	CategoryUnpaid  Category = "unpaid"
	CategoryOverdue Category = "overdue"
)

func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(s)); c {
	case CategoryPaid, CategoryUnpaid, CategoryOverdue:
		return c
	}
	return CategoryAll
}

func (c Category) Matches(inv models.Invoice, today string) bool {
	switch c {
	case CategoryPaid:
		return inv.Status == StatusPaid
	case CategoryUnpaid:
		return inv.Status == StatusUnpaid
	case CategoryOverdue:
		return DisplayStatus(inv, today) == DisplayOverdue
	}
	return true
}

// SearchFields takes the resolved patient name, "Unknown" when dangling.
func SearchFields(inv models.Invoice, patientName string) []string {
	return []string{inv.InvoiceNumber, patientName, inv.Status, inv.PaymentMethod, inv.Date}
}
