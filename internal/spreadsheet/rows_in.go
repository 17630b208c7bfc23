package spreadsheet

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
)

var ErrMissingDateTime = httperr.ErrBusiness("import_missing_date_time")

// Report is what an import tells the operator. Row numbers in Errors are
// 1-based spreadsheet lines, header included.
type Report struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}

func (r *Report) skip(line int, reason string) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("row %d: %s", line, reason))
}

// ======================================================
// Patients
// ======================================================

// PatientsFromRows needs a name and a phone on every row it keeps. IDs are
// left blank for the caller to assign.
func PatientsFromRows(rows [][]string, today string, now time.Time) ([]models.Patient, Report) {
	var rep Report
	if len(rows) == 0 {
		return []models.Patient{}, rep
	}

	h := newHeader(rows[0])
	var (
		colID      = h.index("id", "patient id", "patientid")
		colName    = h.index("name", "patient name", "full name", "patient")
		colPhone   = h.index("phone", "phone number", "mobile", "contact", "contact number")
		colEmail   = h.index("email", "email address")
		colDOB     = h.index("dob", "date of birth", "birth date")
		colAddress = h.index("address")
		colGender  = h.index("gender")
		colStatus  = h.index("status")
		colHistory = h.index("medical history", "history")
	)

	out := []models.Patient{}
	for i, row := range rows[1:] {
		line := i + 2
		if blankRow(row) {
			continue
		}

		name := cellValue(row, colName)
		phone := cellValue(row, colPhone)
		if name == "" || phone == "" {
			rep.skip(line, "name and phone are required")
			continue
		}

		p := models.Patient{
			ID:             cellValue(row, colID),
			Name:           name,
			Phone:          phone,
			Email:          cellValue(row, colEmail),
			Address:        cellValue(row, colAddress),
			Gender:         cellValue(row, colGender),
			Status:         cellValue(row, colStatus),
			MedicalHistory: cellValue(row, colHistory),
			AddDate:        today,
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		if raw := cellValue(row, colDOB); raw != "" {
			dob, ok := ParseDate(raw)
			if !ok {
				rep.skip(line, "unreadable date of birth "+strconv.Quote(raw))
				continue
			}
			p.DOB = dob
			p.Age = patient.Age(dob, now)
		}
		if p.Status == "" {
			p.Status = patient.StatusActive
		}

		out = append(out, p)
		rep.Imported++
	}
	return out, rep
}

// ======================================================
// Appointments
// ======================================================

// AppointmentsFromRows rejects the whole file unless it has both a date and
// a time column. Rows need a readable date and time, a priority and a
// patient the index can resolve.
func AppointmentsFromRows(rows [][]string, idx *repair.Index, now time.Time) ([]models.Appointment, Report, error) {
	var rep Report
	if len(rows) == 0 {
		return nil, rep, ErrMissingDateTime
	}

	h := newHeader(rows[0])
	colDate := h.index("date", "appointment date")
	if colDate < 0 {
		colDate = h.containing("date", "birth", "created", "due", "paid", "updated")
	}
	colTime := h.index("time", "appointment time")
	if colTime < 0 {
		colTime = h.containing("time", "created", "updated")
	}
	if colDate < 0 || colTime < 0 {
		return nil, rep, ErrMissingDateTime
	}

	var (
		colID        = h.index("id", "appointment id")
		colPatientID = h.index("patient id", "patientid")
		colName      = h.index("patient", "patient name", "name")
		colEmail     = h.index("email", "patient email")
		colPhone     = h.index("phone", "patient phone", "phone number", "mobile", "contact")
		colDuration  = h.index("duration", "duration (min)", "duration mins")
		colTreatment = h.index("treatment", "procedure", "service")
		colStatus    = h.index("status")
		colPriority  = h.index("priority")
		colNotes     = h.index("notes", "note")
		colReminder  = h.index("reminder")
	)

	out := []models.Appointment{}
	for i, row := range rows[1:] {
		line := i + 2
		if blankRow(row) {
			continue
		}

		priority := cellValue(row, colPriority)
		if priority == "" {
			rep.skip(line, "priority is required")
			continue
		}

		date, ok := ParseDate(cellValue(row, colDate))
		if !ok {
			rep.skip(line, "unreadable date "+strconv.Quote(cellValue(row, colDate)))
			continue
		}
		tm, ok := ParseTime(cellValue(row, colTime))
		if !ok {
			rep.skip(line, "unreadable time "+strconv.Quote(cellValue(row, colTime)))
			continue
		}

		pid, ok := idx.Resolve(
			cellValue(row, colPatientID),
			cellValue(row, colEmail),
			cellValue(row, colPhone),
			cellValue(row, colName),
		)
		if !ok {
			rep.skip(line, "no matching patient")
			continue
		}

		duration := appointment.DefaultDuration
		if raw := cellValue(row, colDuration); raw != "" {
			if n, err := strconv.Atoi(strings.Fields(raw)[0]); err == nil && n > 0 {
				duration = n
			}
		}

		out = append(out, models.Appointment{
			ID:        cellValue(row, colID),
			PatientID: pid,
			Date:      date,
			Time:      tm,
			Duration:  duration,
			Treatment: cellValue(row, colTreatment),
			Status:    string(appointment.NormalizeStatus(cellValue(row, colStatus))),
			Priority:  priority,
			Notes:     cellValue(row, colNotes),
			Reminder:  cellValue(row, colReminder),
			CreatedAt: now,
			UpdatedAt: now,
		})
		rep.Imported++
	}
	return out, rep, nil
}

// ======================================================
// Invoices
// ======================================================

// InvoicesFromRows takes the patient from a patient id column, falling back
// to the first column. A row whose total is zero or unreadable is rejected.
// Invoice numbers are left for the caller.
func InvoicesFromRows(rows [][]string, idx *repair.Index, today string, now time.Time) ([]models.Invoice, Report) {
	var rep Report
	if len(rows) == 0 {
		return []models.Invoice{}, rep
	}

	h := newHeader(rows[0])
	colPatient := h.index("patient id", "patientid")
	if colPatient < 0 {
		colPatient = h.index("patient", "patient name")
	}
	if colPatient < 0 {
		colPatient = 0
	}
	colDate := h.index("date", "invoice date")
	if colDate < 0 {
		colDate = h.containing("date", "due", "paid", "birth", "created")
	}
	var (
		colNumber    = h.index("invoice number", "invoice no", "invoice")
		colDue       = h.index("due date", "due")
		colTotal     = h.index("total", "amount", "total amount", "grand total")
		colDiscount  = h.index("discount", "total discount")
		colStatus    = h.index("status")
		colMethod    = h.index("payment method", "method")
		colReceipt   = h.index("receipt number", "receipt")
		colTreatment = h.index("treatment", "treatments")
		colNotes     = h.index("notes", "note")
	)

	out := []models.Invoice{}
	for i, row := range rows[1:] {
		line := i + 2
		if blankRow(row) {
			continue
		}

		total, ok := parseAmount(cellValue(row, colTotal))
		if !ok || total == 0 {
			rep.skip(line, "total must be a non-zero amount")
			continue
		}

		date := today
		if raw := cellValue(row, colDate); raw != "" {
			if date, ok = ParseDate(raw); !ok {
				rep.skip(line, "unreadable date "+strconv.Quote(raw))
				continue
			}
		}
		due := ""
		if raw := cellValue(row, colDue); raw != "" {
			due, _ = ParseDate(raw)
		}

		ref := cellValue(row, colPatient)
		pid, ok := idx.Resolve(ref, "", "", ref)
		if !ok {
			pid = ref
		}

		discount, _ := parseAmount(cellValue(row, colDiscount))
		kind := cellValue(row, colTreatment)
		if kind == "" {
			kind = "Imported"
		}

		status := billing.StatusUnpaid
		paidDate := ""
		if strings.EqualFold(cellValue(row, colStatus), billing.StatusPaid) {
			status = billing.StatusPaid
			paidDate = date
		}
		method := billing.MethodCash
		if strings.EqualFold(cellValue(row, colMethod), billing.MethodOnline) {
			method = billing.MethodOnline
		}

		inv := models.Invoice{
			InvoiceNumber: cellValue(row, colNumber),
			PatientID:     pid,
			Date:          date,
			DueDate:       due,
			Status:        status,
			PaymentMethod: method,
			ReceiptNumber: cellValue(row, colReceipt),
			Treatments:    []models.Treatment{{Type: kind, Amount: total + discount, Discount: discount}},
			Notes:         cellValue(row, colNotes),
			PaidDate:      paidDate,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		billing.ApplyTotals(&inv)

		out = append(out, inv)
		rep.Imported++
	}
	return out, rep
}

// parseAmount reads "Rs. 1,500.00" style amounts.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "Rs."), "Rs")
	s = strings.TrimSpace(strings.NewReplacer(",", "", "PKR", "").Replace(s))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
