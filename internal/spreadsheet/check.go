package spreadsheet

import (
	"sort"
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/domain/attendance"
	"github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/domain/feedback"
	"github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/domain/salary"
	"github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
)

// A recordCheck vets one decoded JSON record before it is stored and may
// rewrite its references. A non-empty reason skips the record.
type recordCheck[T any] func(rec *T) string

// keepValid drops the records check rejects and counts the rest as imported.
func keepValid[T any](in []T, rep *Report, check recordCheck[T]) []T {
	kept := make([]T, 0, len(in))
	for i := range in {
		if reason := check(&in[i]); reason != "" {
			rep.skip(i+1, reason)
			continue
		}
		kept = append(kept, in[i])
	}
	rep.Imported = len(kept)
	return kept
}

func invalid(err error) string {
	fields := httperr.FieldErrors(err)
	if len(fields) == 0 {
		return ""
	}
	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid " + strings.Join(names, ", ")
}

// resolvePatient accepts a live patient ID or recovers one from a corrupted
// reference the way referential repair does.
func resolvePatient(idx *repair.Index, ref string) (string, bool) {
	if idx.Has(ref) {
		return ref, true
	}
	return idx.Recover(ref)
}

// ======================================================
// Per-kind checks
// ======================================================

func checkPatient(p *models.Patient) string {
	return invalid(patient.Input{
		Name:  p.Name,
		Phone: p.Phone,
		Email: p.Email,
		DOB:   p.DOB,
	}.Validate())
}

func checkAppointment(idx *repair.Index) recordCheck[models.Appointment] {
	return func(a *models.Appointment) string {
		if reason := invalid(appointment.Input{
			PatientID: a.PatientID,
			Date:      a.Date,
			Time:      a.Time,
			Duration:  a.Duration,
		}.Validate()); reason != "" {
			return reason
		}
		id, ok := resolvePatient(idx, a.PatientID)
		if !ok {
			return "patient not found"
		}
		a.PatientID = id
		return ""
	}
}

// checkInvoice leaves unresolved patients alone; billing shows them as
// Unknown.
func checkInvoice(inv *models.Invoice) string {
	treatments := make([]billing.TreatmentInput, 0, len(inv.Treatments))
	for _, t := range inv.Treatments {
		treatments = append(treatments, billing.TreatmentInput{Type: t.Type, Amount: t.Amount, Discount: t.Discount})
	}
	return invalid(billing.Input{
		PatientID:     inv.PatientID,
		Date:          inv.Date,
		DueDate:       inv.DueDate,
		Status:        strings.ToLower(inv.Status),
		PaymentMethod: strings.ToLower(inv.PaymentMethod),
		ReceiptNumber: inv.ReceiptNumber,
		Treatments:    treatments,
	}.Validate())
}

func checkStaff(s *models.Staff) string {
	return invalid(staff.Input{
		Name:        s.Name,
		Email:       s.Email,
		Phone:       s.Phone,
		Role:        s.Role,
		JoinDate:    s.JoinDate,
		Status:      strings.ToLower(s.Status),
		DOB:         s.DOB,
		Salary:      s.Salary,
		WorkingDays: s.WorkingDays,
	}.Validate())
}

func checkSalary(staffIDs map[string]bool) recordCheck[models.Salary] {
	return func(s *models.Salary) string {
		allowances := make([]salary.AllowanceInput, 0, len(s.Allowances))
		for _, a := range s.Allowances {
			allowances = append(allowances, salary.AllowanceInput{Name: a.Name, Amount: a.Amount})
		}
		if reason := invalid(salary.Input{
			StaffID:     s.StaffID,
			Month:       s.Month,
			Year:        s.Year,
			BaseSalary:  s.BaseSalary,
			Allowances:  allowances,
			Deductions:  s.Deductions,
			NetSalary:   s.NetSalary,
			WorkingDays: s.WorkingDays,
			PresentDays: s.PresentDays,
			AbsentDays:  s.AbsentDays,
			LeaveDays:   s.LeaveDays,
			Status:      strings.ToLower(s.Status),
		}.Validate()); reason != "" {
			return reason
		}
		if !staffIDs[s.StaffID] {
			return "staff not found"
		}
		return ""
	}
}

func checkAttendance(staffIDs map[string]bool) recordCheck[models.Attendance] {
	return func(a *models.Attendance) string {
		if reason := invalid(attendance.Input{
			StaffID: a.StaffID,
			Date:    a.Date,
			Time:    a.Time,
			Status:  strings.ToLower(a.Status),
		}.Validate()); reason != "" {
			return reason
		}
		if !staffIDs[a.StaffID] {
			return "staff not found"
		}
		return ""
	}
}

func checkFeedback(idx *repair.Index) recordCheck[models.Feedback] {
	return func(f *models.Feedback) string {
		if reason := invalid(feedback.Input{
			PatientID: f.PatientID,
			Date:      f.Date,
			Rating:    f.Rating,
		}.Validate()); reason != "" {
			return reason
		}
		id, ok := resolvePatient(idx, f.PatientID)
		if !ok {
			return "patient not found"
		}
		f.PatientID = id
		return ""
	}
}

func staffIDSet(all []models.Staff) map[string]bool {
	ids := make(map[string]bool, len(all))
	for _, s := range all {
		ids[s.ID] = true
	}
	return ids
}
