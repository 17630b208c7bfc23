// Package view turns stored collections into the pages the single-page UI
// renders: section, category, free-text query and page in, rows out.
package view

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/domain/attendance"
	"github.com/BruksfildServices01/dental-admin/internal/domain/billing"
	"github.com/BruksfildServices01/dental-admin/internal/domain/feedback"
	"github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/domain/salary"
	"github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/listing"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

const (
	SectionDashboard    = "dashboard"
	SectionPatients     = "patients"
	SectionAppointments = "appointments"
	SectionBilling      = "billing"
	SectionStaff        = "staff"
	SectionSalary       = "salary"
	SectionAttendance   = "attendance"
	SectionFeedback     = "feedback"
)

var ErrUnknownSection = httperr.ErrBusiness("unknown_section")

type Request struct {
	Section  string
	Category string
	Status   string
	Query    string
	Page     int
	PageSize int
}

// Result is one rendered page. Items holds the section's row type; Summary
// is only set for the dashboard.
type Result struct {
	Section    string     `json:"section"`
	Category   string     `json:"category,omitempty"`
	Items      any        `json:"items"`
	Page       int        `json:"page"`
	PageSize   int        `json:"pageSize"`
	Total      int        `json:"total"`
	TotalPages int        `json:"totalPages"`
	Summary    *Dashboard `json:"summary,omitempty"`
}

type Controller struct {
	stores *entity.Stores
	clock  *timezone.Clock
}

func NewController(stores *entity.Stores, clock *timezone.Clock) *Controller {
	return &Controller{stores: stores, clock: clock}
}

// Show renders a section page. Reads only; nothing is written.
func (vc *Controller) Show(ctx context.Context, req Request) (Result, error) {
	switch strings.ToLower(strings.TrimSpace(req.Section)) {
	case SectionDashboard, "":
		d := vc.Dashboard(ctx)
		return Result{Section: SectionDashboard, Items: []struct{}{}, Page: 1, TotalPages: 1, Summary: &d}, nil
	case SectionPatients:
		return vc.patients(ctx, req), nil
	case SectionAppointments:
		return vc.appointments(ctx, req), nil
	case SectionBilling, "invoices":
		return vc.billing(ctx, req), nil
	case SectionStaff:
		return vc.staff(ctx, req), nil
	case SectionSalary, "salaries":
		return vc.salaries(ctx, req), nil
	case SectionAttendance:
		return vc.attendance(ctx, req), nil
	case SectionFeedback:
		return vc.feedback(ctx, req), nil
	}
	return Result{}, ErrUnknownSection
}

// ======================================================
// Sections
// ======================================================

func (vc *Controller) patients(ctx context.Context, req Request) Result {
	cat := patient.ParseCategory(req.Category)
	today := vc.clock.Now()

	items := listing.Filter(vc.stores.Patients.All(ctx), cat.Matches)
	items = listing.Search(items, req.Query, patient.SearchFields)

	return render(SectionPatients, string(cat), items, req, func(p models.Patient) PatientRow {
		age := p.Age
		if p.DOB != "" {
			age = patient.Age(p.DOB, today)
		}
		return PatientRow{
			ID: p.ID, Name: p.Name, Phone: p.Phone, Email: p.Email,
			Age: age, Gender: p.Gender, Status: p.Status, AddDate: p.AddDate,
		}
	})
}

func (vc *Controller) appointments(ctx context.Context, req Request) Result {
	cat := appointment.ParseCategory(req.Category, req.Status)
	patients := patientsByID(vc.stores.Patients.All(ctx))

	items := listing.Filter(vc.stores.Appointments.All(ctx), func(a models.Appointment) bool {
		return cat.Matches(a, vc.clock)
	})
	items = listing.Search(items, req.Query, func(a models.Appointment) []string {
		return appointment.SearchFields(a, lookup(patients, a.PatientID))
	})
	sortAppointments(items)

	label := string(cat.Window)
	if label == "" {
		label = "all"
	}
	return render(SectionAppointments, label, items, req, func(a models.Appointment) AppointmentRow {
		return appointmentRow(a, patients)
	})
}

func (vc *Controller) billing(ctx context.Context, req Request) Result {
	cat := billing.ParseCategory(req.Category)
	today := vc.clock.Today()
	patients := patientsByID(vc.stores.Patients.All(ctx))

	items := listing.Filter(vc.stores.Invoices.All(ctx), func(inv models.Invoice) bool {
		return cat.Matches(inv, today)
	})
	items = listing.Search(items, req.Query, func(inv models.Invoice) []string {
		return billing.SearchFields(inv, patientName(patients, inv.PatientID))
	})

	return render(SectionBilling, string(cat), items, req, func(inv models.Invoice) InvoiceRow {
		return InvoiceRow{
			ID:            inv.ID,
			InvoiceNumber: inv.InvoiceNumber,
			PatientID:     inv.PatientID,
			PatientName:   patientName(patients, inv.PatientID),
			Date:          inv.Date,
			DueDate:       inv.DueDate,
			Status:        billing.DisplayStatus(inv, today),
			PaymentMethod: inv.PaymentMethod,
			Total:         inv.Total,
			PaidDate:      inv.PaidDate,
		}
	})
}

func (vc *Controller) staff(ctx context.Context, req Request) Result {
	cat := staff.ParseCategory(req.Category)

	items := listing.Filter(vc.stores.Staff.All(ctx), cat.Matches)
	items = listing.Search(items, req.Query, staff.SearchFields)

	return render(SectionStaff, string(cat), items, req, func(s models.Staff) StaffRow {
		return StaffRow{
			ID: s.ID, Name: s.Name, Role: s.Role, Phone: s.Phone, JoinDate: s.JoinDate,
			Status: staff.Status(s), LeaveStartDate: s.LeaveStartDate, Salary: s.Salary,
		}
	})
}

func (vc *Controller) salaries(ctx context.Context, req Request) Result {
	cat := salary.ParseCategory(req.Category)
	names := staffNames(vc.stores.Staff.All(ctx))

	items := listing.Filter(vc.stores.Salaries.All(ctx), cat.Matches)
	items = listing.Search(items, req.Query, func(s models.Salary) []string {
		return salary.SearchFields(s, nameOr(names, s.StaffID))
	})

	return render(SectionSalary, string(cat), items, req, func(s models.Salary) SalaryRow {
		return SalaryRow{
			ID: s.ID, StaffID: s.StaffID, StaffName: nameOr(names, s.StaffID),
			Month: s.Month, Year: s.Year, NetSalary: s.NetSalary,
			Status: salary.Status(s), PaidDate: s.PaidDate,
		}
	})
}

func (vc *Controller) attendance(ctx context.Context, req Request) Result {
	cat := attendance.ParseCategory(req.Category)
	names := staffNames(vc.stores.Staff.All(ctx))

	items := listing.Filter(vc.stores.Attendance.All(ctx), func(a models.Attendance) bool {
		return cat.Matches(a, vc.clock)
	})
	items = listing.Search(items, req.Query, func(a models.Attendance) []string {
		return attendance.SearchFields(a, nameOr(names, a.StaffID))
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date > items[j].Date
	})

	return render(SectionAttendance, string(cat), items, req, func(a models.Attendance) AttendanceRow {
		return AttendanceRow{
			ID: a.ID, StaffID: a.StaffID, StaffName: nameOr(names, a.StaffID),
			Date: a.Date, Time: a.Time, Status: a.Status, Notes: a.Notes,
		}
	})
}

func (vc *Controller) feedback(ctx context.Context, req Request) Result {
	cat := feedback.ParseCategory(req.Category)
	patients := patientsByID(vc.stores.Patients.All(ctx))

	items := listing.Filter(vc.stores.Feedback.All(ctx), cat.Matches)
	items = listing.Search(items, req.Query, func(f models.Feedback) []string {
		return feedback.SearchFields(f, patientName(patients, f.PatientID))
	})

	return render(SectionFeedback, string(cat), items, req, func(f models.Feedback) FeedbackRow {
		return FeedbackRow{
			ID: f.ID, PatientID: f.PatientID, PatientName: patientName(patients, f.PatientID),
			Date: f.Date, Rating: f.Rating, Treatment: f.Treatment, Comments: f.Comments,
		}
	})
}

// ======================================================
// Dashboard
// ======================================================

func (vc *Controller) Dashboard(ctx context.Context) Dashboard {
	today := vc.clock.Today()

	patients := vc.stores.Patients.All(ctx)
	appts := vc.stores.Appointments.All(ctx)
	invoices := vc.stores.Invoices.All(ctx)
	members := vc.stores.Staff.All(ctx)
	salaries := vc.stores.Salaries.All(ctx)

	byID := patientsByID(patients)
	d := Dashboard{
		Patients:          len(patients),
		Appointments:      len(appts),
		TodayAppointments: []AppointmentRow{},
		Staff:             len(members),
		AverageRating:     feedback.Average(vc.stores.Feedback.All(ctx)),
	}

	for _, p := range patients {
		if p.Status == patient.StatusActive {
			d.ActivePatients++
		}
	}

	todays := listing.Filter(appts, func(a models.Appointment) bool { return a.Date == today })
	sortAppointments(todays)
	for _, a := range todays {
		d.TodayAppointments = append(d.TodayAppointments, appointmentRow(a, byID))
	}

	for _, inv := range invoices {
		if inv.Status != billing.StatusUnpaid {
			continue
		}
		d.UnpaidInvoices++
		d.UnpaidTotal += inv.Total
		if billing.DisplayStatus(inv, today) == billing.DisplayOverdue {
			d.OverdueInvoices++
		}
	}

	for _, s := range members {
		if staff.Status(s) == staff.StatusLeave {
			d.StaffOnLeave++
		}
	}
	for _, s := range salaries {
		if salary.Status(s) == salary.StatusPending {
			d.PendingSalaries++
		}
	}
	return d
}

// ======================================================
// Helpers
// ======================================================

func render[T, R any](section, category string, items []T, req Request, row func(T) R) Result {
	pg := listing.Paginate(items, req.PageSize, req.Page)

	rows := make([]R, 0, len(pg.Items))
	for _, it := range pg.Items {
		rows = append(rows, row(it))
	}

	return Result{
		Section:    section,
		Category:   category,
		Items:      rows,
		Page:       pg.Page,
		PageSize:   pg.PageSize,
		Total:      pg.Total,
		TotalPages: pg.TotalPages,
	}
}

func appointmentRow(a models.Appointment, patients map[string]models.Patient) AppointmentRow {
	row := AppointmentRow{
		ID: a.ID, PatientID: a.PatientID, PatientName: unknownName,
		Date: a.Date, Time: a.Time, Duration: a.Duration,
		Treatment: a.Treatment, Status: a.Status, Priority: a.Priority,
	}
	if p, ok := patients[a.PatientID]; ok {
		row.PatientName = p.Name
		row.PatientPhone = p.Phone
	}
	return row
}

func sortAppointments(items []models.Appointment) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].Time < items[j].Time
	})
}

func patientsByID(patients []models.Patient) map[string]models.Patient {
	m := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		m[p.ID] = p
	}
	return m
}

func lookup(patients map[string]models.Patient, id string) *models.Patient {
	if p, ok := patients[id]; ok {
		return &p
	}
	return nil
}

func patientName(patients map[string]models.Patient, id string) string {
	if p, ok := patients[id]; ok {
		return p.Name
	}
	return unknownName
}

func staffNames(members []models.Staff) map[string]string {
	m := make(map[string]string, len(members))
	for _, s := range members {
		m[s.ID] = s.Name
	}
	return m
}

func nameOr(names map[string]string, id string) string {
	if n, ok := names[id]; ok {
		return n
	}
	return unknownName
}
