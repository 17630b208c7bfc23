package spreadsheet

import (
	"strconv"

	"github.com/BruksfildServices01/dental-admin/internal/domain/salary"
	"github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

const unknownName = "Unknown"

var (
	PatientHeader     = []string{"Name", "Phone", "Email", "Date of Birth", "Address", "Gender", "Status", "Created Date"}
	AppointmentHeader = []string{"ID", "Patient", "Phone", "Date", "Time", "Duration", "Treatment", "Status", "Priority", "Notes"}
	InvoiceHeader     = []string{"Invoice Number", "Patient", "Date", "Due Date", "Status", "Payment Method", "Receipt Number", "Subtotal", "Discount", "Total"}
	StaffHeader       = []string{"ID", "Name", "Phone", "Email", "Role", "Join Date", "Status", "Salary"}
	SalaryHeader      = []string{"ID", "Staff", "Month", "Year", "Net Salary", "Status", "Paid Date"}
	AttendanceHeader  = []string{"ID", "Staff", "Date", "Time", "Status", "Notes"}
	FeedbackHeader    = []string{"ID", "Patient", "Date", "Rating", "Treatment", "Comments"}
)

func PatientRows(patients []models.Patient) [][]string {
	rows := [][]string{PatientHeader}
	for _, p := range patients {
		created := p.AddDate
		if created == "" && !p.CreatedAt.IsZero() {
			created = p.CreatedAt.Format(dateLayout)
		}
		rows = append(rows, []string{p.Name, p.Phone, p.Email, p.DOB, p.Address, p.Gender, p.Status, created})
	}
	return rows
}

func AppointmentRows(appts []models.Appointment, patients []models.Patient) [][]string {
	byID := patientsByID(patients)
	rows := [][]string{AppointmentHeader}
	for _, a := range appts {
		name, phone := unknownName, ""
		if p, ok := byID[a.PatientID]; ok {
			name, phone = p.Name, p.Phone
		}
		rows = append(rows, []string{
			a.ID, name, phone, a.Date, a.Time, strconv.Itoa(a.Duration),
			a.Treatment, a.Status, a.Priority, a.Notes,
		})
	}
	return rows
}

func InvoiceRows(invoices []models.Invoice, patients []models.Patient) [][]string {
	byID := patientsByID(patients)
	rows := [][]string{InvoiceHeader}
	for _, inv := range invoices {
		name := unknownName
		if p, ok := byID[inv.PatientID]; ok {
			name = p.Name
		}
		rows = append(rows, []string{
			inv.InvoiceNumber, name, inv.Date, inv.DueDate, inv.Status,
			inv.PaymentMethod, inv.ReceiptNumber,
			money(inv.Subtotal), money(inv.TotalDiscount), money(inv.Total),
		})
	}
	return rows
}

func StaffRows(members []models.Staff) [][]string {
	rows := [][]string{StaffHeader}
	for _, s := range members {
		rows = append(rows, []string{
			s.ID, s.Name, s.Phone, s.Email, s.Role, s.JoinDate, staff.Status(s), money(s.Salary),
		})
	}
	return rows
}

func SalaryRows(salaries []models.Salary, members []models.Staff) [][]string {
	names := staffNames(members)
	rows := [][]string{SalaryHeader}
	for _, s := range salaries {
		rows = append(rows, []string{
			s.ID, nameOr(names, s.StaffID), s.Month, strconv.Itoa(s.Year),
			money(s.NetSalary), salary.Status(s), s.PaidDate,
		})
	}
	return rows
}

func AttendanceRows(records []models.Attendance, members []models.Staff) [][]string {
	names := staffNames(members)
	rows := [][]string{AttendanceHeader}
	for _, a := range records {
		rows = append(rows, []string{a.ID, nameOr(names, a.StaffID), a.Date, a.Time, a.Status, a.Notes})
	}
	return rows
}

func FeedbackRows(items []models.Feedback, patients []models.Patient) [][]string {
	byID := patientsByID(patients)
	rows := [][]string{FeedbackHeader}
	for _, f := range items {
		name := unknownName
		if p, ok := byID[f.PatientID]; ok {
			name = p.Name
		}
		rows = append(rows, []string{f.ID, name, f.Date, strconv.Itoa(f.Rating), f.Treatment, f.Comments})
	}
	return rows
}

func patientsByID(patients []models.Patient) map[string]models.Patient {
	m := make(map[string]models.Patient, len(patients))
	for _, p := range patients {
		m[p.ID] = p
	}
	return m
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

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
