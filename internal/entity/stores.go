package entity

import (
	"github.com/BruksfildServices01/dental-admin/internal/migrate"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// Stores bundles the seven clinic collections over one keyspace.
type Stores struct {
	Keyspace *Keyspace

	Patients     *Collection[models.Patient]
	Appointments *Collection[models.Appointment]
	Invoices     *Collection[models.Invoice]
	Staff        *Collection[models.Staff]
	Salaries     *Collection[models.Salary]
	Attendance   *Collection[models.Attendance]
	Feedback     *Collection[models.Feedback]
}

func NewStores(ks *Keyspace) *Stores {
	return &Stores{
		Keyspace:     ks,
		Patients:     NewCollection(ks, models.KindPatients, migrate.Patient, "patient_not_found"),
		Appointments: NewCollection(ks, models.KindAppointments, migrate.Appointment, "appointment_not_found"),
		Invoices:     NewCollection(ks, models.KindInvoices, migrate.Invoice, "invoice_not_found"),
		Staff:        NewCollection(ks, models.KindStaff, migrate.Staff, "staff_not_found"),
		Salaries:     NewCollection(ks, models.KindSalaries, migrate.Salary, "salary_not_found"),
		Attendance:   NewCollection(ks, models.KindAttendance, migrate.Attendance, "attendance_not_found"),
		Feedback:     NewCollection(ks, models.KindFeedback, migrate.Feedback, "feedback_not_found"),
	}
}
