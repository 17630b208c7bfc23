package view

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/storage"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func seeded(t *testing.T) *Controller {
	t.Helper()
	ctx := context.Background()
	ks := entity.NewKeyspace(storage.NewFacade(storage.NewMemoryBackend(), "dentalClinic", nil), nil)
	stores := entity.NewStores(ks)

	var patients []models.Patient
	for i, name := range []string{"Afzal Khan", "Sara Ali", "Bilal Ahmed", "Hina Shah", "Omar Farooq",
		"Zara Malik", "Ali Raza", "Nida Aslam", "Usman Tariq", "Ayesha Noor", "Kamran Butt", "Fatima Zaidi"} {
		status := "Active"
		if i%4 == 3 {
			status = "Inactive"
		}
		patients = append(patients, models.Patient{
			ID: stores.Patients.NextIDLocked(patients), Name: name, Phone: "0300000000" + string(rune('a'+i)), Status: status,
		})
	}
	_ = stores.Patients.Replace(ctx, patients)

	_ = stores.Appointments.Replace(ctx, []models.Appointment{
		{ID: "a-01", PatientID: "p-01", Date: "2025-01-10", Time: "15:00", Treatment: "Scaling", Status: "scheduled"},
		{ID: "a-02", PatientID: "p-02", Date: "2025-01-10", Time: "09:30", Treatment: "Filling", Status: "confirmed"},
		{ID: "a-03", PatientID: "p-01", Date: "2025-02-01", Time: "10:00", Treatment: "Root canal", Status: "scheduled"},
	})
	_ = stores.Invoices.Replace(ctx, []models.Invoice{
		{ID: "b-01", PatientID: "p-01", Date: "2025-01-01", DueDate: "2025-01-05", Status: "unpaid", Total: 1500},
		{ID: "b-02", PatientID: "p-99", Date: "2025-01-09", Status: "unpaid", Total: 500},
		{ID: "b-03", PatientID: "p-02", Date: "2025-01-09", Status: "paid", Total: 900},
	})
	_ = stores.Staff.Replace(ctx, []models.Staff{
		{ID: "s-01", Name: "Dr Hina"},
		{ID: "s-02", Name: "Dr Kamal", Status: "leave", LeaveStartDate: "2025-01-08"},
	})
	_ = stores.Salaries.Replace(ctx, []models.Salary{
		{ID: "sal-01", StaffID: "s-01", Month: "January", Year: 2025, NetSalary: 80000},
		{ID: "sal-02", StaffID: "s-09", Month: "January", Year: 2025, NetSalary: 50000, Status: "paid"},
	})
	_ = stores.Feedback.Replace(ctx, []models.Feedback{
		{ID: "f-01", PatientID: "p-01", Rating: 5},
		{ID: "f-02", PatientID: "p-02", Rating: 2},
	})

	// 2025-01-10 11:00 in Karachi
	clock := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 10, 6, 0, 0, 0, time.UTC))
	return NewController(stores, clock)
}

func TestPatientsPagination(t *testing.T) {
	vc := seeded(t)
	ctx := context.Background()

	res, err := vc.Show(ctx, Request{Section: "patients", Page: 2, PageSize: 10})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	rows := res.Items.([]PatientRow)
	if res.Total != 12 || res.TotalPages != 2 || len(rows) != 2 || rows[0].ID != "p-11" {
		t.Fatalf("res = %+v", res)
	}

	// out of range pages clamp
	res, _ = vc.Show(ctx, Request{Section: "patients", Page: 9, PageSize: 10})
	if res.Page != 2 {
		t.Fatalf("page = %d", res.Page)
	}

	res, _ = vc.Show(ctx, Request{Section: "patients", Category: "inactive"})
	if res.Total != 3 {
		t.Fatalf("inactive = %d", res.Total)
	}

	res, _ = vc.Show(ctx, Request{Section: "patients", Query: "ALI"})
	if res.Total != 3 { // Sara Ali, Zara Malik, Ali Raza
		t.Fatalf("search = %d", res.Total)
	}
}

func TestAppointmentsTodaySortedWithNames(t *testing.T) {
	vc := seeded(t)

	res, err := vc.Show(context.Background(), Request{Section: "appointments", Category: "today"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	rows := res.Items.([]AppointmentRow)
	if len(rows) != 2 || rows[0].ID != "a-02" || rows[0].PatientName != "Sara Ali" {
		t.Fatalf("rows = %+v", rows)
	}

	res, _ = vc.Show(context.Background(), Request{Section: "appointments", Status: "confirmed"})
	if res.Total != 1 {
		t.Fatalf("confirmed = %d", res.Total)
	}
}

func TestBillingDisplayStatusAndUnknownPatient(t *testing.T) {
	vc := seeded(t)

	res, _ := vc.Show(context.Background(), Request{Section: "billing"})
	rows := res.Items.([]InvoiceRow)
	if rows[0].Status != "overdue" || rows[1].PatientName != "Unknown" || rows[2].Status != "paid" {
		t.Fatalf("rows = %+v", rows)
	}

	res, _ = vc.Show(context.Background(), Request{Section: "salary", Category: "pending"})
	srows := res.Items.([]SalaryRow)
	if len(srows) != 1 || srows[0].StaffName != "Dr Hina" {
		t.Fatalf("salary rows = %+v", srows)
	}

	res, _ = vc.Show(context.Background(), Request{Section: "salary"})
	srows = res.Items.([]SalaryRow)
	if srows[1].StaffName != "Unknown" {
		t.Fatalf("dangling salary = %+v", srows[1])
	}
}

func TestDashboard(t *testing.T) {
	vc := seeded(t)

	res, err := vc.Show(context.Background(), Request{Section: "dashboard"})
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	d := res.Summary
	if d.Patients != 12 || d.ActivePatients != 9 || len(d.TodayAppointments) != 2 {
		t.Fatalf("dashboard = %+v", d)
	}
	if d.UnpaidInvoices != 2 || d.UnpaidTotal != 2000 || d.OverdueInvoices != 1 {
		t.Fatalf("dashboard billing = %+v", d)
	}
	if d.StaffOnLeave != 1 || d.PendingSalaries != 1 || d.AverageRating != 3.5 {
		t.Fatalf("dashboard staff = %+v", d)
	}
}

func TestUnknownSection(t *testing.T) {
	vc := seeded(t)
	if _, err := vc.Show(context.Background(), Request{Section: "inventory"}); !httperr.IsBusiness(err, "unknown_section") {
		t.Fatalf("err = %v", err)
	}
}
