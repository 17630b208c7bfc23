package view

// View-model rows, one per section. Names are resolved and dangling
// references read "Unknown".

const unknownName = "Unknown"

type PatientRow struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Age     int    `json:"age,omitempty"`
	Gender  string `json:"gender,omitempty"`
	Status  string `json:"status"`
	AddDate string `json:"addDate,omitempty"`
}

type AppointmentRow struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId"`
	PatientName  string `json:"patientName"`
	PatientPhone string `json:"patientPhone,omitempty"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Duration     int    `json:"duration"`
	Treatment    string `json:"treatment,omitempty"`
	Status       string `json:"status"`
	Priority     string `json:"priority,omitempty"`
}

type InvoiceRow struct {
	ID            string  `json:"id"`
	InvoiceNumber string  `json:"invoiceNumber"`
	PatientID     string  `json:"patientId"`
	PatientName   string  `json:"patientName"`
	Date          string  `json:"date"`
	DueDate       string  `json:"dueDate,omitempty"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"paymentMethod"`
	Total         float64 `json:"total"`
	PaidDate      string  `json:"paidDate,omitempty"`
}

type StaffRow struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Phone          string  `json:"phone"`
	JoinDate       string  `json:"joinDate"`
	Status         string  `json:"status"`
	LeaveStartDate string  `json:"leaveStartDate,omitempty"`
	Salary         float64 `json:"salary,omitempty"`
}

type SalaryRow struct {
	ID        string  `json:"id"`
	StaffID   string  `json:"staffId"`
	StaffName string  `json:"staffName"`
	Month     string  `json:"month"`
	Year      int     `json:"year"`
	NetSalary float64 `json:"netSalary"`
	Status    string  `json:"status"`
	PaidDate  string  `json:"paidDate,omitempty"`
}

type AttendanceRow struct {
	ID        string `json:"id"`
	StaffID   string `json:"staffId"`
	StaffName string `json:"staffName"`
	Date      string `json:"date"`
	Time      string `json:"time,omitempty"`
	Status    string `json:"status"`
	Notes     string `json:"notes,omitempty"`
}

type FeedbackRow struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	Date        string `json:"date"`
	Rating      int    `json:"rating"`
	Treatment   string `json:"treatment,omitempty"`
	Comments    string `json:"comments,omitempty"`
}

// Dashboard is the landing summary.
type Dashboard struct {
	Patients          int              `json:"patients"`
	ActivePatients    int              `json:"activePatients"`
	Appointments      int              `json:"appointments"`
	TodayAppointments []AppointmentRow `json:"todayAppointments"`
	UnpaidInvoices    int              `json:"unpaidInvoices"`
	UnpaidTotal       float64          `json:"unpaidTotal"`
	OverdueInvoices   int              `json:"overdueInvoices"`
	Staff             int              `json:"staff"`
	StaffOnLeave      int              `json:"staffOnLeave"`
	PendingSalaries   int              `json:"pendingSalaries"`
	AverageRating     float64          `json:"averageRating"`
}
