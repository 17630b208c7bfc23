package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/dental-admin/internal/backup"
	"github.com/BruksfildServices01/dental-admin/internal/config"
	domainAppointment "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/guard"
	"github.com/BruksfildServices01/dental-admin/internal/handlers"
	"github.com/BruksfildServices01/dental-admin/internal/middleware"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
	"github.com/BruksfildServices01/dental-admin/internal/spreadsheet"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/dental-admin/internal/usecase/appointment"
	ucAttendance "github.com/BruksfildServices01/dental-admin/internal/usecase/attendance"
	ucBilling "github.com/BruksfildServices01/dental-admin/internal/usecase/billing"
	ucFeedback "github.com/BruksfildServices01/dental-admin/internal/usecase/feedback"
	ucPatient "github.com/BruksfildServices01/dental-admin/internal/usecase/patient"
	ucSalary "github.com/BruksfildServices01/dental-admin/internal/usecase/salary"
	ucStaff "github.com/BruksfildServices01/dental-admin/internal/usecase/staff"
	"github.com/BruksfildServices01/dental-admin/internal/view"
)

// Deps are the process-wide singletons built in main.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Stores   *entity.Stores
	Clock    *timezone.Clock
	Notify   *notify.Dispatcher
	Journal  *notify.Journal
	Hub      *notify.Hub
	Repairer *repair.Repairer
	Backups  *backup.Service
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	stores := d.Stores
	submissions := guard.New()
	hours := domainAppointment.Hours{Open: d.Config.ClinicOpen, Close: d.Config.ClinicClose}

	// ======================================================
	// USE CASES
	// ======================================================
	createPatientUC := ucPatient.NewCreatePatient(stores.Patients, d.Clock, d.Notify)
	updatePatientUC := ucPatient.NewUpdatePatient(stores.Patients, d.Clock, d.Notify)
	deletePatientUC := ucPatient.NewDeletePatient(stores.Patients, d.Repairer, d.Notify)

	createAppointmentUC := ucAppointment.NewCreateAppointment(stores.Appointments, stores.Patients, d.Clock, hours, d.Notify)
	updateAppointmentUC := ucAppointment.NewUpdateAppointment(stores.Appointments, stores.Patients, d.Clock, hours, d.Notify)
	changeStatusUC := ucAppointment.NewChangeStatus(stores.Appointments, d.Clock, d.Notify)
	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(stores.Appointments, d.Notify)
	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(stores.Appointments, stores.Patients, d.Clock)
	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(stores.Appointments, stores.Patients)
	suggestSlotsUC := ucAppointment.NewSuggestSlots(stores.Appointments, d.Clock, hours)

	createInvoiceUC := ucBilling.NewCreateInvoice(stores.Invoices, d.Clock, d.Notify)
	markInvoicePaidUC := ucBilling.NewMarkInvoicePaid(stores.Invoices, d.Clock, d.Notify)
	deleteInvoiceUC := ucBilling.NewDeleteInvoice(stores.Invoices, d.Notify)

	createStaffUC := ucStaff.NewCreateStaff(stores.Staff, d.Clock, d.Notify)
	updateStaffUC := ucStaff.NewUpdateStaff(stores.Staff, d.Clock, d.Notify)
	deleteStaffUC := ucStaff.NewDeleteStaff(stores.Staff, d.Notify)

	createSalaryUC := ucSalary.NewCreateSalary(stores.Salaries, stores.Staff, d.Clock, d.Notify)
	markSalaryPaidUC := ucSalary.NewMarkSalaryPaid(stores.Salaries, d.Clock, d.Notify)
	deleteSalaryUC := ucSalary.NewDeleteSalary(stores.Salaries, d.Notify)

	markAttendanceUC := ucAttendance.NewMarkAttendance(stores, d.Clock, d.Notify)
	deleteAttendanceUC := ucAttendance.NewDeleteAttendance(stores.Attendance, d.Notify)

	createFeedbackUC := ucFeedback.NewCreateFeedback(stores.Feedback, stores.Patients, d.Clock, d.Notify)
	deleteFeedbackUC := ucFeedback.NewDeleteFeedback(stores.Feedback, d.Notify)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.Config)
	patientHandler := handlers.NewPatientHandler(createPatientUC, updatePatientUC, deletePatientUC, submissions)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		changeStatusUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
		suggestSlotsUC,
		submissions,
	)
	billingHandler := handlers.NewBillingHandler(createInvoiceUC, markInvoicePaidUC, deleteInvoiceUC, submissions)
	staffHandler := handlers.NewStaffHandler(createStaffUC, updateStaffUC, deleteStaffUC, submissions)
	salaryHandler := handlers.NewSalaryHandler(createSalaryUC, markSalaryPaidUC, deleteSalaryUC, submissions)
	attendanceHandler := handlers.NewAttendanceHandler(markAttendanceUC, deleteAttendanceUC, submissions)
	feedbackHandler := handlers.NewFeedbackHandler(createFeedbackUC, deleteFeedbackUC, submissions)

	viewHandler := handlers.NewViewHandler(view.NewController(stores, d.Clock))
	spreadsheetHandler := handlers.NewSpreadsheetHandler(
		spreadsheet.NewService(stores, d.Clock, d.Notify, d.Log),
		d.Clock,
		submissions,
	)
	maintenanceHandler := handlers.NewMaintenanceHandler(d.Repairer, d.Backups, d.Clock)
	notificationsHandler := handlers.NewNotificationsHandler(d.Journal, d.Hub)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.POST("/auth/login", authHandler.Login)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config))
		{
			secured.GET("/auth/session", authHandler.Session)

			secured.GET("/view/:section", viewHandler.Show)

			// ------------------------------
			// PATIENTS
			// ------------------------------
			secured.POST("/patients", patientHandler.Create)
			secured.PUT("/patients/:id", patientHandler.Update)
			secured.DELETE("/patients/:id", patientHandler.Delete)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)
			secured.GET("/appointments/slots", appointmentHandler.Slots)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// BILLING
			// ------------------------------
			secured.POST("/invoices", billingHandler.Create)
			secured.PATCH("/invoices/:id/pay", billingHandler.MarkPaid)
			secured.DELETE("/invoices/:id", billingHandler.Delete)

			// ------------------------------
			// STAFF / SALARY / ATTENDANCE
			// ------------------------------
			secured.POST("/staff", staffHandler.Create)
			secured.PUT("/staff/:id", staffHandler.Update)
			secured.DELETE("/staff/:id", staffHandler.Delete)

			secured.POST("/salaries", salaryHandler.Create)
			secured.PATCH("/salaries/:id/pay", salaryHandler.MarkPaid)
			secured.DELETE("/salaries/:id", salaryHandler.Delete)

			secured.POST("/attendance", attendanceHandler.Mark)
			secured.DELETE("/attendance/:id", attendanceHandler.Delete)

			// ------------------------------
			// FEEDBACK
			// ------------------------------
			secured.POST("/feedback", feedbackHandler.Create)
			secured.DELETE("/feedback/:id", feedbackHandler.Delete)

			// ------------------------------
			// IMPORT / EXPORT / MAINTENANCE
			// ------------------------------
			secured.POST("/import/:entity", spreadsheetHandler.Import)
			secured.GET("/export/:entity", spreadsheetHandler.Export)

			secured.POST("/maintenance/repair", maintenanceHandler.Repair)
			secured.POST("/backup", maintenanceHandler.Backup)
			secured.GET("/backup", maintenanceHandler.DownloadBackup)

			secured.GET("/notifications", notificationsHandler.List)
		}
	}

	r.GET("/ws", middleware.AuthMiddleware(d.Config), notificationsHandler.Stream)
}
