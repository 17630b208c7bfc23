package appointment

import (
	"context"
	"strings"
	"time"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	patients domain.PatientReader
	clock    *timezone.Clock
	hours    domain.Hours
	notify   *notify.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	patients domain.PatientReader,
	clock *timezone.Clock,
	hours domain.Hours,
	n *notify.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		patients: patients,
		clock:    clock,
		hours:    hours,
		notify:   n,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in domain.Input,
) (models.Appointment, error) {

	// --------------------------------------------------
	// Input
	// --------------------------------------------------
	if err := in.Validate(); err != nil {
		return models.Appointment{}, err
	}

	duration := in.Duration
	if duration <= 0 {
		duration = domain.DefaultDuration
	}
	if err := withinHours(uc.clock, uc.hours, in.Date, in.Time, duration); err != nil {
		return models.Appointment{}, err
	}

	status := domain.InitialStatus()
	if in.Status != "" {
		status = domain.Status(in.Status)
	}

	now := uc.clock.Now()

	// --------------------------------------------------
	// Persist (patient resolved under the same lock)
	// --------------------------------------------------
	var p models.Patient
	ap, err := uc.repo.Insert(ctx, func(id string, _ []models.Appointment) (models.Appointment, error) {
		found, ok := uc.patients.Find(ctx, in.PatientID)
		if !ok {
			return models.Appointment{}, httperr.ErrBusiness("patient_not_found")
		}
		p = found

		return models.Appointment{
			ID:            id,
			PatientID:     p.ID,
			Date:          in.Date,
			Time:          in.Time,
			Duration:      duration,
			Treatment:     strings.TrimSpace(in.Treatment),
			Status:        string(status),
			Priority:      in.Priority,
			Notes:         in.Notes,
			Reminder:      in.Reminder,
			CreatedAt:     now,
			UpdatedAt:     now,
			SchemaVersion: models.SchemaVersion,
		}, nil
	})
	if err != nil {
		return models.Appointment{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "appointment_created",
		Entity:   string(models.KindAppointments),
		EntityID: ap.ID,
		Message:  "Appointment booked for " + p.Name + " on " + ap.Date + " at " + ap.Time + ".",
	})

	return ap, nil
}

// withinHours rejects visits that start before opening or run past closing.
func withinHours(clock *timezone.Clock, hours domain.Hours, date, hm string, minutes int) error {
	start, err := clock.ParseDateTime(date, hm)
	if err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if !hours.IsWithinWorkingHours(start, start.Add(time.Duration(minutes)*time.Minute)) {
		return domain.ErrOutsideClinicHours
	}
	return nil
}
