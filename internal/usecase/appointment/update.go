package appointment

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

// UpdateAppointment reschedules or edits an appointment. Status changes go
// through ChangeStatus.
type UpdateAppointment struct {
	repo     domain.Repository
	patients domain.PatientReader
	clock    *timezone.Clock
	hours    domain.Hours
	notify   *notify.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	patients domain.PatientReader,
	clock *timezone.Clock,
	hours domain.Hours,
	n *notify.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{repo: repo, patients: patients, clock: clock, hours: hours, notify: n}
}

func (uc *UpdateAppointment) Execute(ctx context.Context, id string, in domain.Input) (models.Appointment, error) {
	if err := in.Validate(); err != nil {
		return models.Appointment{}, err
	}

	ap, err := uc.repo.Update(ctx, id, func(ap *models.Appointment, _ []models.Appointment) error {
		if _, ok := uc.patients.Find(ctx, in.PatientID); !ok {
			return httperr.ErrBusiness("patient_not_found")
		}
		duration := ap.Duration
		if in.Duration > 0 {
			duration = in.Duration
		}
		if err := withinHours(uc.clock, uc.hours, in.Date, in.Time, duration); err != nil {
			return err
		}

		ap.PatientID = in.PatientID
		ap.Date = in.Date
		ap.Time = in.Time
		ap.Duration = duration
		ap.Treatment = strings.TrimSpace(in.Treatment)
		ap.Priority = in.Priority
		ap.Notes = in.Notes
		ap.Reminder = in.Reminder
		ap.UpdatedAt = uc.clock.Now()
		return nil
	})
	if err != nil {
		return models.Appointment{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "appointment_updated",
		Entity:   string(models.KindAppointments),
		EntityID: ap.ID,
		Message:  "Appointment updated.",
	})
	return ap, nil
}

// ======================================================
// STATUS
// ======================================================

type ChangeStatus struct {
	repo   domain.Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewChangeStatus(repo domain.Repository, clock *timezone.Clock, n *notify.Dispatcher) *ChangeStatus {
	return &ChangeStatus{repo: repo, clock: clock, notify: n}
}

func (uc *ChangeStatus) Execute(ctx context.Context, id string, status string) (models.Appointment, error) {
	next, ok := domain.ParseStatus(status)
	if !ok {
		return models.Appointment{}, httperr.ErrBusiness("invalid_status")
	}

	ap, err := uc.repo.Update(ctx, id, func(ap *models.Appointment, _ []models.Appointment) error {
		return domain.Transition(ap, next, uc.clock.Now())
	})
	if err != nil {
		return models.Appointment{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelInfo,
		Action:   "appointment_" + strings.ReplaceAll(string(next), "-", "_"),
		Entity:   string(models.KindAppointments),
		EntityID: ap.ID,
		Message:  "Appointment marked " + string(next) + ".",
	})
	return ap, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteAppointment struct {
	repo   domain.Repository
	notify *notify.Dispatcher
}

func NewDeleteAppointment(repo domain.Repository, n *notify.Dispatcher) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, notify: n}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "appointment_deleted",
		Entity:   string(models.KindAppointments),
		EntityID: id,
		Message:  "Appointment deleted.",
	})
	return nil
}
