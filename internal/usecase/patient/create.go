package patient

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/patient"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type Repository = entity.Repository[models.Patient]

// ======================================================
// CREATE
// ======================================================

type CreatePatient struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewCreatePatient(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, clock: clock, notify: n}
}

func (uc *CreatePatient) Execute(ctx context.Context, in domain.Input) (models.Patient, error) {
	if err := in.Validate(); err != nil {
		return models.Patient{}, err
	}

	now := uc.clock.Now()

	p, err := uc.repo.Insert(ctx, func(id string, existing []models.Patient) (models.Patient, error) {
		if domain.PhoneTaken(existing, in.Phone, "") {
			return models.Patient{}, httperr.ErrBusiness("duplicate_phone")
		}

		status := in.Status
		if status == "" {
			status = domain.StatusActive
		}

		return models.Patient{
			ID:             id,
			Name:           strings.TrimSpace(in.Name),
			Phone:          strings.TrimSpace(in.Phone),
			Email:          strings.TrimSpace(in.Email),
			DOB:            in.DOB,
			Gender:         in.Gender,
			Address:        in.Address,
			Status:         status,
			MedicalHistory: in.MedicalHistory,
			AddDate:        now.Format(timezone.DateLayout),
			CreatedAt:      now,
			UpdatedAt:      now,
			SchemaVersion:  models.SchemaVersion,
		}, nil
	})
	if err != nil {
		return models.Patient{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "patient_created",
		Entity:   string(models.KindPatients),
		EntityID: p.ID,
		Message:  "Patient " + p.Name + " added.",
	})

	return p, nil
}

// ======================================================
// UPDATE
// ======================================================

type UpdatePatient struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewUpdatePatient(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *UpdatePatient {
	return &UpdatePatient{repo: repo, clock: clock, notify: n}
}

func (uc *UpdatePatient) Execute(ctx context.Context, id string, in domain.Input) (models.Patient, error) {
	if err := in.Validate(); err != nil {
		return models.Patient{}, err
	}

	p, err := uc.repo.Update(ctx, id, func(p *models.Patient, all []models.Patient) error {
		if domain.PhoneTaken(all, in.Phone, id) {
			return httperr.ErrBusiness("duplicate_phone")
		}

		p.Name = strings.TrimSpace(in.Name)
		p.Phone = strings.TrimSpace(in.Phone)
		p.Email = strings.TrimSpace(in.Email)
		p.DOB = in.DOB
		p.Gender = in.Gender
		p.Address = in.Address
		p.MedicalHistory = in.MedicalHistory
		if in.Status != "" {
			p.Status = in.Status
		}
		p.UpdatedAt = uc.clock.Now()
		return nil
	})
	if err != nil {
		return models.Patient{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "patient_updated",
		Entity:   string(models.KindPatients),
		EntityID: p.ID,
		Message:  "Patient " + p.Name + " updated.",
	})

	return p, nil
}
