package feedback

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/feedback"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type Repository = entity.Repository[models.Feedback]

type PatientReader = entity.Reader[models.Patient]

type CreateFeedback struct {
	repo     Repository
	patients PatientReader
	clock    *timezone.Clock
	notify   *notify.Dispatcher
}

func NewCreateFeedback(repo Repository, patients PatientReader, clock *timezone.Clock, n *notify.Dispatcher) *CreateFeedback {
	return &CreateFeedback{repo: repo, patients: patients, clock: clock, notify: n}
}

func (uc *CreateFeedback) Execute(ctx context.Context, in domain.Input) (models.Feedback, error) {
	if err := in.Validate(); err != nil {
		return models.Feedback{}, err
	}
	if _, ok := uc.patients.Find(ctx, in.PatientID); !ok {
		return models.Feedback{}, httperr.ErrBusiness("patient_not_found")
	}

	now := uc.clock.Now()
	f, err := uc.repo.Insert(ctx, func(id string, _ []models.Feedback) (models.Feedback, error) {
		return models.Feedback{
			ID:            id,
			PatientID:     in.PatientID,
			Date:          in.Date,
			Rating:        in.Rating,
			Comments:      strings.TrimSpace(in.Comments),
			Treatment:     strings.TrimSpace(in.Treatment),
			CreatedAt:     now,
			UpdatedAt:     now,
			SchemaVersion: models.SchemaVersion,
		}, nil
	})
	if err != nil {
		return models.Feedback{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "feedback_created",
		Entity:   string(models.KindFeedback),
		EntityID: f.ID,
		Message:  "Feedback saved.",
	})
	return f, nil
}

type DeleteFeedback struct {
	repo   Repository
	notify *notify.Dispatcher
}

func NewDeleteFeedback(repo Repository, n *notify.Dispatcher) *DeleteFeedback {
	return &DeleteFeedback{repo: repo, notify: n}
}

func (uc *DeleteFeedback) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "feedback_deleted",
		Entity:   string(models.KindFeedback),
		EntityID: id,
		Message:  "Feedback deleted.",
	})
	return nil
}
