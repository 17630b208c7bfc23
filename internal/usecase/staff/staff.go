package staff

import (
	"context"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type Repository = entity.Repository[models.Staff]

type CreateStaff struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewCreateStaff(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *CreateStaff {
	return &CreateStaff{repo: repo, clock: clock, notify: n}
}

func (uc *CreateStaff) Execute(ctx context.Context, in domain.Input) (models.Staff, error) {
	if err := in.Validate(); err != nil {
		return models.Staff{}, err
	}

	now := uc.clock.Now()
	s, err := uc.repo.Insert(ctx, func(id string, _ []models.Staff) (models.Staff, error) {
		s := models.Staff{
			ID:            id,
			CreatedAt:     now,
			UpdatedAt:     now,
			SchemaVersion: models.SchemaVersion,
		}
		in.Apply(&s)
		if s.Status == domain.StatusLeave {
			s.LeaveStartDate = now.Format(timezone.DateLayout)
		}
		return s, nil
	})
	if err != nil {
		return models.Staff{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "staff_created",
		Entity:   string(models.KindStaff),
		EntityID: s.ID,
		Message:  s.Name + " added to staff.",
	})
	return s, nil
}

type UpdateStaff struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewUpdateStaff(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *UpdateStaff {
	return &UpdateStaff{repo: repo, clock: clock, notify: n}
}

func (uc *UpdateStaff) Execute(ctx context.Context, id string, in domain.Input) (models.Staff, error) {
	if err := in.Validate(); err != nil {
		return models.Staff{}, err
	}

	s, err := uc.repo.Update(ctx, id, func(s *models.Staff, _ []models.Staff) error {
		wasOnLeave := s.Status == domain.StatusLeave
		in.Apply(s)
		if s.Status == domain.StatusLeave && !wasOnLeave {
			s.LeaveStartDate = uc.clock.Today()
		}
		s.UpdatedAt = uc.clock.Now()
		return nil
	})
	if err != nil {
		return models.Staff{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "staff_updated",
		Entity:   string(models.KindStaff),
		EntityID: s.ID,
		Message:  s.Name + " updated.",
	})
	return s, nil
}

type DeleteStaff struct {
	repo   Repository
	notify *notify.Dispatcher
}

func NewDeleteStaff(repo Repository, n *notify.Dispatcher) *DeleteStaff {
	return &DeleteStaff{repo: repo, notify: n}
}

// Execute removes the staff member. Salary and attendance rows keep their
// staffId and render as "Unknown".
func (uc *DeleteStaff) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "staff_deleted",
		Entity:   string(models.KindStaff),
		EntityID: id,
		Message:  "Staff member deleted.",
	})
	return nil
}
