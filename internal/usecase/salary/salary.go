package salary

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/salary"
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type Repository = entity.Repository[models.Salary]

type StaffReader = entity.Reader[models.Staff]

// ======================================================
// CREATE
// ======================================================

type CreateSalary struct {
	repo   Repository
	staff  StaffReader
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewCreateSalary(repo Repository, staff StaffReader, clock *timezone.Clock, n *notify.Dispatcher) *CreateSalary {
	return &CreateSalary{repo: repo, staff: staff, clock: clock, notify: n}
}

// Execute records one month's salary. Net salary is computed from the
// breakdown unless given; one record per staff member and month.
func (uc *CreateSalary) Execute(ctx context.Context, in domain.Input) (models.Salary, error) {
	if err := in.Validate(); err != nil {
		return models.Salary{}, err
	}

	member, ok := uc.staff.Find(ctx, in.StaffID)
	if !ok {
		return models.Salary{}, httperr.ErrBusiness("staff_not_found")
	}

	month, _ := domain.NormalizeMonth(in.Month)
	base := in.BaseSalary
	if base == 0 {
		base = member.Salary
	}
	allowances := in.AllowanceItems()

	net := in.NetSalary
	if net == 0 {
		net = domain.Net(base, allowances, in.Deductions)
	}

	now := uc.clock.Now()

	sal, err := uc.repo.Insert(ctx, func(id string, existing []models.Salary) (models.Salary, error) {
		for _, s := range existing {
			if s.StaffID == in.StaffID && s.Month == month && s.Year == in.Year {
				return models.Salary{}, httperr.ErrBusiness("salary_already_exists")
			}
		}

		s := models.Salary{
			ID:            id,
			StaffID:       in.StaffID,
			Month:         month,
			Year:          in.Year,
			BaseSalary:    base,
			Allowances:    allowances,
			Deductions:    in.Deductions,
			Amount:        net,
			NetSalary:     net,
			WorkingDays:   in.WorkingDays,
			PresentDays:   in.PresentDays,
			AbsentDays:    in.AbsentDays,
			LeaveDays:     in.LeaveDays,
			Status:        in.Status,
			Notes:         in.Notes,
			CreatedAt:     now,
			UpdatedAt:     now,
			SchemaVersion: models.SchemaVersion,
		}
		if s.Status == "" {
			s.Status = domain.StatusPending
		}
		if s.Status == domain.StatusPaid {
			s.PaidDate = now.Format(timezone.DateLayout)
		}
		return s, nil
	})
	if err != nil {
		return models.Salary{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "salary_created",
		Entity:   string(models.KindSalaries),
		EntityID: sal.ID,
		Message:  fmt.Sprintf("Salary for %s, %s %d recorded.", member.Name, sal.Month, sal.Year),
	})
	return sal, nil
}

// ======================================================
// MARK PAID
// ======================================================

type MarkSalaryPaid struct {
	repo   Repository
	clock  *timezone.Clock
	notify *notify.Dispatcher
}

func NewMarkSalaryPaid(repo Repository, clock *timezone.Clock, n *notify.Dispatcher) *MarkSalaryPaid {
	return &MarkSalaryPaid{repo: repo, clock: clock, notify: n}
}

func (uc *MarkSalaryPaid) Execute(ctx context.Context, id string) (models.Salary, error) {
	sal, err := uc.repo.Update(ctx, id, func(s *models.Salary, _ []models.Salary) error {
		if err := domain.MarkPaid(s, uc.clock.Today()); err != nil {
			return err
		}
		s.UpdatedAt = uc.clock.Now()
		return nil
	})
	if err != nil {
		return models.Salary{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "salary_paid",
		Entity:   string(models.KindSalaries),
		EntityID: sal.ID,
		Message:  "Salary marked paid.",
	})
	return sal, nil
}

// ======================================================
// DELETE
// ======================================================

type DeleteSalary struct {
	repo   Repository
	notify *notify.Dispatcher
}

func NewDeleteSalary(repo Repository, n *notify.Dispatcher) *DeleteSalary {
	return &DeleteSalary{repo: repo, notify: n}
}

func (uc *DeleteSalary) Execute(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "salary_deleted",
		Entity:   string(models.KindSalaries),
		EntityID: id,
		Message:  "Salary record deleted.",
	})
	return nil
}
