package patient

import (
	"context"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/notify"
	"github.com/BruksfildServices01/dental-admin/internal/repair"
)

type Repairer interface {
	Run(ctx context.Context) (repair.Result, error)
}

type DeletePatient struct {
	repo     Repository
	repairer Repairer
	notify   *notify.Dispatcher
}

func NewDeletePatient(repo Repository, repairer Repairer, n *notify.Dispatcher) *DeletePatient {
	return &DeletePatient{repo: repo, repairer: repairer, notify: n}
}

// Execute removes the patient and then runs referential repair, which
// prunes the appointments that pointed at it.
func (uc *DeletePatient) Execute(ctx context.Context, id string) (repair.Result, error) {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return repair.Result{}, err
	}

	uc.notify.Dispatch(notify.Event{
		Level:    notify.LevelSuccess,
		Action:   "patient_deleted",
		Entity:   string(models.KindPatients),
		EntityID: id,
		Message:  "Patient deleted.",
	})

	return uc.repairer.Run(ctx)
}
