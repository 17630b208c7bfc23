package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to next if the current status allows it.
func Transition(ap *models.Appointment, next Status, now time.Time) error {
	current := Status(ap.Status)

	var err error
	switch next {
	case StatusConfirmed:
		err = CanConfirm(current)
	case StatusCancelled:
		err = CanCancel(current)
	case StatusCompleted:
		err = CanComplete(current)
	case StatusNoShow:
		err = CanMarkNoShow(current)
	case StatusScheduled:
		// rescheduling a cancelled or missed visit reopens it
		if current == StatusCompleted {
			err = httperr.ErrBusiness("invalid_state")
		}
	default:
		err = httperr.ErrBusiness("invalid_status")
	}
	if err != nil {
		return err
	}

	ap.Status = string(next)
	ap.UpdatedAt = now
	return nil
}
