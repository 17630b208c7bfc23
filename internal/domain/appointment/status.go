package appointment

import (
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no-show"
)

var statuses = []Status{
	StatusScheduled,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

func ParseStatus(s string) (Status, bool) {
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// NormalizeStatus maps free text from imports onto a known status,
// defaulting to scheduled.
func NormalizeStatus(s string) Status {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.NewReplacer("_", "-", " ", "-").Replace(v)

	switch v {
	case "confirmed", "confirm":
		return StatusConfirmed
	case "completed", "complete", "done":
		return StatusCompleted
	case "cancelled", "canceled", "cancel":
		return StatusCancelled
	case "no-show", "noshow", "missed":
		return StatusNoShow
	}
	return StatusScheduled
}

// isOpen is true while the visit can still happen.
func (s Status) isOpen() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

// Busy reports whether an appointment in this status occupies its slot.
func (s Status) Busy() bool {
	return s != StatusCancelled
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusScheduled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if !current.isOpen() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if !current.isOpen() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanMarkNoShow(current Status) error {
	if !current.isOpen() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusScheduled
}
