package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
)

var ErrOutsideClinicHours = httperr.ErrBusiness("outside_clinic_hours")

// Hours is the clinic's daily opening window, HH:MM in clinic time.
type Hours struct {
	Open  string
	Close string
}

func DefaultHours() Hours {
	return Hours{Open: "09:00", Close: "21:00"}
}

// Bounds returns the opening window on the given day.
func (h Hours) Bounds(day time.Time) (time.Time, time.Time, error) {
	open, err := atClock(day, h.Open)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_clinic_hours")
	}
	closing, err := atClock(day, h.Close)
	if err != nil || !closing.After(open) {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_clinic_hours")
	}
	return open, closing, nil
}

// IsWithinWorkingHours reports whether [start, end) fits inside the window.
func (h Hours) IsWithinWorkingHours(start, end time.Time) bool {
	open, closing, err := h.Bounds(start)
	if err != nil {
		return false
	}
	return !start.Before(open) && !end.After(closing)
}

func atClock(day time.Time, hm string) (time.Time, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour(), t.Minute(), 0, 0,
		day.Location(),
	), nil
}
