package attendance

import (
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/domain/staff"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
	StatusLeave   = "leave"
)

type Input struct {
	StaffID string `json:"staffId" validate:"required"`
	Date    string `json:"date" validate:"required,isodate"`
	Time    string `json:"time" validate:"omitempty,hhmm"`
	Status  string `json:"status" validate:"required,oneof=present late absent leave"`
	Notes   string `json:"notes"`
}

func (in Input) Validate() error {
	return validators.Struct(in).Err()
}

// ApplyToStaff carries the attendance side effect onto the staff record:
// leave starts a leave, present or late ends one. It reports whether s
// changed.
func ApplyToStaff(s *models.Staff, status, date string) bool {
	switch status {
	case StatusLeave:
		return staff.StartLeave(s, date)
	case StatusPresent, StatusLate:
		return staff.ReturnFromLeave(s)
	}
	return false
}

// ===============================
// Listing
// ===============================

// Category is today, week, month or all; the attendance view opens on today.
type Category string

const (
	CategoryToday Category = "today"
	CategoryWeek  Category = "week"
	CategoryMonth Category = "month"
	CategoryAll   Category = "all"
)

func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(s)); c {
	case CategoryWeek, CategoryMonth, CategoryAll:
		return c
	}
	return CategoryToday
}

func (c Category) Matches(a models.Attendance, clock *timezone.Clock) bool {
	if c == CategoryAll {
		return true
	}
	return clock.InWindow(timezone.Window(c), a.Date)
}

func SearchFields(a models.Attendance, staffName string) []string {
	return []string{staffName, a.Date, a.Status}
}
