package attendance

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func TestApplyToStaff(t *testing.T) {
	s := models.Staff{Status: "active"}

	if !ApplyToStaff(&s, StatusLeave, "2025-01-10") || s.Status != "leave" || s.LeaveStartDate != "2025-01-10" {
		t.Fatalf("leave not applied: %+v", s)
	}
	if ApplyToStaff(&s, StatusAbsent, "2025-01-11") {
		t.Fatalf("absent has no side effect")
	}
	if !ApplyToStaff(&s, StatusLate, "2025-01-12") || s.Status != "active" {
		t.Fatalf("late should end the leave: %+v", s)
	}
}

func TestCategoryDefaultsToToday(t *testing.T) {
	clock := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC))

	c := ParseCategory("")
	if c != CategoryToday {
		t.Fatalf("default category = %q", c)
	}
	if !c.Matches(models.Attendance{Date: "2025-01-15"}, clock) {
		t.Fatalf("expected today match")
	}
	if c.Matches(models.Attendance{Date: "2025-01-14"}, clock) {
		t.Fatalf("unexpected match")
	}
	if !CategoryWeek.Matches(models.Attendance{Date: "2025-01-14"}, clock) {
		t.Fatalf("expected week match")
	}
}
