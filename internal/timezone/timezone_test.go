package timezone

import (
	"testing"
	"time"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Not/AZone")
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC).In(loc)
	_, offset := now.Zone()
	if offset != 5*60*60 {
		t.Fatalf("expected +05:00 offset, got %d", offset)
	}
}

func TestClock_Windows(t *testing.T) {
	// Wednesday 2025-01-15 22:30 UTC is Thursday 03:30 in Karachi.
	clock := Fixed(DefaultTimezone, time.Date(2025, 1, 15, 22, 30, 0, 0, time.UTC))

	if got := clock.Today(); got != "2025-01-16" {
		t.Fatalf("expected clinic today 2025-01-16, got %s", got)
	}

	start, end := clock.WeekRange()
	if start != "2025-01-13" || end != "2025-01-19" {
		t.Fatalf("unexpected week range %s..%s", start, end)
	}

	start, end = clock.MonthRange()
	if start != "2025-01-01" || end != "2025-01-31" {
		t.Fatalf("unexpected month range %s..%s", start, end)
	}
}

func TestClock_WeekRangeOnSunday(t *testing.T) {
	clock := Fixed(DefaultTimezone, time.Date(2025, 1, 19, 6, 0, 0, 0, time.UTC))

	start, end := clock.WeekRange()
	if start != "2025-01-13" || end != "2025-01-19" {
		t.Fatalf("unexpected week range %s..%s", start, end)
	}
}

func TestClock_InWindow(t *testing.T) {
	clock := Fixed(DefaultTimezone, time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC))

	cases := []struct {
		w    Window
		date string
		want bool
	}{
		{WindowToday, "2025-01-15", true},
		{WindowToday, "2025-01-14", false},
		{WindowWeek, "2025-01-13", true},
		{WindowWeek, "2025-01-20", false},
		{WindowMonth, "2025-01-31", true},
		{WindowMonth, "2025-02-01", false},
		{Window("all"), "1999-01-01", true},
	}
	for _, tc := range cases {
		if got := clock.InWindow(tc.w, tc.date); got != tc.want {
			t.Fatalf("InWindow(%s, %s) = %v, want %v", tc.w, tc.date, got, tc.want)
		}
	}
}
