package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[string]Status{
		"Confirmed": StatusConfirmed,
		"canceled":  StatusCancelled,
		"No Show":   StatusNoShow,
		"no_show":   StatusNoShow,
		"DONE":      StatusCompleted,
		"":          StatusScheduled,
		"pending":   StatusScheduled,
	}
	for in, want := range cases {
		if got := NormalizeStatus(in); got != want {
			t.Fatalf("NormalizeStatus(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestTransitions(t *testing.T) {
	now := time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

	ap := models.Appointment{Status: string(StatusScheduled)}
	if err := Transition(&ap, StatusConfirmed, now); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if err := Transition(&ap, StatusCompleted, now); err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !ap.UpdatedAt.Equal(now) {
		t.Fatalf("updatedAt not stamped")
	}
	if err := Transition(&ap, StatusCancelled, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("cancel after complete: %v", err)
	}
	if err := Transition(&ap, Status("bogus"), now); !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("unknown status: %v", err)
	}
}

func TestSuggestSlotsSkipsBusyAndPast(t *testing.T) {
	loc := timezone.Location(timezone.DefaultTimezone)
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, loc)
	now := time.Date(2025, 1, 10, 10, 15, 0, 0, loc)

	existing := []models.Appointment{
		{Date: "2025-01-10", Time: "12:00", Duration: 60, Status: "scheduled"},
		{Date: "2025-01-10", Time: "14:00", Duration: 60, Status: "cancelled"},
		{Date: "2025-01-11", Time: "15:00", Duration: 60, Status: "scheduled"},
	}

	slots, err := SuggestSlots(day, Hours{Open: "09:00", Close: "16:00"}, time.Hour, existing, now)
	if err != nil {
		t.Fatalf("SuggestSlots: %v", err)
	}

	var starts []string
	for _, s := range slots {
		starts = append(starts, s.Start)
	}
	want := []string{"11:00", "13:00", "14:00", "15:00"}
	if len(starts) != len(want) {
		t.Fatalf("slots = %v, want %v", starts, want)
	}
	for i := range want {
		if starts[i] != want[i] {
			t.Fatalf("slots = %v, want %v", starts, want)
		}
	}
}

func TestSuggestSlotsInvalidHours(t *testing.T) {
	day := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	_, err := SuggestSlots(day, Hours{Open: "18:00", Close: "09:00"}, time.Hour, nil, day)
	if !httperr.IsBusiness(err, "invalid_clinic_hours") {
		t.Fatalf("err = %v", err)
	}
}

func TestCategoryMatches(t *testing.T) {
	clock := timezone.Fixed(timezone.DefaultTimezone, time.Date(2025, 1, 15, 6, 0, 0, 0, time.UTC))
	ap := models.Appointment{Date: "2025-01-17", Status: "confirmed"}

	if !ParseCategory("week", "").Matches(ap, clock) {
		t.Fatalf("expected week match")
	}
	if ParseCategory("today", "").Matches(ap, clock) {
		t.Fatalf("unexpected today match")
	}
	if ParseCategory("month", "cancelled").Matches(ap, clock) {
		t.Fatalf("status sub-filter ignored")
	}
	if !ParseCategory("all", "bogus").Matches(ap, clock) {
		t.Fatalf("unknown status should be ignored")
	}
}

func TestInputValidate(t *testing.T) {
	err := Input{PatientID: "p-01", Date: "10/01/2025", Time: "25:00"}.Validate()
	fields := httperr.FieldErrors(err)
	if fields["date"] == "" || fields["time"] == "" {
		t.Fatalf("expected date and time errors, got %v", fields)
	}

	if err := (Input{PatientID: "p-01", Date: "2025-01-10", Time: "10:00"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
