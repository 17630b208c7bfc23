package patient

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

func TestAge(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	cases := map[string]int{
		"1990-03-10": 35,
		"1990-03-11": 34,
		"2025-01-01": 0,
		"":           0,
		"10/03/1990": 0,
		"2030-01-01": 0,
	}
	for dob, want := range cases {
		if got := Age(dob, today); got != want {
			t.Fatalf("Age(%q) = %d, want %d", dob, got, want)
		}
	}
}

func TestPhoneTaken(t *testing.T) {
	patients := []models.Patient{{ID: "p-01", Phone: "03001234567"}}

	if !PhoneTaken(patients, "03001234567", "") {
		t.Fatalf("exact phone must be taken")
	}
	if !PhoneTaken(patients, "0300-1234567", "") {
		t.Fatalf("separators must not defeat the check")
	}
	if PhoneTaken(patients, "03001234567", "p-01") {
		t.Fatalf("a patient does not collide with itself")
	}
}

func TestCategoryCaseSensitiveStatus(t *testing.T) {
	if CategoryActive.Matches(models.Patient{Status: "active"}) {
		t.Fatalf("status comparison is case-sensitive")
	}
	if !ParseCategory("Inactive").Matches(models.Patient{Status: StatusInactive}) {
		t.Fatalf("expected inactive match")
	}
	if !ParseCategory("whatever").Matches(models.Patient{}) {
		t.Fatalf("unknown category means all")
	}
}

func TestInputValidate(t *testing.T) {
	err := Input{Name: "", Phone: "123", Email: "x@"}.Validate()
	fields := httperr.FieldErrors(err)
	for _, f := range []string{"name", "phone", "email"} {
		if fields[f] == "" {
			t.Fatalf("missing %s error in %v", f, fields)
		}
	}
}
