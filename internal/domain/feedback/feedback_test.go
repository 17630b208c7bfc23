package feedback

import (
	"testing"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

func TestRatingBounds(t *testing.T) {
	for _, r := range []int{0, 6, -1} {
		err := Input{PatientID: "p-01", Date: "2025-01-10", Rating: r}.Validate()
		if httperr.FieldErrors(err)["rating"] == "" {
			t.Fatalf("rating %d should be rejected", r)
		}
	}
	for r := 1; r <= 5; r++ {
		if err := (Input{PatientID: "p-01", Date: "2025-01-10", Rating: r}).Validate(); err != nil {
			t.Fatalf("rating %d rejected: %v", r, err)
		}
	}
}

func TestCategories(t *testing.T) {
	if !CategoryPositive.Matches(models.Feedback{Rating: 4}) || CategoryPositive.Matches(models.Feedback{Rating: 3}) {
		t.Fatalf("positive is 4-5")
	}
	if !CategoryNegative.Matches(models.Feedback{Rating: 2}) || CategoryNegative.Matches(models.Feedback{Rating: 3}) {
		t.Fatalf("negative is 1-2")
	}
}

func TestAverage(t *testing.T) {
	if Average(nil) != 0 {
		t.Fatalf("empty average must be 0")
	}
	if got := Average([]models.Feedback{{Rating: 5}, {Rating: 2}}); got != 3.5 {
		t.Fatalf("Average = %v", got)
	}
}
