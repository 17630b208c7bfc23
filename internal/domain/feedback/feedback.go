package feedback

import (
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Input struct {
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments"`
	Treatment string `json:"treatment"`
}

func (in Input) Validate() error {
	ve := validators.Struct(in)
	if in.Rating < MinRating || in.Rating > MaxRating {
		ve.Add("rating", "must be between 1 and 5")
	}
	return ve.Err()
}

// ===============================
// Listing
// ===============================

type Category string

const (
	CategoryAll      Category = "all"
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
)

func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(s)); c {
	case CategoryPositive, CategoryNegative:
		return c
	}
	return CategoryAll
}

func (c Category) Matches(f models.Feedback) bool {
	switch c {
	case CategoryPositive:
		return f.Rating >= 4
	case CategoryNegative:
		return f.Rating <= 2
	}
	return true
}

func SearchFields(f models.Feedback, patientName string) []string {
	return []string{patientName, f.Treatment, f.Comments}
}

// Average is the mean rating, 0 for no feedback.
func Average(items []models.Feedback) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, f := range items {
		sum += f.Rating
	}
	return float64(sum) / float64(len(items))
}
