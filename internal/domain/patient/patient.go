package patient

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type Input struct {
	Name           string `json:"name" validate:"required"`
	Phone          string `json:"phone" validate:"required,phone"`
	Email          string `json:"email" validate:"omitempty,clinicemail"`
	DOB            string `json:"dob" validate:"omitempty,isodate"`
	Gender         string `json:"gender"`
	Address        string `json:"address"`
	Status         string `json:"status" validate:"omitempty,oneof=Active Inactive"`
	MedicalHistory string `json:"medicalHistory"`
}

func (in Input) Validate() error {
	return validators.Struct(in).Err()
}

// PhoneKey is the form phones are compared in: separators stripped.
func PhoneKey(phone string) string {
	return strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(phone))
}

// PhoneTaken reports whether another patient already uses phone.
func PhoneTaken(patients []models.Patient, phone, exceptID string) bool {
	key := PhoneKey(phone)
	if key == "" {
		return false
	}
	for _, p := range patients {
		if p.ID != exceptID && PhoneKey(p.Phone) == key {
			return true
		}
	}
	return false
}

// Age returns completed years between dob and today, or 0 when dob is
// missing or unparseable.
func Age(dob string, today time.Time) int {
	born, err := time.Parse("2006-01-02", dob)
	if err != nil {
		return 0
	}
	years := today.Year() - born.Year()
	if today.Month() < born.Month() || (today.Month() == born.Month() && today.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// ===============================
// Listing
// ===============================

type Category string

const (
	CategoryAll      Category = "all"
	CategoryActive   Category = "active"
	CategoryInactive Category = "inactive"
)

func ParseCategory(s string) Category {
	switch Category(strings.ToLower(s)) {
	case CategoryActive:
		return CategoryActive
	case CategoryInactive:
		return CategoryInactive
	}
	return CategoryAll
}

func (c Category) Matches(p models.Patient) bool {
	switch c {
	case CategoryActive:
		return p.Status == StatusActive
	case CategoryInactive:
		return p.Status == StatusInactive
	}
	return true
}

func SearchFields(p models.Patient) []string {
	return []string{p.Name, p.Phone, p.Email, p.Gender}
}
