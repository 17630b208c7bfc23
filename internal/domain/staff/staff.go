package staff

import (
	"strings"

	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

const (
	StatusActive = "active"
	StatusLeave  = "leave"
	StatusLeft   = "left"
)

type Input struct {
	Name          string  `json:"name" validate:"required"`
	Email         string  `json:"email" validate:"omitempty,clinicemail"`
	Phone         string  `json:"phone" validate:"required,phone"`
	Gender        string  `json:"gender"`
	Role          string  `json:"role" validate:"required"`
	Qualification string  `json:"qualification"`
	Experience    string  `json:"experience"`
	JobTerm       string  `json:"jobTerm"`
	JoinDate      string  `json:"joinDate" validate:"required,isodate"`
	Status        string  `json:"status" validate:"omitempty,oneof=active leave left"`
	DOB           string  `json:"dob" validate:"omitempty,isodate"`
	Address       string  `json:"address"`
	Salary        float64 `json:"salary" validate:"gte=0"`
	WorkingDays   int     `json:"workingDays" validate:"gte=0,lte=31"`
	Notes         string  `json:"notes"`
}

func (in Input) Validate() error {
	return validators.Struct(in).Err()
}

// Apply copies the input onto s, keeping identity and timestamps.
func (in Input) Apply(s *models.Staff) {
	s.Name = strings.TrimSpace(in.Name)
	s.Email = strings.TrimSpace(in.Email)
	s.Phone = strings.TrimSpace(in.Phone)
	s.Gender = in.Gender
	s.Role = in.Role
	s.Qualification = in.Qualification
	s.Experience = in.Experience
	s.JobTerm = in.JobTerm
	s.JoinDate = in.JoinDate
	s.DOB = in.DOB
	s.Address = in.Address
	s.Salary = in.Salary
	s.WorkingDays = in.WorkingDays
	s.Notes = in.Notes

	if in.Status != "" {
		s.Status = in.Status
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	if s.Status != StatusLeave {
		s.LeaveStartDate = ""
	}
}

// Status treats a missing status as active.
func Status(s models.Staff) string {
	if s.Status == "" {
		return StatusActive
	}
	return s.Status
}

// StartLeave flips s to leave from date. It reports whether s changed.
func StartLeave(s *models.Staff, date string) bool {
	if Status(*s) == StatusLeft {
		return false
	}
	if s.Status == StatusLeave && s.LeaveStartDate != "" {
		return false
	}
	s.Status = StatusLeave
	s.LeaveStartDate = date
	return true
}

// ReturnFromLeave makes a staff member on leave active again.
func ReturnFromLeave(s *models.Staff) bool {
	if s.Status != StatusLeave {
		return false
	}
	s.Status = StatusActive
	s.LeaveStartDate = ""
	return true
}

// ===============================
// Listing
// ===============================

type Category string

const (
	CategoryAll    Category = "all"
	CategoryActive Category = "active"
	CategoryLeave  Category = "leave"
	CategoryLeft   Category = "left"
)

func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(s)); c {
	case CategoryActive, CategoryLeave, CategoryLeft:
		return c
	}
	return CategoryAll
}

func (c Category) Matches(s models.Staff) bool {
	if c == CategoryAll {
		return true
	}
	return Status(s) == string(c)
}

func SearchFields(s models.Staff) []string {
	return []string{s.Name, s.Phone, s.Email, s.Role, Status(s)}
}
