package salary

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

type AllowanceInput struct {
	Name   string  `json:"name" validate:"required"`
	Amount float64 `json:"amount" validate:"gte=0"`
}

type Input struct {
	StaffID     string           `json:"staffId" validate:"required"`
	Month       string           `json:"month" validate:"required"`
	Year        int              `json:"year" validate:"required,min=2000,max=2100"`
	BaseSalary  float64          `json:"baseSalary" validate:"gte=0"`
	Allowances  []AllowanceInput `json:"allowances" validate:"dive"`
	Deductions  float64          `json:"deductions" validate:"gte=0"`
	NetSalary   float64          `json:"netSalary" validate:"gte=0"`
	WorkingDays int              `json:"workingDays" validate:"gte=0,lte=31"`
	PresentDays int              `json:"presentDays" validate:"gte=0,lte=31"`
	AbsentDays  int              `json:"absentDays" validate:"gte=0,lte=31"`
	LeaveDays   int              `json:"leaveDays" validate:"gte=0,lte=31"`
	Status      string           `json:"status" validate:"omitempty,oneof=paid pending"`
	Notes       string           `json:"notes"`
}

func (in Input) Validate() error {
	ve := validators.Struct(in)
	if in.Month != "" {
		if _, ok := NormalizeMonth(in.Month); !ok {
			ve.Add("month", "must be a month name or number")
		}
	}
	if in.PresentDays+in.AbsentDays+in.LeaveDays > in.WorkingDays && in.WorkingDays > 0 {
		ve.Add("workingDays", "must cover present, absent and leave days")
	}
	return ve.Err()
}

func (in Input) AllowanceItems() []models.Allowance {
	out := make([]models.Allowance, 0, len(in.Allowances))
	for _, a := range in.Allowances {
		out = append(out, models.Allowance{Name: strings.TrimSpace(a.Name), Amount: a.Amount})
	}
	return out
}

// Net is base plus allowances minus deductions, floored at zero.
func Net(base float64, allowances []models.Allowance, deductions float64) float64 {
	total := base
	for _, a := range allowances {
		total += a.Amount
	}
	total -= deductions
	if total < 0 {
		return 0
	}
	return total
}

// NormalizeMonth accepts "March", "mar" or "3" and returns "March".
func NormalizeMonth(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return "", false
		}
		return time.Month(n).String(), true
	}
	lower := strings.ToLower(s)
	if len(lower) < 3 {
		return "", false
	}
	for m := time.January; m <= time.December; m++ {
		if strings.HasPrefix(strings.ToLower(m.String()), lower) {
			return m.String(), true
		}
	}
	return "", false
}

func Status(s models.Salary) string {
	if s.Status == "" {
		return StatusPending
	}
	return s.Status
}

func MarkPaid(s *models.Salary, today string) error {
	if Status(*s) == StatusPaid {
		return httperr.ErrBusiness("salary_already_paid")
	}
	s.Status = StatusPaid
	s.PaidDate = today
	return nil
}

// ===============================
// Listing
// ===============================

type Category string

const (
	CategoryAll     Category = "all"
	CategoryPaid    Category = "paid"
	CategoryPending Category = "pending"
)

func ParseCategory(s string) Category {
	switch c := Category(strings.ToLower(s)); c {
	case CategoryPaid, CategoryPending:
		return c
	}
	return CategoryAll
}

func (c Category) Matches(s models.Salary) bool {
	if c == CategoryAll {
		return true
	}
	return Status(s) == string(c)
}

func SearchFields(s models.Salary, staffName string) []string {
	return []string{staffName, s.Month, strconv.Itoa(s.Year), Status(s)}
}
