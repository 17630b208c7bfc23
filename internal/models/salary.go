package models

import "time"

type Allowance struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type Salary struct {
	ID      string `json:"id"`
	StaffID string `json:"staffId"`
	Month   string `json:"month"`
	Year    int    `json:"year"`

	BaseSalary float64     `json:"baseSalary"`
	Allowances []Allowance `json:"allowances,omitempty"`
	Deductions float64     `json:"deductions,omitempty"`
	Amount     float64     `json:"amount"`
	NetSalary  float64     `json:"netSalary"`

	WorkingDays int `json:"workingDays"`
	PresentDays int `json:"presentDays"`
	AbsentDays  int `json:"absentDays"`
	LeaveDays   int `json:"leaveDays"`

	Status   string `json:"status"`
	PaidDate string `json:"paidDate,omitempty"`
	Notes    string `json:"notes,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (s Salary) RecordID() string { return s.ID }
