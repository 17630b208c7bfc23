package models

import "time"

type Staff struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email,omitempty"`
	Phone  string `json:"phone"`
	Gender string `json:"gender,omitempty"`

	Role          string `json:"role"`
	Qualification string `json:"qualification,omitempty"`
	Experience    string `json:"experience,omitempty"`
	JobTerm       string `json:"jobTerm,omitempty"`
	JoinDate      string `json:"joinDate"`

	Status         string `json:"status"`
	LeaveStartDate string `json:"leaveStartDate,omitempty"`

	DOB         string  `json:"dob,omitempty"`
	Age         int     `json:"age,omitempty"`
	Address     string  `json:"address,omitempty"`
	Salary      float64 `json:"salary,omitempty"`
	WorkingDays int     `json:"workingDays,omitempty"`
	Notes       string  `json:"notes,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (s Staff) RecordID() string { return s.ID }
