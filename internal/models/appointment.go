package models

import "time"

type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`

	Date     string `json:"date"` // yyyy-mm-dd
	Time     string `json:"time"` // HH:MM, 24h
	Duration int    `json:"duration"`

	Treatment string `json:"treatment,omitempty"`
	Status    string `json:"status"`
	Priority  string `json:"priority,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Reminder  string `json:"reminder,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (a Appointment) RecordID() string { return a.ID }
