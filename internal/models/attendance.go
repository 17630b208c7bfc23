package models

import "time"

type Attendance struct {
	ID      string `json:"id"`
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
	Time    string `json:"time,omitempty"`
	Status  string `json:"status"`
	Notes   string `json:"notes,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (a Attendance) RecordID() string { return a.ID }
