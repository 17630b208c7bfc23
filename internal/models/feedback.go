package models

import "time"

type Feedback struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	Date      string `json:"date"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments,omitempty"`
	Treatment string `json:"treatment,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (f Feedback) RecordID() string { return f.ID }
