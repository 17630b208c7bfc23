package models

import "time"

type Patient struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	Email          string `json:"email,omitempty"`
	DOB            string `json:"dob,omitempty"`
	Age            int    `json:"age,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Address        string `json:"address,omitempty"`
	Status         string `json:"status"`
	MedicalHistory string `json:"medicalHistory,omitempty"`
	AddDate        string `json:"addDate,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (p Patient) RecordID() string { return p.ID }
