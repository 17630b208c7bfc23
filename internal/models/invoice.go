package models

import "time"

type Treatment struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Discount float64 `json:"discount"`
}

type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	PatientID     string `json:"patientId"`

	Date    string `json:"date"`
	DueDate string `json:"dueDate,omitempty"`

	Status        string `json:"status"`
	PaymentMethod string `json:"paymentMethod"`
	ReceiptNumber string `json:"receiptNumber,omitempty"`

	Treatments    []Treatment `json:"treatments"`
	Subtotal      float64     `json:"subtotal"`
	TotalDiscount float64     `json:"totalDiscount"`
	Total         float64     `json:"total"`

	Notes    string `json:"notes,omitempty"`
	PaidDate string `json:"paidDate,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	SchemaVersion int       `json:"schemaVersion"`
}

func (i Invoice) RecordID() string { return i.ID }
