package dto

type AppointmentListDTO struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Duration    int    `json:"duration"`
	Status      string `json:"status"`
	Treatment   string `json:"treatment,omitempty"`
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
}
