package appointment

import (
	"github.com/BruksfildServices01/dental-admin/internal/validators"
)

type Input struct {
	PatientID string `json:"patientId" validate:"required"`
	Date      string `json:"date" validate:"required,isodate"`
	Time      string `json:"time" validate:"required,hhmm"`
	Duration  int    `json:"duration" validate:"omitempty,min=5,max=480"`
	Treatment string `json:"treatment"`
	Status    string `json:"status" validate:"omitempty,oneof=scheduled confirmed completed cancelled no-show"`
	Priority  string `json:"priority"`
	Notes     string `json:"notes"`
	Reminder  string `json:"reminder"`
}

func (in Input) Validate() error {
	return validators.Struct(in).Err()
}

const DefaultDuration = 60
