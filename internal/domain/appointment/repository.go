package appointment

import (
	"github.com/BruksfildServices01/dental-admin/internal/entity"
	"github.com/BruksfildServices01/dental-admin/internal/models"
)

type Repository = entity.Repository[models.Appointment]

type PatientReader = entity.Reader[models.Patient]
