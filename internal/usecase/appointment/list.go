package appointment

import (
	"context"
	"fmt"
	"sort"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/dto"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo     domain.Repository
	patients domain.PatientReader
	clock    *timezone.Clock
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	patients domain.PatientReader,
	clock *timezone.Clock,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo, patients: patients, clock: clock}
}

// Execute lists the day's appointments by time. An empty date means today
// on the clinic clock.
func (uc *ListAppointmentsByDate) Execute(ctx context.Context, date string) ([]dto.AppointmentListDTO, error) {
	if date == "" {
		date = uc.clock.Today()
	}
	if _, err := uc.clock.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	return listWhere(ctx, uc.repo, uc.patients, func(ap models.Appointment) bool {
		return ap.Date == date
	}), nil
}

type ListAppointmentsByMonth struct {
	repo     domain.Repository
	patients domain.PatientReader
}

func NewListAppointmentsByMonth(
	repo domain.Repository,
	patients domain.PatientReader,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo, patients: patients}
}

func (uc *ListAppointmentsByMonth) Execute(ctx context.Context, year, month int) ([]dto.AppointmentListDTO, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	prefix := fmt.Sprintf("%04d-%02d-", year, month)

	return listWhere(ctx, uc.repo, uc.patients, func(ap models.Appointment) bool {
		return len(ap.Date) == len(prefix)+2 && ap.Date[:len(prefix)] == prefix
	}), nil
}

func listWhere(
	ctx context.Context,
	repo domain.Repository,
	patients domain.PatientReader,
	keep func(models.Appointment) bool,
) []dto.AppointmentListDTO {

	names := map[string]string{}
	for _, p := range patients.All(ctx) {
		names[p.ID] = p.Name
	}

	out := []dto.AppointmentListDTO{}
	for _, ap := range repo.All(ctx) {
		if !keep(ap) {
			continue
		}
		out = append(out, dto.AppointmentListDTO{
			ID:          ap.ID,
			Date:        ap.Date,
			Time:        ap.Time,
			Duration:    ap.Duration,
			Status:      ap.Status,
			Treatment:   ap.Treatment,
			PatientID:   ap.PatientID,
			PatientName: names[ap.PatientID],
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out
}
