package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/dental-admin/internal/domain/appointment"
	"github.com/BruksfildServices01/dental-admin/internal/httperr"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

type SuggestSlotsInput struct {
	Date     string
	Duration int
}

type SuggestSlots struct {
	repo  domain.Repository
	clock *timezone.Clock
	hours domain.Hours
}

func NewSuggestSlots(repo domain.Repository, clock *timezone.Clock, hours domain.Hours) *SuggestSlots {
	return &SuggestSlots{repo: repo, clock: clock, hours: hours}
}

// Execute lists free start times on the date; past times today are skipped.
func (uc *SuggestSlots) Execute(ctx context.Context, in SuggestSlotsInput) ([]domain.TimeSlot, error) {
	day, err := uc.clock.ParseDate(in.Date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	duration := in.Duration
	if duration <= 0 {
		duration = domain.DefaultDuration
	}

	return domain.SuggestSlots(
		day,
		uc.hours,
		time.Duration(duration)*time.Minute,
		uc.repo.All(ctx),
		uc.clock.Now(),
	)
}
