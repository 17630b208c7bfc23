package appointment

import (
	"time"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type interval struct {
	start time.Time
	end   time.Time
}

// SuggestSlots walks the clinic day in steps of duration and returns every
// slot that overlaps no busy appointment and has not already started.
// day must be midnight of the requested date in the clinic location.
func SuggestSlots(
	day time.Time,
	hours Hours,
	duration time.Duration,
	existing []models.Appointment,
	now time.Time,
) ([]TimeSlot, error) {

	dayStart, dayEnd, err := hours.Bounds(day)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		duration = 60 * time.Minute
	}

	date := day.Format("2006-01-02")
	busy := make([]interval, 0, len(existing))
	for _, ap := range existing {
		if ap.Date != date || !Status(ap.Status).Busy() {
			continue
		}
		start, err := atClock(day, ap.Time)
		if err != nil {
			continue
		}
		d := ap.Duration
		if d <= 0 {
			d = 60
		}
		busy = append(busy, interval{start: start, end: start.Add(time.Duration(d) * time.Minute)})
	}

	slots := []TimeSlot{}
	for cur := dayStart; !cur.Add(duration).After(dayEnd); cur = cur.Add(duration) {
		slotStart := cur
		slotEnd := cur.Add(duration)

		if slotStart.Before(now) {
			continue
		}
		if overlapsAny(slotStart, slotEnd, busy) {
			continue
		}

		slots = append(slots, TimeSlot{
			Start: slotStart.Format("15:04"),
			End:   slotEnd.Format("15:04"),
		})
	}

	return slots, nil
}

func overlapsAny(start, end time.Time, busy []interval) bool {
	for _, b := range busy {
		if start.Before(b.end) && end.After(b.start) {
			return true
		}
	}
	return false
}
