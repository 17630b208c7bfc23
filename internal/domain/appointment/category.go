package appointment

import (
	"github.com/BruksfildServices01/dental-admin/internal/models"
	"github.com/BruksfildServices01/dental-admin/internal/timezone"
)

// Category is all, today, week or month; an optional status narrows it.
type Category struct {
	Window timezone.Window
	Status string
}

func ParseCategory(window, status string) Category {
	c := Category{Status: status}
	switch timezone.Window(window) {
	case timezone.WindowToday, timezone.WindowWeek, timezone.WindowMonth:
		c.Window = timezone.Window(window)
	}
	if _, ok := ParseStatus(status); !ok {
		c.Status = ""
	}
	return c
}

func (c Category) Matches(ap models.Appointment, clock *timezone.Clock) bool {
	if c.Window != "" && !clock.InWindow(c.Window, ap.Date) {
		return false
	}
	if c.Status != "" && ap.Status != c.Status {
		return false
	}
	return true
}

// SearchFields lists the text a free-text query is matched against.
// patient may be nil when the reference does not resolve.
func SearchFields(ap models.Appointment, patient *models.Patient) []string {
	fields := []string{ap.Treatment, ap.Date, ap.Time, ap.Status, ap.Priority}
	if patient != nil {
		fields = append(fields, patient.Name, patient.Gender)
	}
	return fields
}
