package timezone

import "time"

const DefaultTimezone = "Asia/Karachi"

const DateLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// tzdata missing on the host; Karachi has no DST so a fixed zone is exact.
		return time.FixedZone("PKT", 5*60*60)
	}
	return loc
}

// ===============================
// Clinic clock
// ===============================

// Clock is the single wall clock every "today/week/month" window is computed
// against, for appointments and attendance alike.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) *Clock {
	return &Clock{
		loc: Location(tz),
		now: time.Now,
	}
}

// Fixed returns a clock frozen at t, used by tests.
func Fixed(tz string, t time.Time) *Clock {
	return &Clock{
		loc: Location(tz),
		now: func() time.Time { return t },
	}
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Today() string {
	return c.Now().Format(DateLayout)
}

// WeekRange returns the Monday and Sunday of the current week as yyyy-mm-dd.
func (c *Clock) WeekRange() (string, string) {
	now := c.Now()
	offset := (int(now.Weekday()) + 6) % 7
	start := time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, c.loc)
	end := start.AddDate(0, 0, 6)
	return start.Format(DateLayout), end.Format(DateLayout)
}

// MonthRange returns the first and last day of the current month as yyyy-mm-dd.
func (c *Clock) MonthRange() (string, string) {
	now := c.Now()
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, c.loc)
	end := start.AddDate(0, 1, -1)
	return start.Format(DateLayout), end.Format(DateLayout)
}

// ParseDate parses yyyy-mm-dd in the clinic location.
func (c *Clock) ParseDate(date string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, c.loc)
}

func (c *Clock) ParseDateTime(date, hm string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+" 15:04", date+" "+hm, c.loc)
}

// ===============================
// Date windows
// ===============================

type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// InWindow reports whether a yyyy-mm-dd date falls in the named window.
// Unknown windows match everything.
func (c *Clock) InWindow(w Window, date string) bool {
	switch w {
	case WindowToday:
		return date == c.Today()
	case WindowWeek:
		from, to := c.WeekRange()
		return date >= from && date <= to
	case WindowMonth:
		from, to := c.MonthRange()
		return date >= from && date <= to
	}
	return true
}
