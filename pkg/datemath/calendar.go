package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DateFormatISO is the calendar date layout exchanged with downstream services.
const DateFormatISO = "2006-01-02"

// LocalTimezone selects the process-local zone.
const LocalTimezone = "Local"

// Calendar answers "what day is it" in a fixed timezone.
type Calendar struct {
	location *time.Location
	now      func() time.Time
}

// NewCalendar creates a Calendar for the given IANA timezone string.
// An empty string or "Local" uses the process-local zone.
func NewCalendar(timezone string) (*Calendar, error) {
	loc := time.Local
	if tz := strings.TrimSpace(timezone); tz != "" && tz != LocalTimezone {
		l, err := time.LoadLocation(tz)
		if err != nil {
			return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
		}
		loc = l
	}
	return &Calendar{location: loc, now: time.Now}, nil
}

// WithClock overrides the time source.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	c.now = now
	return c
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Today returns the current calendar date as YYYY-MM-DD.
func (c *Calendar) Today() string {
	return c.now().In(c.location).Format(DateFormatISO)
}

// ParseISODate checks that value is a valid YYYY-MM-DD date.
func ParseISODate(value string) (time.Time, error) {
	t, err := time.Parse(DateFormatISO, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}
