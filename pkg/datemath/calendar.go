package datemath

import (
	"fmt"
	"time"
	_ "time/tzdata" // zone database for minimal images
)

// Calendar resolves instants to calendar days in a fixed location.
type Calendar struct {
	location *time.Location
}

// NewCalendar creates a Calendar for the given IANA timezone string.
// An empty timezone means the process local time.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalendar(timezone string) (*Calendar, error) {
	if timezone == "" {
		return &Calendar{location: time.Local}, nil
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calendar{location: loc}, nil
}

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.location
}

// Today returns the calendar day containing now.
func (c *Calendar) Today(now time.Time) Date {
	return FromTime(now.In(c.location))
}
