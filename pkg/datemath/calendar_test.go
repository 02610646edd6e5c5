package datemath_test

import (
	"testing"
	"time"

	"nl-dates/pkg/datemath"
)

func TestNewCalendar(t *testing.T) {
	_, err := datemath.NewCalendar("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid calendar: %v", err)
	}

	_, err = datemath.NewCalendar("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}

	local, err := datemath.NewCalendar("")
	if err != nil {
		t.Fatalf("unexpected error for empty timezone: %v", err)
	}
	if local.Location() != time.Local {
		t.Errorf("empty timezone should use time.Local, got %v", local.Location())
	}
}

func TestCalendar_Today(t *testing.T) {
	// 2025-11-18 20:00 UTC is already 2025-11-19 in Ho Chi Minh (UTC+7).
	now := time.Date(2025, 11, 18, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		timezone string
		want     datemath.Date
	}{
		{name: "UTC", timezone: "UTC", want: datemath.MustParseISO("2025-11-18")},
		{name: "Ahead of UTC", timezone: "Asia/Ho_Chi_Minh", want: datemath.MustParseISO("2025-11-19")},
		{name: "Behind UTC", timezone: "America/Los_Angeles", want: datemath.MustParseISO("2025-11-18")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cal, err := datemath.NewCalendar(tt.timezone)
			if err != nil {
				t.Fatalf("NewCalendar(%q): %v", tt.timezone, err)
			}
			if got := cal.Today(now); got != tt.want {
				t.Errorf("Today() = %v, want %v", got, tt.want)
			}
		})
	}
}
