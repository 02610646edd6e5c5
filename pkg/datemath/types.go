package datemath

import "time"

// ISOLayout is the only accepted textual form of a Date.
const ISOLayout = "2006-01-02"

// Date is a calendar day with no time-of-day or location.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}
