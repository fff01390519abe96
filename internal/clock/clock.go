package clock

import "time"

// DayFormat is the calendar-day layout used for all date comparisons.
// Days are UTC-normalized so a "day" means the same thing regardless of
// where the device is.
const DayFormat = "2006-01-02"

// Clock supplies the current calendar day. Handlers take it as an
// interface so tests can pin the day.
type Clock interface {
	Today() string
}

type utcClock struct{}

func (utcClock) Today() string {
	return time.Now().UTC().Format(DayFormat)
}

// New returns a Clock backed by the real wall clock.
func New() Clock {
	return utcClock{}
}

// Fixed is a Clock pinned to a single day, for tests.
type Fixed string

func (f Fixed) Today() string { return string(f) }

// Yesterday returns the calendar day before day. Malformed input yields
// an empty string, which never equals a real day.
func Yesterday(day string) string {
	t, err := time.Parse(DayFormat, day)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, -1).Format(DayFormat)
}
