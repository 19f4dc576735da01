package timeutil

import (
	"fmt"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange builds a DateRange, rejecting ranges where start is after end.
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("start date %s is after end date %s", FormatDate(start), FormatDate(end))
	}
	return DateRange{Start: start, End: end}, nil
}

// StartDate returns the range start formatted as YYYY-MM-DD.
func (r DateRange) StartDate() string {
	return FormatDate(r.Start)
}

// EndDate returns the range end formatted as YYYY-MM-DD.
func (r DateRange) EndDate() string {
	return FormatDate(r.End)
}

func (r DateRange) String() string {
	return r.StartDate() + ".." + r.EndDate()
}

// Dates returns every day in the range, start through end inclusive.
func (r DateRange) Dates() []time.Time {
	var days []time.Time
	for d := r.Start; !d.After(r.End); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}
