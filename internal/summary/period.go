package summary

import "fmt"

// Period names a time-window filter applied to the transaction collection.
type Period string

const (
	// PeriodCurrentMonth keeps transactions in the reference date's month.
	PeriodCurrentMonth Period = "month"
	// PeriodPreviousMonth keeps transactions in the calendar month before
	// the reference date's month.
	PeriodPreviousMonth Period = "last-month"
	// PeriodAll applies no filtering.
	PeriodAll Period = "all"
)

// ParsePeriod converts a user-supplied string into a Period.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodCurrentMonth, PeriodPreviousMonth, PeriodAll:
		return Period(s), nil
	default:
		return "", fmt.Errorf("invalid period %q (expected month, last-month or all)", s)
	}
}
