package entity

import (
	"strings"
	"time"
)

// DayMonthYearLayout is the dd/MM/yyyy layout used by project payloads.
const DayMonthYearLayout = "02/01/2006"

// ISODateLayout is the calendar-date form used when dates are returned.
const ISODateLayout = time.DateOnly

// ParseDayMonthYear parses a dd/MM/yyyy string into a UTC calendar date.
// An empty or blank string yields (nil, nil). Impossible dates such as
// 31/02/2024 are rejected.
func ParseDayMonthYear(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DayMonthYearLayout, s, time.UTC)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders a calendar date as yyyy-MM-dd, or nil when unset.
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(ISODateLayout)
	return &s
}
