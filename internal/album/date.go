package album

import "time"

// DatePrecision indicates the granularity of a date string.
type DatePrecision int

const (
	PrecisionNone  DatePrecision = iota // No date or invalid
	PrecisionYear                       // "2024"
	PrecisionMonth                      // "2024-05"
	PrecisionDay                        // "2024-05-15"
)

// ParseDatePrecision returns the precision level of a date string based on
// its shape. It does not validate the digits; use ParseDate for that.
func ParseDatePrecision(date string) DatePrecision {
	switch len(date) {
	case 4:
		return PrecisionYear
	case 7:
		return PrecisionMonth
	case 10:
		return PrecisionDay
	default:
		return PrecisionNone
	}
}

// ParseDate attempts to parse a date string with variable precision.
// Returns the zero time and PrecisionNone when the string is not a valid date.
func ParseDate(date string) (time.Time, DatePrecision) {
	precision := ParseDatePrecision(date)
	var t time.Time
	var err error

	switch precision {
	case PrecisionNone:
		return time.Time{}, PrecisionNone
	case PrecisionDay:
		t, err = time.Parse(time.DateOnly, date)
	case PrecisionMonth:
		t, err = time.Parse("2006-01", date)
	case PrecisionYear:
		t, err = time.Parse("2006", date)
	}

	if err != nil {
		return time.Time{}, PrecisionNone
	}
	return t, precision
}

// yearPrefix returns the year encoded by the first four characters of s.
// Only the prefix is checked, so "2025-01-05T10:00:00Z" yields 2025.
func yearPrefix(s string) (int, bool) {
	if len(s) < 4 {
		return 0, false
	}
	year := 0
	for i := range 4 {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		year = year*10 + int(c-'0')
	}
	if year == 0 {
		return 0, false
	}
	return year, true
}
