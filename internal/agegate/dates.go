package agegate

import (
	"strconv"
	"strings"
	"time"
)

// ParseBirthDate validates the three submitted date components and returns
// the date of birth at midnight UTC. It returns ok=false when any component
// is missing or non-integral, out of range (month 1-12, day 1-31, year
// after 1900 up to and including the current year), or when the components
// don't name a real calendar day (Feb 30, day 31 in a 30-day month).
func ParseBirthDate(month, day, year string, now time.Time) (time.Time, bool) {
	m, err := parseComponent(month)
	if err != nil {
		return time.Time{}, false
	}
	d, err := parseComponent(day)
	if err != nil {
		return time.Time{}, false
	}
	y, err := parseComponent(year)
	if err != nil {
		return time.Time{}, false
	}

	if m < 1 || m > 12 || d < 1 || d > 31 || y <= 1900 || y > now.UTC().Year() {
		return time.Time{}, false
	}

	// time.Date normalises overflowing components (Feb 30 becomes Mar 1-2),
	// so a round-trip mismatch means the calendar day doesn't exist.
	dob := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if dob.Year() != y || dob.Month() != time.Month(m) || dob.Day() != d {
		return time.Time{}, false
	}
	return dob, true
}

func parseComponent(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// Age returns the age in whole years at the given instant. The elapsed
// delta is projected onto the Unix epoch and measured as a UTC year
// difference, which floors partial years without the timezone and leap-day
// artifacts of naive year subtraction.
func Age(dob, now time.Time) int {
	elapsed := now.Sub(dob)
	return time.Unix(0, 0).UTC().Add(elapsed).Year() - 1970
}
