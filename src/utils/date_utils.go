package utils

import (
	"log"
	"strconv"
	"strings"
	"time"
)

const DefaultDateFormat = "02-01-2006"

// ParseDate parses a date string using the default format.
// Logs an error and returns zero time if parsing fails.
func ParseDate(dateStr string) time.Time {
	t, err := time.Parse(DefaultDateFormat, dateStr)
	if err != nil {
		log.Printf("Error parsing date '%s' with format '%s': %v. Returning zero time.", dateStr, DefaultDateFormat, err)
		return time.Time{}
	}
	return t
}

// ParseHour extracts the hour component from a "HH:MM" clock string.
// The second return value reports whether the hour was parsable.
func ParseHour(timeStr string) (int, bool) {
	parts := strings.SplitN(timeStr, ":", 2)
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 || hour > 23 {
		return 0, false
	}
	return hour, true
}

// MonthYearLabel renders a DD-MM-YYYY date as "<Month name> <Year>",
// e.g. "June 2024". Returns "N/A" when the date cannot be parsed.
func MonthYearLabel(dateStr string) string {
	t := ParseDate(dateStr)
	if t.IsZero() {
		return "N/A"
	}
	return t.Month().String() + " " + strconv.Itoa(t.Year())
}
