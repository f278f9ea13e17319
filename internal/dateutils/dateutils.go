// Package dateutils provides common date and time operations used throughout
// the application.
package dateutils

import (
	"fmt"
	"strings"
	"time"

	"fjacquet/smartfinance/internal/models"
)

// DateLayoutISO is the canonical date format for user-facing input/output.
const DateLayoutISO = "2006-01-02"

// CommonFormats is a list of standard formats to try when parsing dates.
var CommonFormats = []string{
	DateLayoutISO,
	"2006-01-02 15:04:05",
	time.RFC3339,
	"02.01.2006",
	"02/01/2006",
	"Jan 2, 2006",
}

// ParseDate attempts to parse a date string using multiple common formats.
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)
	for _, format := range CommonFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date: %s", dateStr)
}

// StartOfDay returns the date at 00:00:00.
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the date at 23:59:59.999999999, so range checks against
// an end date are end-of-day inclusive.
func EndOfDay(date time.Time) time.Time {
	return StartOfDay(date).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfMonth returns the first day of the month for a given date.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return StartOfMonth(date).AddDate(0, 1, -1)
}

// SameMonth reports whether two dates fall in the same calendar month and year.
func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// NextOccurrence advances a recurrence period from the given time.
// Monthly steps use calendar arithmetic: time.AddDate normalizes days that
// do not exist in the target month (Jan 31 + 1 month lands in early March).
func NextOccurrence(last time.Time, r models.Recurrence) time.Time {
	switch r {
	case models.RecurrenceDaily:
		return last.AddDate(0, 0, 1)
	case models.RecurrenceWeekly:
		return last.AddDate(0, 0, 7)
	case models.RecurrenceMonthly:
		return last.AddDate(0, 1, 0)
	default:
		return last
	}
}
