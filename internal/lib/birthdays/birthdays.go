// Package birthdays finds anniversaries that fall within a window of days
// starting at a reference date.
package birthdays

import (
	"errors"
	"time"
)

// DefaultWindow is the number of days looked ahead when a caller has no
// preference.
const DefaultWindow = 7

var ErrInvalidWindow = errors.New("window days must not be negative")

// Entry is the month-day of a recurring anniversary owned by ID.
type Entry struct {
	ID    int64
	Month time.Month
	Day   int
}

// Upcoming returns the entries whose next occurrence is between today and
// today+windowDays, both inclusive. Order of entries is preserved.
// Only the calendar date of today is used.
func Upcoming(entries []Entry, today time.Time, windowDays int) ([]Entry, error) {
	if windowDays < 0 {
		return nil, ErrInvalidWindow
	}

	from := dateOf(today)
	matched := make([]Entry, 0)

	for _, e := range entries {
		days := daysBetween(from, occurrence(e.Month, e.Day, from))
		if days <= windowDays {
			matched = append(matched, e)
		}
	}

	return matched, nil
}

// Occurrence returns the first date on or after today on which month/day
// is celebrated. February 29 is celebrated on February 28 in non-leap years.
func Occurrence(month time.Month, day int, today time.Time) time.Time {
	return occurrence(month, day, dateOf(today))
}

// DaysUntil is the number of calendar days from today to the next
// occurrence of month/day.
func DaysUntil(month time.Month, day int, today time.Time) int {
	from := dateOf(today)
	return daysBetween(from, occurrence(month, day, from))
}

func occurrence(month time.Month, day int, from time.Time) time.Time {
	next := onYear(from.Year(), month, day)
	if next.Before(from) {
		next = onYear(from.Year()+1, month, day)
	}

	return next
}

func onYear(year int, month time.Month, day int) time.Time {
	if month == time.February && day == 29 && !isLeap(year) {
		day = 28
	}

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// dateOf drops the clock and location of t so day arithmetic is not
// affected by DST transitions.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
