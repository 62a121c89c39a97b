// Package week provides the ISO-8601 week arithmetic the reminder and alert
// passes are timed against.
package week

import "time"

// Current returns the ISO-8601 year and week number for t. Note that near the
// January boundary the ISO year can differ from t.Year().
func Current(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// Previous returns the ISO year and week number of the week before t's week.
// Going through t-7d keeps the year correct across the January boundary.
func Previous(t time.Time) (year, week int) {
	return t.AddDate(0, 0, -7).ISOWeek()
}

// Deadline computes the submission cutoff for a log pending at time t:
// seven days out, clamped to the very end of that day.
func Deadline(t time.Time) time.Time {
	d := t.AddDate(0, 0, 7)
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, int(999*time.Millisecond), d.Location())
}
