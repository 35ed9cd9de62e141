// Package timeutil holds the small pieces of calendar math the schedule
// views depend on: same-day comparison, duration in hours, and hour-slot
// construction for the hourly grid.
package timeutil

import (
	"fmt"
	"time"
)

// FormatTime renders an instant as a short clock time, e.g. "09:00".
func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// FormatDate renders an instant as a short date, e.g. "Sep 16, 2025".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatRange renders a start/end pair as "09:00–10:00".
func FormatRange(start, end time.Time) string {
	return fmt.Sprintf("%s–%s", FormatTime(start), FormatTime(end))
}

// SameDay reports whether two instants fall on the same calendar day
// in the local zone of a. A 24h window is NOT what the agenda wants;
// it wants calendar-date equality.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.In(a.Location()).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// HoursBetween returns end minus start in fractional hours.
func HoursBetween(start, end time.Time) float64 {
	return end.Sub(start).Hours()
}

// DayStart returns midnight of the calendar day containing t.
func DayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// HourSlot returns the instant at the given hour on the calendar day
// containing t.
func HourSlot(t time.Time, hour int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, 0, 0, 0, t.Location())
}
