package utils

import "time"

// WeekStart returns the Monday of the calendar week containing t,
// preserving t's time of day. Weeks run Monday through Sunday; Sunday
// counts as weekday 7, not 0.
func WeekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -(isoWeekday(t) - 1))
}

// WeekEnd returns the Sunday of the calendar week containing t, preserving
// t's time of day.
func WeekEnd(t time.Time) time.Time {
	return t.AddDate(0, 0, 7-isoWeekday(t))
}

func isoWeekday(t time.Time) int {
	if wd := int(t.Weekday()); wd != 0 {
		return wd
	}
	return 7
}
