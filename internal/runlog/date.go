package runlog

import "time"

// Day normalises t to midnight UTC of its calendar date. All dates handled by
// this package pass through Day, so equality checks compare calendar days.
func Day(t time.Time) time.Time {
	if t.IsZero() {
		return time.Time{}
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a calendar date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Today returns the current UTC calendar date.
func Today() time.Time {
	return Day(time.Now())
}

// weekdayOffset returns days since Monday (Monday=0 ... Sunday=6).
func weekdayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// MondayOf returns the Monday starting the week that contains t.
func MondayOf(t time.Time) time.Time {
	d := Day(t)
	return d.AddDate(0, 0, -weekdayOffset(d))
}

func addDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}

// daysBetween counts whole calendar days from start to end. It works on Unix
// seconds because a time.Duration overflows after roughly 292 years.
func daysBetween(start, end time.Time) int {
	return int((Day(end).Unix() - Day(start).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
