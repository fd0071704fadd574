package services

import "time"

// All streak math truncates to calendar days in a single configured
// location, using the server clock. Client timestamps are never trusted.

// DayStart truncates t to midnight in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// SameCalendarDay reports whether a and b fall on the same calendar day.
func SameCalendarDay(a, b time.Time, loc *time.Location) bool {
	return DayStart(a, loc).Equal(DayStart(b, loc))
}

// CheckedInToday reports whether lastCheckin falls on now's calendar day.
func CheckedInToday(lastCheckin *time.Time, now time.Time, loc *time.Location) bool {
	if lastCheckin == nil {
		return false
	}
	return SameCalendarDay(*lastCheckin, now, loc)
}

// NextStreak is the check-in transition rule:
//   - no previous check-in        -> 1
//   - last check-in was yesterday -> current + 1
//   - anything else               -> 1 (streak reset)
//
// Same-day check-ins never reach this function; callers reject them first.
func NextStreak(lastCheckin *time.Time, now time.Time, current int, loc *time.Location) int {
	if lastCheckin == nil {
		return 1
	}

	yesterday := DayStart(now, loc).AddDate(0, 0, -1)
	if DayStart(*lastCheckin, loc).Equal(yesterday) {
		return current + 1
	}

	return 1
}
