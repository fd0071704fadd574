package services

import (
	"testing"
	"time"
)

func TestDayStart_TruncatesInLocation(t *testing.T) {
	karachi, err := time.LoadLocation("Asia/Karachi")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	// 01:30 on June 10 in Karachi is still June 9 in UTC
	instant := time.Date(2025, 6, 9, 20, 30, 0, 0, time.UTC)

	got := DayStart(instant, karachi)
	want := time.Date(2025, 6, 10, 0, 0, 0, 0, karachi)
	if !got.Equal(want) {
		t.Errorf("DayStart = %v, want %v", got, want)
	}
}

func TestSameCalendarDay(t *testing.T) {
	morning := time.Date(2025, 6, 10, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, 6, 10, 23, 59, 59, 0, time.UTC)
	nextDay := time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

	if !SameCalendarDay(morning, night, time.UTC) {
		t.Error("Expected same calendar day for morning and night")
	}
	if SameCalendarDay(night, nextDay, time.UTC) {
		t.Error("Expected different calendar days across midnight")
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	yesterdayNight := time.Date(2025, 6, 9, 23, 59, 0, 0, time.UTC)
	twoDaysAgo := time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC)

	if got := NextStreak(nil, now, 0, time.UTC); got != 1 {
		t.Errorf("No previous check-in: got %d, want 1", got)
	}
	if got := NextStreak(&yesterdayNight, now, 7, time.UTC); got != 8 {
		t.Errorf("Consecutive day: got %d, want 8", got)
	}
	if got := NextStreak(&twoDaysAgo, now, 7, time.UTC); got != 1 {
		t.Errorf("Gap: got %d, want 1", got)
	}
}
