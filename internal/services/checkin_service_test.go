package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"pyc-official/secretariat/internal/db/repositories"
	gormModels "pyc-official/secretariat/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Setup test database
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	// Auto migrate
	if err := db.AutoMigrate(&gormModels.Member{}, &gormModels.Registration{}); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func createTestMember(t *testing.T, db *gorm.DB, userID string, streak int, lastCheckin *time.Time) *gormModels.Member {
	t.Helper()

	uid := userID
	member := gormModels.Member{
		UserID:      &uid,
		Name:        "Test Member",
		Email:       userID + "@example.com",
		Status:      "accepted",
		MemberSince: time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC),
		LastCheckin: lastCheckin,
		StreakCount: streak,
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("Failed to create member: %v", err)
	}
	return &member
}

func newTestCheckinService(db *gorm.DB, now time.Time) *CheckinService {
	svc := NewCheckinService(repositories.NewMemberRepository(db), time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func TestCheckIn_FirstEver(t *testing.T) {
	db := setupTestDB(t)
	createTestMember(t, db, "user-1", 0, nil)

	now := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)
	svc := newTestCheckinService(db, now)

	resp, err := svc.CheckIn(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.StreakCount != 1 {
		t.Errorf("Expected streak 1, got %d", resp.StreakCount)
	}
	if resp.Reset {
		t.Error("First check-in should not count as a reset")
	}
	if !resp.ServerTime.Equal(now) {
		t.Errorf("Expected server time %v, got %v", now, resp.ServerTime)
	}
}

func TestCheckIn_ContinuesStreak(t *testing.T) {
	db := setupTestDB(t)

	yesterday := time.Date(2025, 6, 9, 23, 55, 0, 0, time.UTC)
	createTestMember(t, db, "user-1", 3, &yesterday)

	now := time.Date(2025, 6, 10, 0, 5, 0, 0, time.UTC)
	svc := newTestCheckinService(db, now)

	resp, err := svc.CheckIn(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.StreakCount != 4 {
		t.Errorf("Expected streak 4, got %d", resp.StreakCount)
	}

	var member gormModels.Member
	if err := db.Where("user_id = ?", "user-1").First(&member).Error; err != nil {
		t.Fatalf("Member not found: %v", err)
	}
	if member.StreakCount != 4 {
		t.Errorf("Expected stored streak 4, got %d", member.StreakCount)
	}
}

func TestCheckIn_ResetsAfterGap(t *testing.T) {
	db := setupTestDB(t)

	threeDaysAgo := time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)
	createTestMember(t, db, "user-1", 5, &threeDaysAgo)

	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	svc := newTestCheckinService(db, now)

	resp, err := svc.CheckIn(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if resp.StreakCount != 1 {
		t.Errorf("Expected streak reset to 1, got %d", resp.StreakCount)
	}
	if !resp.Reset {
		t.Error("Expected reset flag after a gap")
	}
}

func TestCheckIn_SameDayRejected(t *testing.T) {
	db := setupTestDB(t)

	earlierToday := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	createTestMember(t, db, "user-1", 2, &earlierToday)

	now := time.Date(2025, 6, 10, 20, 0, 0, 0, time.UTC)
	svc := newTestCheckinService(db, now)

	_, err := svc.CheckIn(context.Background(), "user-1")
	if !errors.Is(err, ErrAlreadyCheckedIn) {
		t.Fatalf("Expected ErrAlreadyCheckedIn, got %v", err)
	}

	// streak must be untouched
	var member gormModels.Member
	if err := db.Where("user_id = ?", "user-1").First(&member).Error; err != nil {
		t.Fatalf("Member not found: %v", err)
	}
	if member.StreakCount != 2 {
		t.Errorf("Expected streak to stay 2, got %d", member.StreakCount)
	}
}

func TestCheckIn_NotAMember(t *testing.T) {
	db := setupTestDB(t)

	svc := newTestCheckinService(db, time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC))

	_, err := svc.CheckIn(context.Background(), "nobody")
	if !errors.Is(err, ErrNotAMember) {
		t.Fatalf("Expected ErrNotAMember, got %v", err)
	}
}

func TestRecordCheckin_ConditionalWriteBlocksSecondWriter(t *testing.T) {
	db := setupTestDB(t)
	member := createTestMember(t, db, "user-1", 0, nil)

	repo := repositories.NewMemberRepository(db)

	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	dayStart := DayStart(now, time.UTC)

	if err := repo.RecordCheckin(context.Background(), member.ID, now, dayStart, 1); err != nil {
		t.Fatalf("First write failed: %v", err)
	}

	// Second writer raced past the read and must lose on the guard
	err := repo.RecordCheckin(context.Background(), member.ID, now.Add(time.Minute), dayStart, 2)
	if !errors.Is(err, repositories.ErrAlreadyCheckedIn) {
		t.Fatalf("Expected ErrAlreadyCheckedIn, got %v", err)
	}

	var stored gormModels.Member
	if err := db.Where("id = ?", member.ID).First(&stored).Error; err != nil {
		t.Fatalf("Member not found: %v", err)
	}
	if stored.StreakCount != 1 {
		t.Errorf("Expected streak 1 after racing writers, got %d", stored.StreakCount)
	}
}
