package services

import (
	"context"
	"testing"
	"time"

	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/models/dtos"
	"pyc-official/secretariat/internal/models/entities"
	gormModels "pyc-official/secretariat/internal/models/gorm"

	"gorm.io/gorm"
)

func newTestProfileService(db *gorm.DB) *ProfileService {
	return NewProfileService(
		repositories.NewMemberRepository(db),
		repositories.NewRegistrationRepository(db),
		time.UTC,
	)
}

func createTestRegistration(t *testing.T, db *gorm.DB, userID *string, email string) *gormModels.Registration {
	t.Helper()

	reg := gormModels.Registration{
		UserID: userID,
		Name:   "Test Registrant",
		Email:  email,
		Status: "pending",
	}
	if err := db.Create(&reg).Error; err != nil {
		t.Fatalf("Failed to create registration: %v", err)
	}
	return &reg
}

func TestResolve_MemberBeatsRegistration(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	uid := "user-1"
	createTestMember(t, db, uid, 0, nil)
	createTestRegistration(t, db, &uid, "user-1@example.com")

	rec, err := svc.Resolve(context.Background(), uid, "user-1@example.com", "Test")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Kind != entities.ProfileKindMember {
		t.Errorf("Expected member kind, got %s", rec.Kind)
	}
	if rec.Member == nil {
		t.Fatal("Expected member payload to be set")
	}
}

func TestResolve_RegistrationByUserID(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	uid := "user-2"
	createTestRegistration(t, db, &uid, "user-2@example.com")

	rec, err := svc.Resolve(context.Background(), uid, "user-2@example.com", "Test")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Kind != entities.ProfileKindRegistration {
		t.Errorf("Expected registration kind, got %s", rec.Kind)
	}
}

func TestResolve_RegistrationByEmailFallback(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	// legacy row: submitted before the user ever signed in, no user_id
	createTestRegistration(t, db, nil, "legacy@example.com")

	rec, err := svc.Resolve(context.Background(), "user-3", "legacy@example.com", "Legacy User")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Kind != entities.ProfileKindRegistration {
		t.Errorf("Expected registration kind via email fallback, got %s", rec.Kind)
	}
	if rec.Registration.UserID != nil {
		t.Error("Resolve must not mutate the stored row")
	}
}

func TestResolve_TransientWhenUnknown(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	rec, err := svc.Resolve(context.Background(), "user-4", "new@example.com", "Brand New")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Kind != entities.ProfileKindTransient {
		t.Fatalf("Expected transient kind, got %s", rec.Kind)
	}
	if rec.Transient.Name != "Brand New" || rec.Transient.Email != "new@example.com" {
		t.Errorf("Transient record not pre-filled: %+v", rec.Transient)
	}
	if rec.CanCheckIn() {
		t.Error("Transient records must not be check-in eligible")
	}
}

func TestSave_TransientCreatesRegistration(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	req := dtos.UpdateProfileRequest{Name: "Saved Name", City: "Lahore"}
	rec, err := svc.Save(context.Background(), "user-5", "five@example.com", "Display Five", req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Kind != entities.ProfileKindRegistration {
		t.Fatalf("Expected saved record to resolve as registration, got %s", rec.Kind)
	}
	if rec.Registration.Name != "Saved Name" {
		t.Errorf("Expected name Saved Name, got %s", rec.Registration.Name)
	}
	if rec.Registration.UserID == nil || *rec.Registration.UserID != "user-5" {
		t.Error("Expected new registration to carry the user id")
	}
	if rec.Registration.Status != "pending" {
		t.Errorf("Expected pending status, got %s", rec.Registration.Status)
	}
}

func TestSave_BackfillsUserIDOnLegacyRow(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	createTestRegistration(t, db, nil, "legacy@example.com")

	req := dtos.UpdateProfileRequest{Name: "Updated Legacy", Phone: "0300-0000000"}
	rec, err := svc.Save(context.Background(), "user-6", "legacy@example.com", "Legacy User", req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Registration.UserID == nil || *rec.Registration.UserID != "user-6" {
		t.Error("Expected user_id backfill on the legacy row")
	}
	if rec.Registration.Name != "Updated Legacy" {
		t.Errorf("Expected updated name, got %s", rec.Registration.Name)
	}
}

func TestSave_EmailNeverChanges(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)

	uid := "user-7"
	member := createTestMember(t, db, uid, 0, nil)

	req := dtos.UpdateProfileRequest{Name: "Renamed"}
	rec, err := svc.Save(context.Background(), uid, "other@example.com", "Renamed", req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if rec.Member.Email != member.Email {
		t.Errorf("Email changed from %s to %s", member.Email, rec.Member.Email)
	}
}

func TestBuildResponse_MemberFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestProfileService(db)
	svc.now = func() time.Time { return time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC) }

	uid := "user-8"
	checkin := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	createTestMember(t, db, uid, 4, &checkin)

	rec, err := svc.Resolve(context.Background(), uid, "", "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	resp := svc.BuildResponse(rec)
	if !resp.CheckedInToday {
		t.Error("Expected checkedInToday true")
	}
	if resp.StreakCount != 4 {
		t.Errorf("Expected streak 4, got %d", resp.StreakCount)
	}
	if resp.ServerDate != "2025-06-10" {
		t.Errorf("Expected server date 2025-06-10, got %s", resp.ServerDate)
	}
}
