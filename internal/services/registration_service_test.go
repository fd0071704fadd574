package services

import (
	"context"
	"errors"
	"testing"

	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/models/dtos"
	gormModels "pyc-official/secretariat/internal/models/gorm"
)

func TestRegistrationCreate_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(repositories.NewRegistrationRepository(db))

	cases := []dtos.CreateRegistrationRequest{
		{Name: "", Email: "a@b.com"},
		{Name: "No Email", Email: ""},
		{Name: "Bad Email", Email: "not-an-email"},
	}

	for _, req := range cases {
		if _, err := svc.Create(context.Background(), req); !errors.Is(err, ErrInvalidRegistration) {
			t.Errorf("Create(%+v): expected ErrInvalidRegistration, got %v", req, err)
		}
	}
}

func TestRegistrationCreate_TrimsAndDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(repositories.NewRegistrationRepository(db))

	reg, err := svc.Create(context.Background(), dtos.CreateRegistrationRequest{
		Name:  "  Spaced Name  ",
		Email: " trim@example.com ",
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if reg.Name != "Spaced Name" || reg.Email != "trim@example.com" {
		t.Errorf("Fields not trimmed: %q / %q", reg.Name, reg.Email)
	}
	if reg.Status != "pending" {
		t.Errorf("Expected pending, got %s", reg.Status)
	}
	if reg.ID == "" {
		t.Error("Expected generated id")
	}
}

func TestSetStatus_ReviewStatusesOnly(t *testing.T) {
	db := setupTestDB(t)
	repo := repositories.NewRegistrationRepository(db)
	svc := NewRegistrationService(repo)

	reg, err := svc.Create(context.Background(), dtos.CreateRegistrationRequest{
		Name: "Reviewee", Email: "review@example.com",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := svc.SetStatus(context.Background(), reg.ID, "contacted"); err != nil {
		t.Fatalf("Expected contacted to be allowed, got %v", err)
	}

	// accepted is only reachable through promotion
	if err := svc.SetStatus(context.Background(), reg.ID, "accepted"); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition for accepted, got %v", err)
	}
	if err := svc.SetStatus(context.Background(), reg.ID, "bogus"); !errors.Is(err, ErrInvalidStatusTransition) {
		t.Errorf("Expected ErrInvalidStatusTransition for bogus, got %v", err)
	}
}

func TestSetStatus_MissingRow(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(repositories.NewRegistrationRepository(db))

	err := svc.SetStatus(context.Background(), "no-such-id", "contacted")
	if !errors.Is(err, repositories.ErrRegistrationNotFound) {
		t.Fatalf("Expected ErrRegistrationNotFound, got %v", err)
	}
}

func TestPromote_MovesRegistrationToMembers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(repositories.NewRegistrationRepository(db))

	uid := "user-p1"
	reg := createTestRegistration(t, db, &uid, "promote@example.com")

	member, err := svc.Promote(context.Background(), reg.ID)
	if err != nil {
		t.Fatalf("Promote failed: %v", err)
	}

	if member.Status != "accepted" {
		t.Errorf("Expected accepted member, got %s", member.Status)
	}
	if member.MemberSince.IsZero() {
		t.Error("Expected member_since to be stamped")
	}
	if member.StreakCount != 0 {
		t.Errorf("Expected zero streak, got %d", member.StreakCount)
	}

	// registration row must be gone
	var count int64
	db.Model(&gormModels.Registration{}).Where("id = ?", reg.ID).Count(&count)
	if count != 0 {
		t.Error("Promoted registration still present")
	}
}

func TestPromote_RejectsDuplicateMember(t *testing.T) {
	db := setupTestDB(t)
	svc := NewRegistrationService(repositories.NewRegistrationRepository(db))

	uid := "user-p2"
	createTestMember(t, db, uid, 0, nil)
	reg := createTestRegistration(t, db, &uid, "dupe@example.com")

	_, err := svc.Promote(context.Background(), reg.ID)
	if !errors.Is(err, repositories.ErrMemberExists) {
		t.Fatalf("Expected ErrMemberExists, got %v", err)
	}
}
