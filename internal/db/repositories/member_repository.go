package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	gormModels "pyc-official/secretariat/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrAlreadyCheckedIn is returned when the conditional check-in update
// matches no row, i.e. last_checkin already falls on the current day.
var ErrAlreadyCheckedIn = errors.New("already checked in today")

type MemberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new GORM-based member repository
func NewMemberRepository(db *gorm.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// FindByUserID retrieves a member by the external auth-provider id.
// Absence is not an error: returns (nil, nil) so the resolver can fall
// through to the next collection.
func (r *MemberRepository) FindByUserID(ctx context.Context, userID string) (*gormModels.Member, error) {
	var member gormModels.Member

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &member, nil
}

// GetByID retrieves a member by primary key
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*gormModels.Member, error) {
	var member gormModels.Member

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch member: %w", err)
	}

	return &member, nil
}

// UpdateProfileFields writes the editable profile fields. Email and
// member_since are never touched here.
func (r *MemberRepository) UpdateProfileFields(ctx context.Context, id string, fields map[string]interface{}) error {
	delete(fields, "email")
	delete(fields, "member_since")

	err := r.db.WithContext(ctx).
		Model(&gormModels.Member{}).
		Where("id = ?", id).
		Updates(fields).Error

	if err != nil {
		return fmt.Errorf("failed to update member profile: %w", err)
	}
	return nil
}

// RecordCheckin performs the conditional atomic streak update: the row is
// written only if last_checkin is absent or before the start of the current
// day, so two concurrent sessions can never double-increment the streak.
func (r *MemberRepository) RecordCheckin(ctx context.Context, id string, now time.Time, dayStart time.Time, nextStreak int) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Member{}).
		Where("id = ? AND (last_checkin IS NULL OR last_checkin < ?)", id, dayStart).
		Updates(map[string]interface{}{
			"last_checkin": now,
			"streak_count": nextStreak,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to record check-in: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		return ErrAlreadyCheckedIn
	}

	return nil
}
