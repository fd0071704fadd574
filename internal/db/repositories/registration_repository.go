package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pyc-official/secretariat/internal/constants"
	gormModels "pyc-official/secretariat/internal/models/gorm"

	"gorm.io/gorm"
)

var (
	// ErrRegistrationNotFound is returned for writes against a missing row
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrMemberExists guards the one-member-per-user invariant at promotion
	ErrMemberExists = errors.New("member record already exists for this user")
)

type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new GORM-based registration repository
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a new pending registration
func (r *RegistrationRepository) Create(ctx context.Context, reg *gormModels.Registration) error {
	if reg.Status == "" {
		reg.Status = constants.StatusPending.String()
	}

	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		return fmt.Errorf("failed to create registration: %w", err)
	}
	return nil
}

// FindByUserID retrieves a registration by the external auth-provider id.
// Absence degrades to (nil, nil).
func (r *RegistrationRepository) FindByUserID(ctx context.Context, userID string) (*gormModels.Registration, error) {
	var reg gormModels.Registration

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&reg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch registration: %w", err)
	}

	return &reg, nil
}

// FindByEmail is the legacy fallback for rows created before user_id
// linkage existed.
func (r *RegistrationRepository) FindByEmail(ctx context.Context, email string) (*gormModels.Registration, error) {
	var reg gormModels.Registration

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		First(&reg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch registration by email: %w", err)
	}

	return &reg, nil
}

// List returns all registrations, newest first
func (r *RegistrationRepository) List(ctx context.Context) ([]gormModels.Registration, error) {
	var regs []gormModels.Registration

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&regs).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list registrations: %w", err)
	}

	return regs, nil
}

// UpdateStatus toggles between the review statuses (pending/contacted)
func (r *RegistrationRepository) UpdateStatus(ctx context.Context, id string, status constants.RegistrationStatus) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Registration{}).
		Where("id = ?", id).
		Update("status", status.String())

	if res.Error != nil {
		return fmt.Errorf("failed to update registration status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// UpdateProfileFields writes the editable profile fields; email stays fixed.
func (r *RegistrationRepository) UpdateProfileFields(ctx context.Context, id string, fields map[string]interface{}) error {
	delete(fields, "email")

	err := r.db.WithContext(ctx).
		Model(&gormModels.Registration{}).
		Where("id = ?", id).
		Updates(fields).Error

	if err != nil {
		return fmt.Errorf("failed to update registration profile: %w", err)
	}
	return nil
}

// Promote moves a registration into the members table in one transaction:
// the member row is stamped with member_since and a zero streak, and the
// registration row is removed so a user can only ever resolve to one record.
func (r *RegistrationRepository) Promote(ctx context.Context, id string, now time.Time) (*gormModels.Member, error) {
	var member *gormModels.Member

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var reg gormModels.Registration
		if err := tx.Where("id = ?", id).First(&reg).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRegistrationNotFound
			}
			return fmt.Errorf("failed to fetch registration: %w", err)
		}

		// One member per user: guard on user_id when linked, else on email
		var count int64
		q := tx.Model(&gormModels.Member{})
		if reg.UserID != nil {
			q = q.Where("user_id = ?", *reg.UserID)
		} else {
			q = q.Where("email = ?", reg.Email)
		}
		if err := q.Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check existing member: %w", err)
		}
		if count > 0 {
			return ErrMemberExists
		}

		newMember := gormModels.Member{
			UserID:      reg.UserID,
			Name:        reg.Name,
			Email:       reg.Email,
			Phone:       reg.Phone,
			City:        reg.City,
			Twitter:     reg.Twitter,
			Instagram:   reg.Instagram,
			LinkedIn:    reg.LinkedIn,
			Status:      constants.StatusAccepted.String(),
			MemberSince: now,
			StreakCount: 0,
		}

		if err := tx.Create(&newMember).Error; err != nil {
			return fmt.Errorf("failed to create member: %w", err)
		}

		if err := tx.Delete(&reg).Error; err != nil {
			return fmt.Errorf("failed to remove promoted registration: %w", err)
		}

		member = &newMember
		return nil
	})

	if err != nil {
		return nil, err
	}

	return member, nil
}
