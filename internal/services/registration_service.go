package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/logging"
	"pyc-official/secretariat/internal/models/dtos"
	gormModels "pyc-official/secretariat/internal/models/gorm"
)

var (
	// ErrInvalidRegistration covers malformed public form submissions
	ErrInvalidRegistration = errors.New("name and email are required")
	// ErrInvalidStatusTransition guards the pending <-> contacted toggle
	ErrInvalidStatusTransition = errors.New("status must be pending or contacted")
)

// RegistrationService handles the volunteer form and the dashboard review
// flow, including promotion to member.
type RegistrationService struct {
	registrations *repositories.RegistrationRepository
	now           func() time.Time
}

func NewRegistrationService(registrations *repositories.RegistrationRepository) *RegistrationService {
	return &RegistrationService{
		registrations: registrations,
		now:           time.Now,
	}
}

// Create stores a new pending registration from the public form.
func (s *RegistrationService) Create(ctx context.Context, req dtos.CreateRegistrationRequest) (*gormModels.Registration, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)

	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidRegistration
	}

	reg := gormModels.Registration{
		Name:   name,
		Email:  email,
		Phone:  strings.TrimSpace(req.Phone),
		City:   strings.TrimSpace(req.City),
		Status: constants.StatusPending.String(),
	}

	if err := s.registrations.Create(ctx, &reg); err != nil {
		return nil, err
	}

	logging.Info("Registration submitted", "registration_id", reg.ID, "city", reg.City)
	return &reg, nil
}

// List returns all registrations for the dashboard, newest first.
func (s *RegistrationService) List(ctx context.Context) ([]gormModels.Registration, error) {
	return s.registrations.List(ctx)
}

// SetStatus toggles a registration between pending and contacted.
// Accepted is unreachable here; promotion is the only way in.
func (s *RegistrationService) SetStatus(ctx context.Context, id string, status string) error {
	st := constants.RegistrationStatus(status)
	if !constants.IsReviewStatus(st) {
		return ErrInvalidStatusTransition
	}

	return s.registrations.UpdateStatus(ctx, id, st)
}

// Promote converts a registration into an accepted member, stamping
// member_since and initializing the streak at zero.
func (s *RegistrationService) Promote(ctx context.Context, id string) (*gormModels.Member, error) {
	member, err := s.registrations.Promote(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("promotion failed: %w", err)
	}

	logging.Info("Registration promoted to member",
		"registration_id", id,
		"member_id", member.ID,
	)
	return member, nil
}
