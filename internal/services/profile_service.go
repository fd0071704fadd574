package services

import (
	"context"
	"fmt"
	"time"

	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/models/dtos"
	"pyc-official/secretariat/internal/models/entities"
	gormModels "pyc-official/secretariat/internal/models/gorm"
)

// ProfileService resolves and updates the caller's profile record across
// the two collections it may live in.
type ProfileService struct {
	members       *repositories.MemberRepository
	registrations *repositories.RegistrationRepository
	loc           *time.Location
	now           func() time.Time
}

func NewProfileService(members *repositories.MemberRepository, registrations *repositories.RegistrationRepository, loc *time.Location) *ProfileService {
	return &ProfileService{
		members:       members,
		registrations: registrations,
		loc:           loc,
		now:           time.Now,
	}
}

// Resolve locates the single best-matching record for an authenticated
// identity. Lookup order, first match wins:
//  1. members by user id
//  2. team_registrations by user id
//  3. team_registrations by email (legacy rows without user_id linkage)
//  4. transient pending record pre-filled from the identity
//
// Absence is never an error; only storage failures propagate.
func (s *ProfileService) Resolve(ctx context.Context, userID, email, displayName string) (*entities.ProfileRecord, error) {
	member, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if member != nil {
		return &entities.ProfileRecord{Kind: entities.ProfileKindMember, Member: member}, nil
	}

	reg, err := s.registrations.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reg == nil && email != "" {
		reg, err = s.registrations.FindByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
	}
	if reg != nil {
		return &entities.ProfileRecord{Kind: entities.ProfileKindRegistration, Registration: reg}, nil
	}

	return &entities.ProfileRecord{
		Kind: entities.ProfileKindTransient,
		Transient: &entities.TransientProfile{
			UserID: userID,
			Name:   displayName,
			Email:  email,
		},
	}, nil
}

// Save writes the editable profile fields back to whichever collection the
// record resolved to. A transient record is persisted as a new pending
// registration. Email is immutable throughout.
func (s *ProfileService) Save(ctx context.Context, userID, email, displayName string, req dtos.UpdateProfileRequest) (*entities.ProfileRecord, error) {
	rec, err := s.Resolve(ctx, userID, email, displayName)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{
		"name":      req.Name,
		"phone":     req.Phone,
		"city":      req.City,
		"twitter":   req.Twitter,
		"instagram": req.Instagram,
		"linkedin":  req.LinkedIn,
	}

	switch rec.Kind {
	case entities.ProfileKindMember:
		if err := s.members.UpdateProfileFields(ctx, rec.Member.ID, fields); err != nil {
			return nil, err
		}

	case entities.ProfileKindRegistration:
		// backfill the auth linkage on legacy email-matched rows
		if rec.Registration.UserID == nil && userID != "" {
			fields["user_id"] = userID
		}
		if err := s.registrations.UpdateProfileFields(ctx, rec.Registration.ID, fields); err != nil {
			return nil, err
		}

	case entities.ProfileKindTransient:
		uid := userID
		newReg := gormModels.Registration{
			UserID:    &uid,
			Name:      req.Name,
			Email:     email,
			Phone:     req.Phone,
			City:      req.City,
			Twitter:   req.Twitter,
			Instagram: req.Instagram,
			LinkedIn:  req.LinkedIn,
		}
		if newReg.Name == "" {
			newReg.Name = displayName
		}
		if err := s.registrations.Create(ctx, &newReg); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unknown profile kind: %s", rec.Kind)
	}

	return s.Resolve(ctx, userID, email, displayName)
}

// BuildResponse flattens a resolved record into the client-facing DTO,
// deriving checkedInToday and the canonical server date.
func (s *ProfileService) BuildResponse(rec *entities.ProfileRecord) *dtos.ProfileResponse {
	now := s.now()

	resp := &dtos.ProfileResponse{
		Kind:       string(rec.Kind),
		ID:         rec.ID(),
		Name:       rec.Name(),
		Email:      rec.Email(),
		Status:     rec.Status(),
		ServerDate: DayStart(now, s.loc).Format("2006-01-02"),
	}

	switch rec.Kind {
	case entities.ProfileKindMember:
		m := rec.Member
		if m.UserID != nil {
			resp.UserID = *m.UserID
		}
		resp.Phone = m.Phone
		resp.City = m.City
		resp.Twitter = m.Twitter
		resp.Instagram = m.Instagram
		resp.LinkedIn = m.LinkedIn
		resp.MemberSince = &m.MemberSince
		resp.LastCheckin = m.LastCheckin
		resp.StreakCount = m.StreakCount
		resp.CheckedInToday = CheckedInToday(m.LastCheckin, now, s.loc)

	case entities.ProfileKindRegistration:
		r := rec.Registration
		if r.UserID != nil {
			resp.UserID = *r.UserID
		}
		resp.Phone = r.Phone
		resp.City = r.City
		resp.Twitter = r.Twitter
		resp.Instagram = r.Instagram
		resp.LinkedIn = r.LinkedIn

	case entities.ProfileKindTransient:
		resp.UserID = rec.Transient.UserID
	}

	return resp
}
