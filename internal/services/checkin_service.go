package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/logging"
	"pyc-official/secretariat/internal/models/dtos"
)

// ErrNotAMember is returned when the caller has no accepted member record.
// Check-in does NOT self-heal by creating one: promotion is an explicit
// administrative action.
var ErrNotAMember = errors.New("no accepted member record for user")

// ErrAlreadyCheckedIn re-exports the repository sentinel for callers.
var ErrAlreadyCheckedIn = repositories.ErrAlreadyCheckedIn

// CheckinService applies the daily check-in transition for a member.
type CheckinService struct {
	members *repositories.MemberRepository
	loc     *time.Location
	now     func() time.Time
}

// NewCheckinService creates a check-in service using the server clock.
func NewCheckinService(members *repositories.MemberRepository, loc *time.Location) *CheckinService {
	return &CheckinService{
		members: members,
		loc:     loc,
		now:     time.Now,
	}
}

// CheckIn records today's check-in for the member linked to userID and
// returns the updated streak. The write is conditional on the storage row
// still being un-checked-in today, so concurrent sessions cannot
// double-increment.
func (s *CheckinService) CheckIn(ctx context.Context, userID string) (*dtos.CheckinResponse, error) {
	member, err := s.members.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check-in lookup failed: %w", err)
	}
	if member == nil {
		return nil, ErrNotAMember
	}

	now := s.now()

	if CheckedInToday(member.LastCheckin, now, s.loc) {
		return nil, ErrAlreadyCheckedIn
	}

	next := NextStreak(member.LastCheckin, now, member.StreakCount, s.loc)

	if err := s.members.RecordCheckin(ctx, member.ID, now, DayStart(now, s.loc), next); err != nil {
		if errors.Is(err, repositories.ErrAlreadyCheckedIn) {
			// another session won the race between read and write
			return nil, ErrAlreadyCheckedIn
		}
		return nil, err
	}

	logging.Info("Check-in recorded",
		"member_id", member.ID,
		"streak", next,
		"reset", next == 1 && member.LastCheckin != nil,
	)

	return &dtos.CheckinResponse{
		LastCheckin: now,
		StreakCount: next,
		ServerTime:  now,
		Reset:       next == 1 && member.LastCheckin != nil,
	}, nil
}
