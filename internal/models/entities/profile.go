package entities

import (
	"time"

	gormModels "pyc-official/secretariat/internal/models/gorm"
)

// ProfileKind discriminates which collection a resolved profile came from.
type ProfileKind string

const (
	// ProfileKindMember: accepted record in the members table
	ProfileKindMember ProfileKind = "member"
	// ProfileKindRegistration: pending/contacted record in team_registrations
	ProfileKindRegistration ProfileKind = "registration"
	// ProfileKindTransient: synthesized, not yet stored anywhere
	ProfileKindTransient ProfileKind = "transient"
)

// ProfileRecord is the tagged union returned by the profile resolver.
// Exactly one of Member/Registration is set for the stored kinds; both are
// nil for transient records, whose fields live in Transient.
type ProfileRecord struct {
	Kind         ProfileKind
	Member       *gormModels.Member
	Registration *gormModels.Registration
	Transient    *TransientProfile
}

// TransientProfile carries the pre-filled fields of an unsaved record.
type TransientProfile struct {
	UserID string
	Name   string
	Email  string
}

// ID returns the stored document id, or "" for transient records.
func (p *ProfileRecord) ID() string {
	switch p.Kind {
	case ProfileKindMember:
		return p.Member.ID
	case ProfileKindRegistration:
		return p.Registration.ID
	}
	return ""
}

func (p *ProfileRecord) Name() string {
	switch p.Kind {
	case ProfileKindMember:
		return p.Member.Name
	case ProfileKindRegistration:
		return p.Registration.Name
	}
	return p.Transient.Name
}

func (p *ProfileRecord) Email() string {
	switch p.Kind {
	case ProfileKindMember:
		return p.Member.Email
	case ProfileKindRegistration:
		return p.Registration.Email
	}
	return p.Transient.Email
}

func (p *ProfileRecord) Status() string {
	switch p.Kind {
	case ProfileKindMember:
		return p.Member.Status
	case ProfileKindRegistration:
		return p.Registration.Status
	}
	return "pending"
}

// MemberSince returns the promotion timestamp, or nil for non-members.
func (p *ProfileRecord) MemberSince() *time.Time {
	if p.Kind == ProfileKindMember {
		return &p.Member.MemberSince
	}
	return nil
}

// CanCheckIn reports whether this record is eligible for check-ins at all.
func (p *ProfileRecord) CanCheckIn() bool {
	return p.Kind == ProfileKindMember
}
