package dtos

import (
	"time"

	gormModels "pyc-official/secretariat/internal/models/gorm"
)

// APIResponse is the standard JSON envelope for every endpoint
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// ProfileResponse is the resolved profile as seen by the client
type ProfileResponse struct {
	Kind           string     `json:"kind"`
	ID             string     `json:"id,omitempty"`
	UserID         string     `json:"userId,omitempty"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone,omitempty"`
	City           string     `json:"city,omitempty"`
	Twitter        string     `json:"twitter,omitempty"`
	Instagram      string     `json:"instagram,omitempty"`
	LinkedIn       string     `json:"linkedin,omitempty"`
	Status         string     `json:"status"`
	MemberSince    *time.Time `json:"memberSince,omitempty"`
	LastCheckin    *time.Time `json:"lastCheckin,omitempty"`
	StreakCount    int        `json:"streakCount"`
	CheckedInToday bool       `json:"checkedInToday"`
	ServerDate     string     `json:"serverDate"`
}

// CheckinResponse mirrors the payload the profile page expects from
// POST /api/checkin in the original client.
type CheckinResponse struct {
	LastCheckin time.Time `json:"lastCheckin"`
	StreakCount int       `json:"streakCount"`
	ServerTime  time.Time `json:"serverTime"`

	// Reset marks a streak that fell back to 1 after a gap. Internal only.
	Reset bool `json:"-"`
}

// TimeResponse is the canonical server clock payload
type TimeResponse struct {
	ServerTime time.Time `json:"serverTime"`
}

// RegistrationStatsResponse aggregates dashboard counters
type RegistrationStatsResponse struct {
	Pending       int64 `json:"pending"`
	Contacted     int64 `json:"contacted"`
	Members       int64 `json:"members"`
	CheckinsToday int64 `json:"checkinsToday"`
}

// FeedResponse bundles news and content for the public landing page
type FeedResponse struct {
	News    []gormModels.NewsItem    `json:"news"`
	Content []gormModels.ContentItem `json:"content"`
}
