package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Member is the accepted, promoted form of a registration. Only members
// can check in and generate a card.
type Member struct {
	ID     string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID *string `gorm:"column:user_id;type:varchar(128);uniqueIndex" json:"userId,omitempty"`

	Name  string `gorm:"column:name;type:text" json:"name"`
	Email string `gorm:"column:email;type:varchar(255);index" json:"email"`
	Phone string `gorm:"column:phone;type:varchar(50)" json:"phone,omitempty"`
	City  string `gorm:"column:city;type:varchar(100)" json:"city,omitempty"`

	Twitter   string `gorm:"column:twitter;type:varchar(100)" json:"twitter,omitempty"`
	Instagram string `gorm:"column:instagram;type:varchar(100)" json:"instagram,omitempty"`
	LinkedIn  string `gorm:"column:linkedin;type:varchar(255)" json:"linkedin,omitempty"`

	Status string `gorm:"column:status;type:varchar(20);default:accepted" json:"status"`

	// Stamped once, at promotion time
	MemberSince time.Time `gorm:"column:member_since;not null" json:"memberSince"`

	LastCheckin *time.Time `gorm:"column:last_checkin;index" json:"lastCheckin,omitempty"`
	StreakCount int        `gorm:"column:streak_count;not null;default:0" json:"streakCount"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Member) TableName() string {
	return "members"
}

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
