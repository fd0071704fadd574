package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Registration is a volunteer submission awaiting review. UserID is
// optional: legacy rows predate the auth-provider linkage and are only
// reachable by email.
type Registration struct {
	ID     string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	UserID *string `gorm:"column:user_id;type:varchar(128);index" json:"userId,omitempty"`

	Name  string `gorm:"column:name;type:text;not null" json:"name"`
	Email string `gorm:"column:email;type:varchar(255);not null;index" json:"email"`
	Phone string `gorm:"column:phone;type:varchar(50)" json:"phone,omitempty"`
	City  string `gorm:"column:city;type:varchar(100)" json:"city,omitempty"`

	Twitter   string `gorm:"column:twitter;type:varchar(100)" json:"twitter,omitempty"`
	Instagram string `gorm:"column:instagram;type:varchar(100)" json:"instagram,omitempty"`
	LinkedIn  string `gorm:"column:linkedin;type:varchar(255)" json:"linkedin,omitempty"`

	// pending or contacted; accepted rows live in members instead
	Status string `gorm:"column:status;type:varchar(20);default:pending" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"-"`
}

// TableName specifies the table name for GORM
func (Registration) TableName() string {
	return "team_registrations"
}

func (r *Registration) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}
