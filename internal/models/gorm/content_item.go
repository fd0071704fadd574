package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContentItem is a dashboard-managed showcase or notification entry
type ContentItem struct {
	ID          string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Title       string  `gorm:"column:title;type:text;not null" json:"title"`
	Description *string `gorm:"column:description;type:text" json:"description,omitempty"`
	ImageURL    string  `gorm:"column:image_url;type:text" json:"imageUrl"`
	VideoURL    *string `gorm:"column:video_url;type:text" json:"videoUrl,omitempty"`
	Date        string  `gorm:"column:date;type:varchar(32)" json:"date"`
	Link        *string `gorm:"column:link;type:text" json:"link,omitempty"`

	// notification or showcase
	Type string `gorm:"column:type;type:varchar(20);not null;index" json:"type"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

// TableName specifies the table name for GORM
func (ContentItem) TableName() string {
	return "content_items"
}

func (c *ContentItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
