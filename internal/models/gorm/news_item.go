package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsItem is a dashboard-managed news entry shown on the public site
type NewsItem struct {
	ID          string  `gorm:"column:id;primaryKey;type:uuid" json:"id"`
	Title       string  `gorm:"column:title;type:text;not null" json:"title"`
	Description string  `gorm:"column:description;type:text" json:"description"`
	ImageURL    string  `gorm:"column:image_url;type:text" json:"imageUrl"`
	Date        string  `gorm:"column:date;type:varchar(32)" json:"date"`
	Link        *string `gorm:"column:link;type:text" json:"link,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

// TableName specifies the table name for GORM
func (NewsItem) TableName() string {
	return "news_items"
}

func (n *NewsItem) BeforeCreate(tx *gorm.DB) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	return nil
}
