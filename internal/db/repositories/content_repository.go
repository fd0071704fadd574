package repositories

import (
	"context"
	"fmt"

	gormModels "pyc-official/secretariat/internal/models/gorm"

	"gorm.io/gorm"
)

type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository creates a new GORM-based content repository
func NewContentRepository(db *gorm.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

// List returns content items newest first, optionally filtered by type
func (r *ContentRepository) List(ctx context.Context, contentType string) ([]gormModels.ContentItem, error) {
	var items []gormModels.ContentItem

	q := r.db.WithContext(ctx).Order("created_at DESC")
	if contentType != "" {
		q = q.Where("type = ?", contentType)
	}

	if err := q.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	return items, nil
}

// Create inserts a content item and returns its assigned id
func (r *ContentRepository) Create(ctx context.Context, item *gormModels.ContentItem) (string, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return "", fmt.Errorf("failed to create content item: %w", err)
	}
	return item.ID, nil
}

// Delete removes a content item by id
func (r *ContentRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.ContentItem{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete content item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return nil
}
