package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "pyc-official/secretariat/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrItemNotFound is returned for deletes against a missing news or
// content row.
var ErrItemNotFound = errors.New("item not found")

type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository creates a new GORM-based news repository
func NewNewsRepository(db *gorm.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

// List returns all news items, newest first
func (r *NewsRepository) List(ctx context.Context) ([]gormModels.NewsItem, error) {
	var items []gormModels.NewsItem

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list news: %w", err)
	}

	return items, nil
}

// Create inserts a news item and returns its assigned id
func (r *NewsRepository) Create(ctx context.Context, item *gormModels.NewsItem) (string, error) {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return "", fmt.Errorf("failed to create news item: %w", err)
	}
	return item.ID, nil
}

// Delete removes a news item by id
func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&gormModels.NewsItem{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete news item: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrItemNotFound, id)
	}
	return nil
}
