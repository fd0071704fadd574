package services

import (
	"context"
	"errors"
	"strings"

	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/models/dtos"
	gormModels "pyc-official/secretariat/internal/models/gorm"
)

var (
	ErrInvalidContentItem = errors.New("content title is required")
	ErrInvalidContentType = errors.New("content type must be notification or showcase")
)

// ContentService is a thin layer over the content repository.
type ContentService struct {
	content *repositories.ContentRepository
}

func NewContentService(content *repositories.ContentRepository) *ContentService {
	return &ContentService{content: content}
}

// List returns content items, optionally filtered by type.
func (s *ContentService) List(ctx context.Context, contentType string) ([]gormModels.ContentItem, error) {
	if contentType != "" && !constants.ValidContentType(contentType) {
		return nil, ErrInvalidContentType
	}
	return s.content.List(ctx, contentType)
}

func (s *ContentService) Create(ctx context.Context, req dtos.CreateContentRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrInvalidContentItem
	}
	if !constants.ValidContentType(req.Type) {
		return "", ErrInvalidContentType
	}

	item := gormModels.ContentItem{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		VideoURL:    req.VideoURL,
		Date:        req.Date,
		Link:        req.Link,
		Type:        req.Type,
	}
	return s.content.Create(ctx, &item)
}

func (s *ContentService) Delete(ctx context.Context, id string) error {
	return s.content.Delete(ctx, id)
}
