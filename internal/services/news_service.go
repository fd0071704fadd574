package services

import (
	"context"
	"errors"
	"strings"

	"pyc-official/secretariat/internal/db/repositories"
	"pyc-official/secretariat/internal/models/dtos"
	gormModels "pyc-official/secretariat/internal/models/gorm"
)

var ErrInvalidNewsItem = errors.New("news title is required")

// NewsService is a thin layer over the news repository.
type NewsService struct {
	news *repositories.NewsRepository
}

func NewNewsService(news *repositories.NewsRepository) *NewsService {
	return &NewsService{news: news}
}

func (s *NewsService) List(ctx context.Context) ([]gormModels.NewsItem, error) {
	return s.news.List(ctx)
}

func (s *NewsService) Create(ctx context.Context, req dtos.CreateNewsRequest) (string, error) {
	if strings.TrimSpace(req.Title) == "" {
		return "", ErrInvalidNewsItem
	}

	item := gormModels.NewsItem{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Date:        req.Date,
		Link:        req.Link,
	}
	return s.news.Create(ctx, &item)
}

func (s *NewsService) Delete(ctx context.Context, id string) error {
	return s.news.Delete(ctx, id)
}
