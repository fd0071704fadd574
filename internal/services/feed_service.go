package services

import (
	"context"

	"pyc-official/secretariat/internal/models/dtos"

	"golang.org/x/sync/errgroup"
)

// FeedService assembles the public landing feed, fetching news and content
// concurrently.
type FeedService struct {
	news    *NewsService
	content *ContentService
}

func NewFeedService(news *NewsService, content *ContentService) *FeedService {
	return &FeedService{news: news, content: content}
}

func (s *FeedService) Feed(ctx context.Context) (*dtos.FeedResponse, error) {
	var feed dtos.FeedResponse

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := s.news.List(ctx)
		if err != nil {
			return err
		}
		feed.News = items
		return nil
	})

	g.Go(func() error {
		items, err := s.content.List(ctx, "")
		if err != nil {
			return err
		}
		feed.Content = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &feed, nil
}
