package common

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"net/http"
	"time"
)

const templateCacheKey = "card:template"

// ErrNoTemplate signals that no background asset is configured. The card
// renderer treats this as "draw the solid fallback", not as a failure.
var ErrNoTemplate = errors.New("card template not configured")

// TemplateService fetches and caches the card background image. The decoded
// image is memoized in the in-memory cache only; it must not round-trip
// through the Redis JSON cache.
type TemplateService struct {
	url    string
	client *http.Client
	cache  *CacheService
}

func NewTemplateService(url string, cache *CacheService) *TemplateService {
	return &TemplateService{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		cache:  cache,
	}
}

// Background returns the decoded template image, fetching it on first use.
// Callers block until the asset is loaded, matching the original renderer
// which waited for the image element before drawing.
func (t *TemplateService) Background(ctx context.Context) (image.Image, error) {
	if t.url == "" {
		return nil, ErrNoTemplate
	}

	if val, found := t.cache.Get(templateCacheKey); found {
		if img, ok := val.(image.Image); ok {
			return img, nil
		}
	}

	img, err := t.fetch(ctx)
	if err != nil {
		return nil, err
	}

	t.cache.Set(templateCacheKey, img, 24*time.Hour)
	return img, nil
}

// Refresh re-fetches the template, replacing the cached copy. Used by the
// warm-up worker so card requests never pay the fetch latency.
func (t *TemplateService) Refresh(ctx context.Context) error {
	if t.url == "" {
		return nil
	}

	img, err := t.fetch(ctx)
	if err != nil {
		return err
	}

	t.cache.Set(templateCacheKey, img, 24*time.Hour)
	return nil
}

func (t *TemplateService) fetch(ctx context.Context) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build template request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch card template: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("card template fetch returned status %d", resp.StatusCode)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode card template: %w", err)
	}

	return img, nil
}
