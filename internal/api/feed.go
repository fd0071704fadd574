package api

import (
	"net/http"
	"time"

	"pyc-official/secretariat/internal/common"
)

// The landing feed is the hottest read path (every static-site visitor),
// so it is served through the shared cache. Admin CRUD invalidates it.
const (
	feedCacheKey = "feed:landing"
	feedCacheTTL = 60 * time.Second
)

// ListNews returns published news items, newest first.
func (h *Handlers) ListNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := h.deps.Services.News.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", items)
	}
}

// ListContent returns content items, optionally filtered with ?type=.
func (h *Handlers) ListContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		items, err := h.deps.Services.Content.List(r.Context(), r.URL.Query().Get("type"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", items)
	}
}

// GetFeed bundles news and content in one call for the landing page.
func (h *Handlers) GetFeed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if val, found := h.deps.Services.Cache.Get(feedCacheKey); found {
			h.deps.Metrics.CacheHitsTotal.WithLabelValues("feed").Inc()
			common.RespondSuccess(w, initTime, "", val)
			return
		}
		h.deps.Metrics.CacheMissesTotal.WithLabelValues("feed").Inc()

		feed, err := h.deps.Services.Feed.Feed(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		h.deps.Services.Cache.Set(feedCacheKey, feed, feedCacheTTL)

		common.RespondSuccess(w, initTime, "", feed)
	}
}
