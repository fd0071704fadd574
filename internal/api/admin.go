package api

import (
	"encoding/json"
	"net/http"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/models/dtos"
	"pyc-official/secretariat/internal/services"

	"github.com/go-chi/chi/v5"
)

// ListRegistrations returns every registration for the dashboard table.
func (h *Handlers) ListRegistrations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		regs, err := h.deps.Services.Registration.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", regs)
	}
}

// UpdateRegistrationStatus toggles a registration between pending and
// contacted.
func (h *Handlers) UpdateRegistrationStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		var req dtos.UpdateRegistrationStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "invalid request body", http.StatusBadRequest)
			return
		}

		if err := h.deps.Services.Registration.SetStatus(r.Context(), id, req.Status); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Status updated", nil)
	}
}

// PromoteRegistration converts a registration into an accepted member.
func (h *Handlers) PromoteRegistration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		id := chi.URLParam(r, "id")

		member, err := h.deps.Services.Registration.Promote(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		h.deps.Metrics.PromotionsTotal.Inc()

		common.RespondSuccess(w, initTime, "Registration promoted", map[string]interface{}{
			"memberId":    member.ID,
			"memberSince": member.MemberSince,
		}, http.StatusCreated)
	}
}

// GetRegistrationStats returns the dashboard counters.
func (h *Handlers) GetRegistrationStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		dayStart := services.DayStart(time.Now(), h.deps.Location)
		stats, err := h.deps.Repo.Stats.RegistrationStats(r.Context(), dayStart)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", stats)
	}
}

// CreateNews publishes a news item from the dashboard.
func (h *Handlers) CreateNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateNewsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "invalid request body", http.StatusBadRequest)
			return
		}

		id, err := h.deps.Services.News.Create(r.Context(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		h.deps.Services.Cache.Delete(feedCacheKey)

		common.RespondSuccess(w, initTime, "News item created", map[string]string{"id": id}, http.StatusCreated)
	}
}

// DeleteNews removes a news item.
func (h *Handlers) DeleteNews() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.News.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		h.deps.Services.Cache.Delete(feedCacheKey)

		common.RespondSuccess(w, initTime, "News item deleted", nil)
	}
}

// CreateContent publishes a notification or showcase item.
func (h *Handlers) CreateContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateContentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "invalid request body", http.StatusBadRequest)
			return
		}

		id, err := h.deps.Services.Content.Create(r.Context(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		h.deps.Services.Cache.Delete(feedCacheKey)

		common.RespondSuccess(w, initTime, "Content item created", map[string]string{"id": id}, http.StatusCreated)
	}
}

// DeleteContent removes a content item.
func (h *Handlers) DeleteContent() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if err := h.deps.Services.Content.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		h.deps.Services.Cache.Delete(feedCacheKey)

		common.RespondSuccess(w, initTime, "Content item deleted", nil)
	}
}
