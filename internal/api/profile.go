package api

import (
	"encoding/json"
	"net/http"
	"time"

	"pyc-official/secretariat/internal/auth"
	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/models/dtos"
)

// GetProfile resolves the caller's record across members and registrations
// and returns the flattened view.
func (h *Handlers) GetProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
			return
		}

		rec, err := h.deps.Services.Profile.Resolve(r.Context(), claims.UserID(), claims.Email(), claims.DisplayName())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", h.deps.Services.Profile.BuildResponse(rec))
	}
}

// SaveProfile writes the editable fields back to whichever record the
// caller resolved to. Email never changes through this endpoint.
func (h *Handlers) SaveProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "invalid request body", http.StatusBadRequest)
			return
		}

		rec, err := h.deps.Services.Profile.Save(r.Context(), claims.UserID(), claims.Email(), claims.DisplayName(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Profile saved", h.deps.Services.Profile.BuildResponse(rec))
	}
}
