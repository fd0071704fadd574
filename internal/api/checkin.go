package api

import (
	"net/http"
	"time"

	"pyc-official/secretariat/internal/auth"
	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/constants"
)

// CheckIn records today's check-in for the calling member.
func (h *Handlers) CheckIn() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
			return
		}

		resp, err := h.deps.Services.Checkin.CheckIn(r.Context(), claims.UserID())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		h.deps.Metrics.CheckinsTotal.Inc()
		if resp.Reset {
			h.deps.Metrics.StreakResetsTotal.Inc()
		}

		common.RespondSuccess(w, initTime, "Checked in", resp)
	}
}
