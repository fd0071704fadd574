package api

import (
	"encoding/json"
	"net/http"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/models/dtos"
)

// CreateRegistration accepts the public volunteer form.
func (h *Handlers) CreateRegistration() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateRegistrationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "invalid request body", http.StatusBadRequest)
			return
		}

		reg, err := h.deps.Services.Registration.Create(r.Context(), req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		h.deps.Metrics.RegistrationsTotal.Inc()

		common.RespondSuccess(w, initTime, "Registration received", map[string]string{
			"id":     reg.ID,
			"status": reg.Status,
		}, http.StatusCreated)
	}
}
