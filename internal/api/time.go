package api

import (
	"net/http"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/models/dtos"
)

// GetServerTime returns the canonical server clock. Clients derive "today"
// from this instead of trusting the device clock.
func (h *Handlers) GetServerTime() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		common.RespondSuccess(w, initTime, "", dtos.TimeResponse{
			ServerTime: time.Now().In(h.deps.Location),
		})
	}
}
