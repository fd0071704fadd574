package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/logging"
	"pyc-official/secretariat/internal/models/dtos"
)

const sessionCookieMaxAge = 7 * 24 * 60 * 60

// Login gates the dashboard. Credentials come from the environment; on
// success a Redis-backed session is created and its id set as an HttpOnly
// cookie.
func (h *Handlers) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "invalid request body", http.StatusBadRequest)
			return
		}

		adminEmail := os.Getenv("ADMIN_EMAIL")
		adminPassword := os.Getenv("ADMIN_PASSWORD")
		if adminEmail == "" || adminPassword == "" {
			logging.Error("Dashboard login attempted without ADMIN_EMAIL/ADMIN_PASSWORD configured")
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
			return
		}

		emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(adminEmail))
		passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(adminPassword))
		if emailOK&passwordOK != 1 {
			logging.Warn("Dashboard login rejected", "email", req.Email)
			common.RespondError(w, initTime, nil, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
			return
		}

		sessionID, err := h.deps.Services.Session.CreateSession(
			r.Context(), "admin", req.Email, "Administrator", constants.RoleAdmin.String())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   sessionCookieMaxAge,
			HttpOnly: true,
			Secure:   os.Getenv("APP_ENV") == "production",
			SameSite: http.SameSiteLaxMode,
		})

		common.RespondSuccess(w, initTime, "Logged in", map[string]string{
			"role": constants.RoleAdmin.String(),
		})
	}
}

// Logout deletes the server-side session and expires the cookie.
func (h *Handlers) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		if cookie, err := r.Cookie(constants.SessionCookieName); err == nil {
			if err := h.deps.Services.Session.DeleteSession(r.Context(), cookie.Value); err != nil {
				logging.Warn("Failed to delete session on logout", "error", err.Error())
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     constants.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		common.RespondSuccess(w, initTime, "Logged out", nil)
	}
}
