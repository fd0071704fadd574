package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"pyc-official/secretariat/internal/auth"
	"pyc-official/secretariat/internal/common"
	"pyc-official/secretariat/internal/constants"
	"pyc-official/secretariat/internal/db/repositories"

	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware resolves the caller's identity from one of three sources,
// in order: bearer JWT (external identity provider), session cookie
// (dashboard login), or X-API-Key (server-to-server).
func AuthMiddleware(sessionSvc *common.SessionService, keysRepo *repositories.KeysRepo, jwtSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			apiKey := r.Header.Get("X-API-Key")

			var claims auth.UserClaims

			switch {
			case strings.HasPrefix(authHeader, "Bearer "):
				tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

				tokenClaims := &auth.TokenClaims{}
				token, err := jwt.ParseWithClaims(tokenStr, tokenClaims, func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
					}
					return jwtSecret, nil
				})
				if err != nil || !token.Valid {
					http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
					return
				}

				claims = tokenClaims

			case apiKey != "":
				keyRes, err := keysRepo.GetStatus(r.Context(), apiKey)
				if err != nil {
					http.Error(w, constants.GetErrorMessage(constants.ErrCodeInvalidAPIKey), http.StatusUnauthorized)
					return
				}

				if !keyRes.Status {
					http.Error(w, "Unauthorized. Inactive API Key", http.StatusUnauthorized)
					return
				}

				claims = &auth.APIKeyClaims{KeyID: keyRes.ID}

			default:
				cookie, err := r.Cookie(constants.SessionCookieName)
				if err != nil {
					http.Error(w, constants.GetErrorMessage(constants.ErrCodeUnauthorized), http.StatusUnauthorized)
					return
				}

				session, err := sessionSvc.GetSession(r.Context(), cookie.Value)
				if err != nil {
					http.Error(w, "Unauthorized. Invalid session", http.StatusUnauthorized)
					return
				}

				claims = &auth.SessionClaims{
					SessionID: session.SessionID,
					UserUUID:  session.UserID,
					EmailAddr: session.Email,
					Name:      session.DisplayName,
					RoleValue: session.Role,
				}
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
