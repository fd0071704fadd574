package auth

import (
	"pyc-official/secretariat/internal/constants"

	"github.com/golang-jwt/jwt/v5"
)

// UserClaims is the identity attached to a request, regardless of whether
// it arrived via bearer token, session cookie, or API key.
type UserClaims interface {
	UserID() string
	Email() string
	DisplayName() string
	Role() string
	Source() string
}

// TokenClaims is the JWT payload minted by the external identity provider
// (and by the dashboard login endpoint, using the same shape).
type TokenClaims struct {
	Name      string `json:"name"`
	EmailAddr string `json:"email"`
	RoleValue string `json:"role"`
	jwt.RegisteredClaims
}

func (c *TokenClaims) UserID() string      { return c.Subject }
func (c *TokenClaims) Email() string       { return c.EmailAddr }
func (c *TokenClaims) DisplayName() string { return c.Name }
func (c *TokenClaims) Role() string {
	if c.RoleValue == "" {
		return constants.RoleMember.String()
	}
	return c.RoleValue
}
func (c *TokenClaims) Source() string { return "JWT" }

// SessionClaims wraps a Redis-backed session
type SessionClaims struct {
	SessionID    string
	UserUUID     string
	EmailAddr    string
	Name         string
	RoleValue    string
}

func (c *SessionClaims) UserID() string      { return c.UserUUID }
func (c *SessionClaims) Email() string       { return c.EmailAddr }
func (c *SessionClaims) DisplayName() string { return c.Name }
func (c *SessionClaims) Role() string        { return c.RoleValue }
func (c *SessionClaims) Source() string      { return "SESSION" }

// APIKeyClaims represents a server-to-server caller (static site builds,
// bots). No personal identity, service role only.
type APIKeyClaims struct {
	KeyID int64
}

func (c *APIKeyClaims) UserID() string      { return "" }
func (c *APIKeyClaims) Email() string       { return "" }
func (c *APIKeyClaims) DisplayName() string { return "" }
func (c *APIKeyClaims) Role() string        { return constants.RoleService.String() }
func (c *APIKeyClaims) Source() string      { return "API_KEY" }
