package constants

// Error codes surfaced by the service layer and mapped to HTTP statuses
// in the handlers.
const (
	ErrCodeNotAMember       = "NOT_A_MEMBER"
	ErrCodeAlreadyCheckedIn = "ALREADY_CHECKED_IN"
	ErrCodeProfileNotFound  = "PROFILE_NOT_FOUND"
	ErrCodeEmailImmutable   = "EMAIL_IMMUTABLE"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeAlreadyPromoted  = "ALREADY_PROMOTED"
	ErrCodeStorageFailure   = "STORAGE_FAILURE"
	ErrCodeRenderFailure    = "RENDER_FAILURE"
	ErrCodeInvalidAPIKey    = "INVALID_API_KEY"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
)

var errorMessages = map[string]string{
	ErrCodeNotAMember:       "Check-in is available to accepted members only",
	ErrCodeAlreadyCheckedIn: "Already checked in today",
	ErrCodeProfileNotFound:  "No profile record found",
	ErrCodeEmailImmutable:   "Email cannot be changed",
	ErrCodeInvalidStatus:    "Invalid status transition",
	ErrCodeAlreadyPromoted:  "Registration has already been promoted",
	ErrCodeStorageFailure:   "Storage backend unavailable",
	ErrCodeRenderFailure:    "Could not generate card",
	ErrCodeInvalidAPIKey:    "Unauthorized. Invalid API Key",
	ErrCodeUnauthorized:     "Unauthorized",
}

// GetErrorMessage returns the user-facing message for an error code.
func GetErrorMessage(code string) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An unexpected error occurred"
}
