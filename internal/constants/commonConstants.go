package constants

// APIStatus is the top-level status string in API envelopes
type APIStatus string

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"
)

// RegistrationStatus tracks the review lifecycle of a volunteer registration
type RegistrationStatus string

const (
	StatusPending   RegistrationStatus = "pending"
	StatusContacted RegistrationStatus = "contacted"
	StatusAccepted  RegistrationStatus = "accepted"
)

func (s RegistrationStatus) String() string { return string(s) }

// IsReviewStatus reports whether s is a valid pre-acceptance status.
// The dashboard may toggle pending <-> contacted; accepted is reached
// only through promotion.
func IsReviewStatus(s RegistrationStatus) bool {
	return s == StatusPending || s == StatusContacted
}

// ContentType discriminates items in the content collection
type ContentType string

const (
	ContentTypeNotification ContentType = "notification"
	ContentTypeShowcase     ContentType = "showcase"
)

func ValidContentType(t string) bool {
	return ContentType(t) == ContentTypeNotification || ContentType(t) == ContentTypeShowcase
}

// OrgName is printed on the membership card header
const OrgName = "Pakistan Youth Council"

// VerifiedLabel is printed under the member name on the card
const VerifiedLabel = "Verified Member"

const SessionCookieName = "secretariat_session"
