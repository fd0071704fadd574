package dtos

// CreateRegistrationRequest is the public volunteer form payload
type CreateRegistrationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	City  string `json:"city"`
}

// UpdateProfileRequest carries the editable profile fields. Email is
// deliberately absent: it is immutable once set from the identity provider.
type UpdateProfileRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	LinkedIn  string `json:"linkedin"`
}

// LoginRequest is the dashboard login gate payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRegistrationStatusRequest toggles pending <-> contacted
type UpdateRegistrationStatusRequest struct {
	Status string `json:"status"`
}

// CreateNewsRequest is the dashboard news form payload
type CreateNewsRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Date        string  `json:"date"`
	Link        *string `json:"link,omitempty"`
}

// CreateContentRequest is the dashboard content form payload
type CreateContentRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ImageURL    string  `json:"imageUrl"`
	VideoURL    *string `json:"videoUrl,omitempty"`
	Date        string  `json:"date"`
	Link        *string `json:"link,omitempty"`
	Type        string  `json:"type"`
}
