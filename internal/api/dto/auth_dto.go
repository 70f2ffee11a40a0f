package dto

// LoginRequest payload for the operator login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse mirrors the guard state for the login and session views.
type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	Loading       bool         `json:"loading"`
	Error         string       `json:"error,omitempty"`
	User          *SessionUser `json:"user,omitempty"`
}

// SessionUser is the operator identity shown in the panel chrome.
type SessionUser struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
