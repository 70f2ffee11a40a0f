package dto

import "time"

// UpdateRoleRequest payload for changing a user's role.
type UpdateRoleRequest struct {
	Role string `json:"role"`
}

// UserSummary is a row in the users table.
type UserSummary struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Role            string     `json:"role"`
	AuthProvider    string     `json:"auth_provider"`
	IsActive        bool       `json:"is_active"`
	IsEmailVerified bool       `json:"is_email_verified"`
	ProfilePicture  *string    `json:"profile_picture,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
}

// PageMeta echoes the backend pagination envelope.
type PageMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"total_pages"`
}
