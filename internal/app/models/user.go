package models

import (
	"time"
)

// User mirrors the platform's user resource as the API sends it.
type User struct {
	ID           int64     `json:"id" example:"1"`                          // Unique identifier for the user
	Email        string    `json:"email" example:"jane@alumni.edu"`         // User's email address
	FirstName    string    `json:"first_name" example:"Jane"`               // User's first name
	LastName     string    `json:"last_name" example:"Doe"`                 // User's last name
	Role         Role      `json:"role" example:"alumni"`                   // User's role (alumni, admin or super_admin)
	UniversityID int64     `json:"university_id" example:"1"`               // University the account belongs to
	AvatarURL    string    `json:"avatar_url,omitempty"`                    // URL of the user's avatar (optional)
	IsActive     bool      `json:"is_active" example:"true"`                // Whether the account is active
	CreatedAt    time.Time `json:"created_at" example:"2024-01-01T10:00:00Z"`
}

// FullName joins first and last name for display.
func (u User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// IsAdmin reports whether the user holds an administrative role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// UpdateUserRequest is the payload for editing the caller's account fields.
// Nil fields are left untouched by the server.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}
