package models

import "time"

// AlumniProfile mirrors the platform's alumni directory entry. Exactly one
// exists per user; only its owner may change it.
type AlumniProfile struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id"`
	User            *User     `json:"user,omitempty"`
	GraduationYear  int       `json:"graduation_year"`
	Degree          string    `json:"degree,omitempty"`
	Major           string    `json:"major,omitempty"`
	CurrentPosition string    `json:"current_position,omitempty"`
	Company         string    `json:"company,omitempty"`
	Location        string    `json:"location,omitempty"`
	Bio             string    `json:"bio,omitempty"`
	LinkedinURL     string    `json:"linkedin_url,omitempty"`
	TwitterURL      string    `json:"twitter_url,omitempty"`
	WebsiteURL      string    `json:"website_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// UpdateProfileRequest is the payload for editing the caller's own profile.
// Nil fields are left untouched by the server.
type UpdateProfileRequest struct {
	GraduationYear  *int    `json:"graduation_year,omitempty"`
	Degree          *string `json:"degree,omitempty"`
	Major           *string `json:"major,omitempty"`
	CurrentPosition *string `json:"current_position,omitempty"`
	Company         *string `json:"company,omitempty"`
	Location        *string `json:"location,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	TwitterURL      *string `json:"twitter_url,omitempty"`
	WebsiteURL      *string `json:"website_url,omitempty"`
}
