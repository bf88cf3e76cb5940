package dto

import (
	"github.com/yigit/alumnisphere/internal/app/models"
)

// UniversityView is the camelCase university shape the UI layer renders.
type UniversityView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	LogoURL     string `json:"logoUrl,omitempty"`
	HasBranding bool   `json:"hasBranding"`
}

// ToUniversityView maps a wire university to its view shape.
func ToUniversityView(u *models.University) UniversityView {
	return UniversityView{
		ID:          u.ID,
		Name:        u.Name,
		Slug:        u.Slug,
		LogoURL:     u.LogoURL,
		HasBranding: u.Branding != nil,
	}
}

// ToUniversityViews maps a list of wire universities, preserving order.
func ToUniversityViews(list []models.University) []UniversityView {
	views := make([]UniversityView, 0, len(list))
	for i := range list {
		views = append(views, ToUniversityView(&list[i]))
	}
	return views
}
