package dto

import (
	"github.com/yigit/alumnisphere/internal/app/models"
)

// UserView is the camelCase user shape the UI layer renders.
type UserView struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	FullName     string `json:"fullName"`
	Role         string `json:"role"`
	UniversityID int64  `json:"universityId"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
	IsAdmin      bool   `json:"isAdmin"`
}

// ToUserView maps a wire user to its view shape.
func ToUserView(user *models.User) UserView {
	return UserView{
		ID:           user.ID,
		Email:        user.Email,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		FullName:     user.FullName(),
		Role:         string(user.Role),
		UniversityID: user.UniversityID,
		AvatarURL:    user.AvatarURL,
		IsAdmin:      user.IsAdmin(),
	}
}
