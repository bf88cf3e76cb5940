package dto

import (
	"strings"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// AlumniProfileView is the camelCase directory entry the UI layer renders.
type AlumniProfileView struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	FullName        string `json:"fullName,omitempty"`
	AvatarURL       string `json:"avatarUrl,omitempty"`
	GraduationYear  int    `json:"graduationYear"`
	Degree          string `json:"degree,omitempty"`
	Major           string `json:"major,omitempty"`
	CurrentPosition string `json:"currentPosition,omitempty"`
	Company         string `json:"company,omitempty"`
	Headline        string `json:"headline,omitempty"` // "position at company" one-liner
	Location        string `json:"location,omitempty"`
	Bio             string `json:"bio,omitempty"`
	LinkedinURL     string `json:"linkedinUrl,omitempty"`
	TwitterURL      string `json:"twitterUrl,omitempty"`
	WebsiteURL      string `json:"websiteUrl,omitempty"`
	IsOwn           bool   `json:"isOwn"`
}

// ToAlumniProfileView maps a wire profile to its view shape.
func ToAlumniProfileView(profile *models.AlumniProfile, currentUserID int64) AlumniProfileView {
	view := AlumniProfileView{
		ID:              profile.ID,
		UserID:          profile.UserID,
		GraduationYear:  profile.GraduationYear,
		Degree:          profile.Degree,
		Major:           profile.Major,
		CurrentPosition: profile.CurrentPosition,
		Company:         profile.Company,
		Location:        profile.Location,
		Bio:             profile.Bio,
		LinkedinURL:     profile.LinkedinURL,
		TwitterURL:      profile.TwitterURL,
		WebsiteURL:      profile.WebsiteURL,
		IsOwn:           profile.UserID == currentUserID,
	}

	if profile.User != nil {
		view.FullName = profile.User.FullName()
		view.AvatarURL = profile.User.AvatarURL
	}

	switch {
	case profile.CurrentPosition != "" && profile.Company != "":
		view.Headline = profile.CurrentPosition + " at " + profile.Company
	case profile.CurrentPosition != "":
		view.Headline = profile.CurrentPosition
	case profile.Company != "":
		view.Headline = profile.Company
	}

	return view
}

// ToAlumniProfileViews maps a page of wire profiles, preserving order.
func ToAlumniProfileViews(profiles []models.AlumniProfile, currentUserID int64) []AlumniProfileView {
	views := make([]AlumniProfileView, 0, len(profiles))
	for i := range profiles {
		views = append(views, ToAlumniProfileView(&profiles[i], currentUserID))
	}
	return views
}

// SearchText returns the lowercased haystack profile search matches against.
func (v AlumniProfileView) SearchText() string {
	return strings.ToLower(strings.Join([]string{
		v.FullName, v.Company, v.Major, v.CurrentPosition, v.Location,
	}, " "))
}
