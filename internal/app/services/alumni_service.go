package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

// AlumniService defines the interface for alumni directory operations
type AlumniService interface {
	List(ctx context.Context, skip, limit int) ([]dto.AlumniProfileView, error)
	ListAll(ctx context.Context) ([]dto.AlumniProfileView, error)
	Get(ctx context.Context, userID int64) (*dto.AlumniProfileView, error)
	UpdateMine(ctx context.Context, req *models.UpdateProfileRequest) (*dto.AlumniProfileView, error)
	Search(profiles []dto.AlumniProfileView, query string) []dto.AlumniProfileView
	FilterByYear(profiles []dto.AlumniProfileView, year int) []dto.AlumniProfileView
}

// alumniServiceImpl implements AlumniService
type alumniServiceImpl struct {
	api    *client.Client
	store  *credstore.Store
	logger zerolog.Logger
}

// NewAlumniService creates a new AlumniService
func NewAlumniService(api *client.Client, store *credstore.Store, logger zerolog.Logger) AlumniService {
	return &alumniServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// List fetches one page of the directory.
func (s *alumniServiceImpl) List(ctx context.Context, skip, limit int) ([]dto.AlumniProfileView, error) {
	profiles, err := s.fetchPage(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return dto.ToAlumniProfileViews(profiles, currentUserID(s.store)), nil
}

// ListAll drains the whole directory page by page.
func (s *alumniServiceImpl) ListAll(ctx context.Context) ([]dto.AlumniProfileView, error) {
	profiles, err := helpers.CollectPages(ctx, helpers.DefaultLimit, s.fetchPage)
	if err != nil {
		return nil, err
	}
	return dto.ToAlumniProfileViews(profiles, currentUserID(s.store)), nil
}

func (s *alumniServiceImpl) fetchPage(ctx context.Context, skip, limit int) ([]models.AlumniProfile, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var profiles []models.AlumniProfile
	if err := s.api.Get(ctx, "/alumni", query, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Get fetches the directory entry of a user.
func (s *alumniServiceImpl) Get(ctx context.Context, userID int64) (*dto.AlumniProfileView, error) {
	var profile models.AlumniProfile
	err := s.api.Get(ctx, fmt.Sprintf("/alumni/%d", userID), nil, &profile)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "Alumni profile not found",
		})
	}

	view := dto.ToAlumniProfileView(&profile, currentUserID(s.store))
	return &view, nil
}

// UpdateMine edits the caller's own directory entry.
func (s *alumniServiceImpl) UpdateMine(ctx context.Context, req *models.UpdateProfileRequest) (*dto.AlumniProfileView, error) {
	s.logger.Debug().Msg("Updating own alumni profile")

	var profile models.AlumniProfile
	err := s.api.Put(ctx, "/alumni/me", req, &profile)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to edit your profile",
		})
	}

	view := dto.ToAlumniProfileView(&profile, currentUserID(s.store))
	return &view, nil
}

// Search matches a case-insensitive substring over name, company, major,
// position and location. An empty query returns the input unchanged.
func (s *alumniServiceImpl) Search(profiles []dto.AlumniProfileView, query string) []dto.AlumniProfileView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return profiles
	}

	return lo.Filter(profiles, func(p dto.AlumniProfileView, _ int) bool {
		return strings.Contains(p.SearchText(), query)
	})
}

// FilterByYear keeps profiles from one graduating class. Zero keeps all.
func (s *alumniServiceImpl) FilterByYear(profiles []dto.AlumniProfileView, year int) []dto.AlumniProfileView {
	if year == 0 {
		return profiles
	}
	return lo.Filter(profiles, func(p dto.AlumniProfileView, _ int) bool {
		return p.GraduationYear == year
	})
}
