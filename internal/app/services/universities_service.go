package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
)

// UniversitiesService defines the interface for university lookups. Get and
// GetBySlug return the full wire resource because the theming layer needs
// the branding palettes, not just the display fields.
type UniversitiesService interface {
	List(ctx context.Context) ([]dto.UniversityView, error)
	Get(ctx context.Context, id int64) (*models.University, error)
	GetBySlug(ctx context.Context, slug string) (*models.University, error)
}

// universitiesServiceImpl implements UniversitiesService
type universitiesServiceImpl struct {
	api    *client.Client
	logger zerolog.Logger
}

// NewUniversitiesService creates a new UniversitiesService
func NewUniversitiesService(api *client.Client, logger zerolog.Logger) UniversitiesService {
	return &universitiesServiceImpl{
		api:    api,
		logger: logger,
	}
}

// List fetches every university on the platform.
func (s *universitiesServiceImpl) List(ctx context.Context) ([]dto.UniversityView, error) {
	var list []models.University
	if err := s.api.Get(ctx, "/universities", nil, &list); err != nil {
		return nil, err
	}
	return dto.ToUniversityViews(list), nil
}

// Get fetches one university with its branding config.
func (s *universitiesServiceImpl) Get(ctx context.Context, id int64) (*models.University, error) {
	var u models.University
	err := s.api.Get(ctx, fmt.Sprintf("/universities/%d", id), nil, &u)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "University not found",
		})
	}
	return &u, nil
}

// GetBySlug fetches one university by its URL slug.
func (s *universitiesServiceImpl) GetBySlug(ctx context.Context, slug string) (*models.University, error) {
	var u models.University
	err := s.api.Get(ctx, "/universities/slug/"+slug, nil, &u)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "University not found",
		})
	}
	return &u, nil
}
