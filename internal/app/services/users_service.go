package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
)

// UsersService defines the interface for account operations
type UsersService interface {
	Get(ctx context.Context, id int64) (*dto.UserView, error)
	UpdateMe(ctx context.Context, req *models.UpdateUserRequest) (*dto.UserView, error)
	UploadAvatar(ctx context.Context, path string, progress client.ProgressFunc) (*dto.UserView, error)
}

// usersServiceImpl implements UsersService
type usersServiceImpl struct {
	api    *client.Client
	store  *credstore.Store
	logger zerolog.Logger
}

// NewUsersService creates a new UsersService
func NewUsersService(api *client.Client, store *credstore.Store, logger zerolog.Logger) UsersService {
	return &usersServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Get fetches a user's public account record.
func (s *usersServiceImpl) Get(ctx context.Context, id int64) (*dto.UserView, error) {
	var user models.User
	err := s.api.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &user)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "User not found",
		})
	}

	view := dto.ToUserView(&user)
	return &view, nil
}

// UpdateMe edits the caller's account and refreshes the cached user record.
func (s *usersServiceImpl) UpdateMe(ctx context.Context, req *models.UpdateUserRequest) (*dto.UserView, error) {
	var user models.User
	err := s.api.Patch(ctx, "/users/me", req, &user)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in",
		})
	}

	if err := s.store.SetUser(&user); err != nil {
		s.logger.Warn().Err(err).Msg("Could not refresh cached user")
	}

	view := dto.ToUserView(&user)
	return &view, nil
}

// UploadAvatar replaces the caller's avatar and refreshes the cached user
// record with the new URL.
func (s *usersServiceImpl) UploadAvatar(ctx context.Context, path string, progress client.ProgressFunc) (*dto.UserView, error) {
	s.logger.Debug().Str("file", path).Msg("Uploading avatar")

	var user models.User
	err := s.api.UploadFile(ctx, "/users/me/avatar", client.Upload{Path: path}, &user, progress)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to change your avatar",
		})
	}

	if err := s.store.SetUser(&user); err != nil {
		s.logger.Warn().Err(err).Msg("Could not refresh cached user")
	}

	view := dto.ToUserView(&user)
	return &view, nil
}
