package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
	"github.com/yigit/alumnisphere/internal/pkg/validation"
)

// AuthService handles the session lifecycle: sign in, sign up, sign out and
// the cached identity.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.UserView, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*dto.UserView, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*dto.UserView, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	api    *client.Client
	store  *credstore.Store
	logger zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(api *client.Client, store *credstore.Store, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Login exchanges credentials for a bearer token and persists the session.
func (s *authServiceImpl) Login(ctx context.Context, email, password string) (*dto.UserView, error) {
	s.logger.Debug().Str("email", email).Msg("Logging in")

	var token models.TokenResponse
	err := s.api.Post(ctx, "/auth/login", &models.LoginRequest{Email: email, Password: password}, &token)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "Incorrect email or password",
		})
	}

	user := token.User
	if user == nil {
		// Older deployments return only the token; fetch the identity with it.
		if err := s.store.SetToken(token.AccessToken); err != nil {
			return nil, fmt.Errorf("persisting session: %w", err)
		}
		user = &models.User{}
		if err := s.api.Get(ctx, "/users/me", nil, user); err != nil {
			return nil, err
		}
	}

	if err := s.store.SetSession(token.AccessToken, user); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Logged in")

	view := dto.ToUserView(user)
	return &view, nil
}

// Register creates an account and signs it in. Input is validated before any
// network traffic.
func (s *authServiceImpl) Register(ctx context.Context, req *models.RegisterRequest) (*dto.UserView, error) {
	s.logger.Debug().Str("email", req.Email).Msg("Registering account")

	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	var token models.TokenResponse
	err := s.api.Post(ctx, "/auth/register", req, &token)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Conflict: "An account with this email already exists",
		})
	}

	user := token.User
	if user == nil {
		user = &models.User{Email: req.Email, FirstName: req.FirstName, LastName: req.LastName}
	}

	if err := s.store.SetSession(token.AccessToken, user); err != nil {
		return nil, fmt.Errorf("persisting session: %w", err)
	}

	s.logger.Info().Int64("userId", user.ID).Msg("Account registered")

	view := dto.ToUserView(user)
	return &view, nil
}

// Logout clears the stored session. The server call is best-effort: local
// state is dropped even when the network is down.
func (s *authServiceImpl) Logout(ctx context.Context) error {
	if err := s.api.Post(ctx, "/auth/logout", nil, nil); err != nil {
		s.logger.Debug().Err(err).Msg("Server logout failed, clearing local session anyway")
	}

	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}

	s.logger.Info().Msg("Logged out")
	return nil
}

// Me fetches the caller's identity and refreshes the cached user record.
func (s *authServiceImpl) Me(ctx context.Context) (*dto.UserView, error) {
	var user models.User
	err := s.api.Get(ctx, "/users/me", nil, &user)
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

// ChangePassword replaces the caller's password.
func (s *authServiceImpl) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	if len(newPassword) < validation.PasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("New password must be at least %d characters", validation.PasswordMinLength))
	}

	err := s.api.Post(ctx, "/auth/change-password", &models.ChangePasswordRequest{
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	}, nil)

	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in",
	})
}

// validateRegistration applies the client-side rules so obviously bad input
// never reaches the wire.
func validateRegistration(req *models.RegisterRequest) error {
	if !validation.NewStringValidation(req.Email).WithPattern(validation.CompiledPatterns.Email).Validate() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Enter a valid email address")
	}
	if !validation.NewStringValidation(req.Password).WithMinLength(validation.PasswordMinLength).Validate() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed,
			fmt.Sprintf("Password must be at least %d characters", validation.PasswordMinLength))
	}
	if !validation.NewStringValidation(req.FirstName).WithMinLength(validation.NameMinLength).WithMaxLength(validation.NameMaxLength).Validate() ||
		!validation.NewStringValidation(req.LastName).WithMinLength(validation.NameMinLength).WithMaxLength(validation.NameMaxLength).Validate() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "First and last name are required")
	}
	if req.GraduationYear != 0 && !validation.NewNumericValidation(req.GraduationYear).WithMin(1900).WithMax(2100).Validate() {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Graduation year looks wrong")
	}
	return nil
}
