// Package services holds one typed service per platform resource. Each
// service drives the transport client, maps wire records into view shapes
// and rephrases rejections into sentences fit for direct display.
package services

import (
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

// Services bundles every resource service behind one constructor call.
type Services struct {
	Auth          AuthService
	Events        EventsService
	Posts         PostsService
	Alumni        AlumniService
	Users         UsersService
	Documents     DocumentsService
	Notifications NotificationsService
	Universities  UniversitiesService
}

// NewServices wires every service to the shared transport and session store.
func NewServices(api *client.Client, store *credstore.Store, logger zerolog.Logger) *Services {
	return &Services{
		Auth:          NewAuthService(api, store, logger.With().Str("service", "auth").Logger()),
		Events:        NewEventsService(api, store, logger.With().Str("service", "events").Logger()),
		Posts:         NewPostsService(api, store, logger.With().Str("service", "posts").Logger()),
		Alumni:        NewAlumniService(api, store, logger.With().Str("service", "alumni").Logger()),
		Users:         NewUsersService(api, store, logger.With().Str("service", "users").Logger()),
		Documents:     NewDocumentsService(api, logger.With().Str("service", "documents").Logger()),
		Notifications: NewNotificationsService(api, logger.With().Str("service", "notifications").Logger()),
		Universities:  NewUniversitiesService(api, logger.With().Str("service", "universities").Logger()),
	}
}

// failureMessages carries per-operation phrasings for the common rejection
// statuses. Empty fields keep the transport error untouched.
type failureMessages struct {
	Unauthorized string
	Forbidden    string
	NotFound     string
	Conflict     string
}

// userFacing rephrases a rejection for display. The transport error stays in
// the wrap chain so callers can still branch on the status sentinel.
func userFacing(err error, msgs failureMessages) error {
	switch {
	case err == nil:
		return nil
	case msgs.Unauthorized != "" && errors.Is(err, apperrors.ErrUnauthorized):
		return apperrors.NewCustomError(err, msgs.Unauthorized)
	case msgs.Forbidden != "" && errors.Is(err, apperrors.ErrPermissionDenied):
		return apperrors.NewCustomError(err, msgs.Forbidden)
	case msgs.NotFound != "" && errors.Is(err, apperrors.ErrResourceNotFound):
		return apperrors.NewCustomError(err, msgs.NotFound)
	case msgs.Conflict != "" && errors.Is(err, apperrors.ErrConflict):
		return apperrors.NewCustomError(err, msgs.Conflict)
	default:
		return err
	}
}

// currentUserID returns the cached user's id, 0 when signed out. Mapping
// only needs it for viewer-relative flags, so a missing session is fine.
func currentUserID(store *credstore.Store) int64 {
	user, err := store.User()
	if err != nil {
		return 0
	}
	return user.ID
}

// defaultNow is the clock services use unless a test injects its own.
var defaultNow = time.Now
