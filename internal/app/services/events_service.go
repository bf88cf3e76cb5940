package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

// EventFilter narrows an already-fetched event list. Zero values mean "any".
type EventFilter struct {
	Status         string
	VirtualOnly    bool
	RegisteredOnly bool
}

// EventsService defines the interface for event operations
type EventsService interface {
	List(ctx context.Context, skip, limit int) ([]dto.EventView, error)
	ListAll(ctx context.Context) ([]dto.EventView, error)
	Get(ctx context.Context, id int64) (*dto.EventView, error)
	Create(ctx context.Context, req *models.CreateEventRequest) (*dto.EventView, error)
	Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*dto.EventView, error)
	Delete(ctx context.Context, id int64) error
	Register(ctx context.Context, id int64) error
	Unregister(ctx context.Context, id int64) error
	Attendees(ctx context.Context, id int64) ([]dto.UserView, error)
	Filter(events []dto.EventView, filter EventFilter) []dto.EventView
	Search(events []dto.EventView, query string) []dto.EventView
}

// eventsServiceImpl implements EventsService
type eventsServiceImpl struct {
	api    *client.Client
	store  *credstore.Store
	logger zerolog.Logger
	now    func() time.Time
}

// NewEventsService creates a new EventsService
func NewEventsService(api *client.Client, store *credstore.Store, logger zerolog.Logger) EventsService {
	return &eventsServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
		now:    defaultNow,
	}
}

// List fetches one page of events.
func (s *eventsServiceImpl) List(ctx context.Context, skip, limit int) ([]dto.EventView, error) {
	events, err := s.fetchPage(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	return dto.ToEventViews(events, currentUserID(s.store), s.now()), nil
}

// ListAll drains every page of events.
func (s *eventsServiceImpl) ListAll(ctx context.Context) ([]dto.EventView, error) {
	events, err := helpers.CollectPages(ctx, helpers.DefaultLimit, s.fetchPage)
	if err != nil {
		return nil, err
	}
	return dto.ToEventViews(events, currentUserID(s.store), s.now()), nil
}

// fetchPage is the raw page fetch CollectPages loops over.
func (s *eventsServiceImpl) fetchPage(ctx context.Context, skip, limit int) ([]models.Event, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var events []models.Event
	if err := s.api.Get(ctx, "/events", query, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Get fetches one event.
func (s *eventsServiceImpl) Get(ctx context.Context, id int64) (*dto.EventView, error) {
	var event models.Event
	err := s.api.Get(ctx, fmt.Sprintf("/events/%d", id), nil, &event)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "Event not found",
		})
	}

	view := dto.ToEventView(&event, currentUserID(s.store), s.now())
	return &view, nil
}

// Create publishes a new event.
func (s *eventsServiceImpl) Create(ctx context.Context, req *models.CreateEventRequest) (*dto.EventView, error) {
	s.logger.Debug().Str("title", req.Title).Msg("Creating event")

	var event models.Event
	err := s.api.Post(ctx, "/events", req, &event)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to create events",
		})
	}

	s.logger.Info().Int64("eventId", event.ID).Msg("Event created")

	view := dto.ToEventView(&event, currentUserID(s.store), s.now())
	return &view, nil
}

// Update edits an event. Only the creator or an admin may do this; the
// server enforces it.
func (s *eventsServiceImpl) Update(ctx context.Context, id int64, req *models.UpdateEventRequest) (*dto.EventView, error) {
	var event models.Event
	err := s.api.Patch(ctx, fmt.Sprintf("/events/%d", id), req, &event)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Forbidden: "Only the event creator can edit this event",
			NotFound:  "Event not found",
		})
	}

	view := dto.ToEventView(&event, currentUserID(s.store), s.now())
	return &view, nil
}

// Delete removes an event.
func (s *eventsServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.api.Delete(ctx, fmt.Sprintf("/events/%d", id))
	return userFacing(err, failureMessages{
		Forbidden: "Only the event creator can delete this event",
		NotFound:  "Event not found",
	})
}

// Register signs the caller up for an event.
func (s *eventsServiceImpl) Register(ctx context.Context, id int64) error {
	s.logger.Debug().Int64("eventId", id).Msg("Registering for event")

	err := s.api.Post(ctx, fmt.Sprintf("/events/%d/register", id), nil, nil)
	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in to register for events",
		NotFound:     "Event not found",
		Conflict:     "You are already registered for this event",
	})
}

// Unregister withdraws the caller's registration.
func (s *eventsServiceImpl) Unregister(ctx context.Context, id int64) error {
	err := s.api.Delete(ctx, fmt.Sprintf("/events/%d/register", id))
	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in",
		NotFound:     "You are not registered for this event",
	})
}

// Attendees lists who registered for an event.
func (s *eventsServiceImpl) Attendees(ctx context.Context, id int64) ([]dto.UserView, error) {
	var users []models.User
	err := s.api.Get(ctx, fmt.Sprintf("/events/%d/attendees", id), nil, &users)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "Event not found",
		})
	}

	views := make([]dto.UserView, 0, len(users))
	for i := range users {
		views = append(views, dto.ToUserView(&users[i]))
	}
	return views, nil
}

// Filter narrows events without mutating the input.
func (s *eventsServiceImpl) Filter(events []dto.EventView, filter EventFilter) []dto.EventView {
	return lo.Filter(events, func(e dto.EventView, _ int) bool {
		if filter.Status != "" && e.Status != filter.Status {
			return false
		}
		if filter.VirtualOnly && !e.IsVirtual {
			return false
		}
		if filter.RegisteredOnly && !e.IsRegistered {
			return false
		}
		return true
	})
}

// Search matches a case-insensitive substring over title, description and
// location. An empty query returns the input unchanged.
func (s *eventsServiceImpl) Search(events []dto.EventView, query string) []dto.EventView {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return events
	}

	return lo.Filter(events, func(e dto.EventView, _ int) bool {
		haystack := strings.ToLower(e.Title + " " + e.Description + " " + e.Location)
		return strings.Contains(haystack, query)
	})
}
