package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
)

// pathID parses a numeric id path parameter. A non-numeric id aborts with a
// 404 because no resource can have it.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		fail(c, http.StatusNotFound, "Resource not found")
		return 0, false
	}
	return id, true
}

// handleListEvents returns one skip/limit page of events ordered by start
// date.
func (s *Server) handleListEvents(c *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(c)
	viewerID := currentUserID(c)

	s.store.mu.Lock()
	events := s.store.sortedEvents()
	start, end := helpers.SliceWindow(skip, limit, len(events))
	page := make([]models.Event, 0, end-start)
	for _, e := range events[start:end] {
		page = append(page, s.store.eventView(e, viewerID))
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleGetEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	event, exists := s.store.events[id]
	var view models.Event
	if exists {
		view = s.store.eventView(event, currentUserID(c))
	}
	s.store.mu.Unlock()

	if !exists {
		fail(c, http.StatusNotFound, "Event not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleCreateEvent(c *gin.Context) {
	user := currentUser(c)

	var req models.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
		fail(c, http.StatusUnprocessableEntity, "Invalid event payload")
		return
	}

	now := time.Now()
	event := &models.Event{
		Title:                req.Title,
		Description:          req.Description,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		Location:             req.Location,
		MeetingLink:          req.MeetingLink,
		MaxAttendees:         req.MaxAttendees,
		RegistrationDeadline: req.RegistrationDeadline,
		Status:               models.EventUpcoming,
		CreatorID:            user.ID,
		UniversityID:         user.UniversityID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	s.store.mu.Lock()
	event.ID = s.store.nextID("event")
	s.store.events[event.ID] = event
	view := s.store.eventView(event, user.ID)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleUpdateEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	var req models.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid event payload")
		return
	}

	s.store.mu.Lock()
	event, exists := s.store.events[id]
	if !exists {
		s.store.mu.Unlock()
		fail(c, http.StatusNotFound, "Event not found")
		return
	}
	if event.CreatorID != user.ID && !user.IsAdmin() {
		s.store.mu.Unlock()
		fail(c, http.StatusForbidden, "Only the event creator can edit this event")
		return
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.StartDate != nil {
		event.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		event.EndDate = req.EndDate
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.MeetingLink != nil {
		event.MeetingLink = *req.MeetingLink
	}
	if req.MaxAttendees != nil {
		event.MaxAttendees = req.MaxAttendees
	}
	if req.RegistrationDeadline != nil {
		event.RegistrationDeadline = req.RegistrationDeadline
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	event.UpdatedAt = time.Now()
	view := s.store.eventView(event, user.ID)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, view)
}

func (s *Server) handleDeleteEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	event, exists := s.store.events[id]
	if !exists {
		s.store.mu.Unlock()
		fail(c, http.StatusNotFound, "Event not found")
		return
	}
	if event.CreatorID != user.ID && !user.IsAdmin() {
		s.store.mu.Unlock()
		fail(c, http.StatusForbidden, "Only the event creator can delete this event")
		return
	}
	delete(s.store.events, id)
	delete(s.store.eventRegs, id)
	s.store.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// handleRegisterForEvent signs the caller up, enforcing the registration
// gates server-side: upcoming status, open deadline, free capacity, not
// already registered.
func (s *Server) handleRegisterForEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	event, exists := s.store.events[id]
	if !exists {
		fail(c, http.StatusNotFound, "Event not found")
		return
	}

	regs := s.store.eventRegs[id]
	if regs == nil {
		regs = map[int64]bool{}
		s.store.eventRegs[id] = regs
	}

	switch {
	case regs[user.ID]:
		fail(c, http.StatusConflict, "Already registered for this event")
	case event.Status != models.EventUpcoming:
		fail(c, http.StatusConflict, "Registration is closed for this event")
	case event.RegistrationDeadline != nil && event.RegistrationDeadline.Before(time.Now()):
		fail(c, http.StatusConflict, "The registration deadline has passed")
	case event.MaxAttendees != nil && len(regs) >= *event.MaxAttendees:
		fail(c, http.StatusConflict, "This event is full")
	default:
		regs[user.ID] = true
		s.store.notify(event.CreatorID, user.ID, models.NotifEvent,
			"New registration", user.FullName()+" registered for "+event.Title, event.ID)
		c.Status(http.StatusNoContent)
	}
}

func (s *Server) handleUnregisterFromEvent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.events[id]; !exists {
		fail(c, http.StatusNotFound, "Event not found")
		return
	}
	regs := s.store.eventRegs[id]
	if !regs[user.ID] {
		fail(c, http.StatusNotFound, "Not registered for this event")
		return
	}
	delete(regs, user.ID)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListAttendees(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.events[id]; !exists {
		fail(c, http.StatusNotFound, "Event not found")
		return
	}

	attendees := make([]models.User, 0, len(s.store.eventRegs[id]))
	for userID := range s.store.eventRegs[id] {
		if u, ok := s.store.users[userID]; ok {
			attendees = append(attendees, *u)
		}
	}
	c.JSON(http.StatusOK, attendees)
}
