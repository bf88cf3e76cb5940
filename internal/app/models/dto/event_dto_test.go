package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/yigit/alumnisphere/internal/app/models"
)

func intPtr(n int) *int          { return &n }
func timePtr(t time.Time) *time.Time { return &t }

// registrableEvent builds an event that passes every registration gate.
func registrableEvent(now time.Time) models.Event {
	return models.Event{
		ID:                   1,
		Title:                "Homecoming Mixer",
		StartDate:            now.Add(72 * time.Hour),
		Status:               models.EventUpcoming,
		CreatorID:            7,
		MaxAttendees:         intPtr(100),
		RegistrationDeadline: timePtr(now.Add(48 * time.Hour)),
		AttendeeCount:        10,
		IsRegistered:         false,
	}
}

func TestCanRegisterOpenEvent(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := registrableEvent(now)

	view := ToEventView(&event, 42, now)

	assert.True(t, view.CanRegister)
	assert.False(t, view.IsFull)
	assert.Equal(t, 90, *view.SpotsLeft)
}

func TestCanRegisterFalseWhenNotUpcoming(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	for _, status := range []models.EventStatus{
		models.EventOngoing, models.EventCompleted, models.EventCancelled,
	} {
		event := registrableEvent(now)
		event.Status = status

		view := ToEventView(&event, 42, now)
		assert.False(t, view.CanRegister, "status %s", status)
	}
}

func TestCanRegisterFalseAfterDeadline(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := registrableEvent(now)
	event.RegistrationDeadline = timePtr(now.Add(-time.Hour))

	view := ToEventView(&event, 42, now)

	// Deadline dominates even with free capacity.
	assert.False(t, view.CanRegister)
	assert.False(t, view.IsFull)
}

func TestCanRegisterFalseWhenFull(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := registrableEvent(now)
	event.AttendeeCount = 100

	view := ToEventView(&event, 42, now)

	assert.False(t, view.CanRegister)
	assert.True(t, view.IsFull)
	assert.Equal(t, 0, *view.SpotsLeft)
}

func TestCanRegisterFalseWhenAlreadyRegistered(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := registrableEvent(now)
	event.IsRegistered = true

	view := ToEventView(&event, 42, now)

	assert.False(t, view.CanRegister)
	assert.True(t, view.IsRegistered)
}

func TestCanRegisterNoDeadlineNoCap(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := registrableEvent(now)
	event.RegistrationDeadline = nil
	event.MaxAttendees = nil
	event.AttendeeCount = 5000

	view := ToEventView(&event, 42, now)

	assert.True(t, view.CanRegister)
	assert.Nil(t, view.SpotsLeft)
}

func TestEventViewDerivedFields(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	event := registrableEvent(now)
	event.StartDate = time.Date(2025, 6, 14, 18, 30, 0, 0, time.UTC)
	event.MeetingLink = "https://meet.alumnisphere.app/homecoming"
	event.Creator = &models.User{ID: 7, FirstName: "Ada", LastName: "Lovelace"}

	view := ToEventView(&event, 7, now)

	assert.True(t, view.IsVirtual)
	assert.True(t, view.IsCreator)
	assert.Equal(t, "Ada Lovelace", view.CreatorName)
	assert.Equal(t, "Sat, Jun 14, 2025", view.DateLabel)
	assert.Equal(t, "6:30 PM", view.TimeLabel)
}
