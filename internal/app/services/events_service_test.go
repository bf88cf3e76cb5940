package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/mockapi"
	"github.com/yigit/alumnisphere/internal/pkg/apperrors"
)

func TestEventsListReturnsOnePage(t *testing.T) {
	e := newTestEnv(t)

	events, err := e.svc.Events.List(context.Background(), 0, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	// The virtual career night starts before the reunion.
	assert.Equal(t, "Career Networking Night", events[0].Title)
	assert.True(t, events[0].IsVirtual)
}

func TestEventsListAllDrainsEveryPage(t *testing.T) {
	e := newTestEnv(t)

	// Enough extra events to force three pages at the default page size.
	base := time.Now().Add(60 * 24 * time.Hour)
	for i := 1; i <= 25; i++ {
		e.mock.Store().AddEvent(&models.Event{
			Title:        fmt.Sprintf("Alumni Talk %02d", i),
			Description:  "A guest lecture from the alumni network.",
			StartDate:    base.Add(time.Duration(i) * time.Hour),
			Location:     "Lecture Hall 1",
			CreatorID:    1,
			UniversityID: 1,
		})
	}

	events, err := e.svc.Events.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 27)

	// Seeded events start earlier, then the talks in start-date order.
	assert.Equal(t, "Career Networking Night", events[0].Title)
	assert.Equal(t, "Spring Alumni Reunion", events[1].Title)
	for i := 1; i <= 25; i++ {
		assert.Equal(t, fmt.Sprintf("Alumni Talk %02d", i), events[1+i].Title)
	}
}

func TestEventRegistrationLifecycle(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.loginAlumni(t)

	require.NoError(t, e.svc.Events.Register(ctx, 1))

	view, err := e.svc.Events.Get(ctx, 1)
	require.NoError(t, err)
	assert.True(t, view.IsRegistered)
	assert.Equal(t, 1, view.AttendeeCount)
	assert.False(t, view.CanRegister)

	err = e.svc.Events.Register(ctx, 1)
	require.Error(t, err)
	assert.EqualError(t, err, "You are already registered for this event")
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	attendees, err := e.svc.Events.Attendees(ctx, 1)
	require.NoError(t, err)
	require.Len(t, attendees, 1)
	assert.Equal(t, "Jane Doe", attendees[0].FullName)

	require.NoError(t, e.svc.Events.Unregister(ctx, 1))

	err = e.svc.Events.Unregister(ctx, 1)
	require.Error(t, err)
	assert.EqualError(t, err, "You are not registered for this event")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEventRegisterRequiresSession(t *testing.T) {
	e := newTestEnv(t)

	err := e.svc.Events.Register(context.Background(), 1)
	require.Error(t, err)
	assert.EqualError(t, err, "You must be logged in to register for events")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestEventRegistrationGates(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	one := 1
	past := time.Now().Add(-time.Hour)
	fullID := e.mock.Store().AddEvent(&models.Event{
		Title:        "Tiny Roundtable",
		StartDate:    time.Now().Add(48 * time.Hour),
		MaxAttendees: &one,
		CreatorID:    1,
		UniversityID: 1,
	})
	closedID := e.mock.Store().AddEvent(&models.Event{
		Title:                "Missed Deadline Mixer",
		StartDate:            time.Now().Add(48 * time.Hour),
		RegistrationDeadline: &past,
		CreatorID:            1,
		UniversityID:         1,
	})
	cancelledID := e.mock.Store().AddEvent(&models.Event{
		Title:        "Cancelled Gala",
		StartDate:    time.Now().Add(48 * time.Hour),
		Status:       models.EventCancelled,
		CreatorID:    1,
		UniversityID: 1,
	})

	e.loginAs(t, "marcus@alumni.state.edu", mockapi.SeedAlumniPassword)
	require.NoError(t, e.svc.Events.Register(ctx, fullID))

	e.loginAlumni(t)

	err := e.svc.Events.Register(ctx, fullID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	err = e.svc.Events.Register(ctx, closedID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	err = e.svc.Events.Register(ctx, cancelledID)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	view, err := e.svc.Events.Get(ctx, fullID)
	require.NoError(t, err)
	assert.True(t, view.IsFull)
	assert.False(t, view.CanRegister)
}

func TestEventCreateUpdateDelete(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()
	e.loginAlumni(t)

	view, err := e.svc.Events.Create(ctx, &models.CreateEventRequest{
		Title:       "Book Club Kickoff",
		Description: "First meeting of the alumni book club.",
		StartDate:   time.Now().Add(7 * 24 * time.Hour),
		MeetingLink: "https://meet.alumnisphere.app/book-club",
	})
	require.NoError(t, err)
	assert.True(t, view.IsCreator)
	assert.True(t, view.IsVirtual)
	assert.Equal(t, string(models.EventUpcoming), view.Status)
	assert.True(t, view.CanRegister) // creators still register like anyone else

	newTitle := "Book Club: Chapter One"
	updated, err := e.svc.Events.Update(ctx, view.ID, &models.UpdateEventRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)

	// Another alumni account cannot touch it.
	e.loginAs(t, "marcus@alumni.state.edu", mockapi.SeedAlumniPassword)
	_, err = e.svc.Events.Update(ctx, view.ID, &models.UpdateEventRequest{Title: &newTitle})
	require.Error(t, err)
	assert.EqualError(t, err, "Only the event creator can edit this event")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)

	err = e.svc.Events.Delete(ctx, view.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "Only the event creator can delete this event")

	e.loginAlumni(t)
	require.NoError(t, e.svc.Events.Delete(ctx, view.ID))

	_, err = e.svc.Events.Get(ctx, view.ID)
	require.Error(t, err)
	assert.EqualError(t, err, "Event not found")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestEventFilterAndSearch(t *testing.T) {
	e := newTestEnv(t)
	svc := e.svc.Events

	events := []dto.EventView{
		{Title: "Spring Reunion", Location: "Main Campus", Status: "upcoming", IsRegistered: true},
		{Title: "Career Night", Description: "Networking online", Status: "upcoming", IsVirtual: true},
		{Title: "Winter Gala", Status: "completed"},
	}

	upcoming := svc.Filter(events, EventFilter{Status: "upcoming"})
	assert.Len(t, upcoming, 2)

	virtual := svc.Filter(events, EventFilter{VirtualOnly: true})
	require.Len(t, virtual, 1)
	assert.Equal(t, "Career Night", virtual[0].Title)

	registered := svc.Filter(events, EventFilter{RegisteredOnly: true})
	require.Len(t, registered, 1)
	assert.Equal(t, "Spring Reunion", registered[0].Title)

	found := svc.Search(events, "networking")
	require.Len(t, found, 1)
	assert.Equal(t, "Career Night", found[0].Title)

	assert.Len(t, svc.Search(events, "  "), 3)
	assert.Empty(t, svc.Search(events, "no such thing"))
}
