package dto

import (
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// Display layouts for event dates.
const (
	eventDateLayout = "Mon, Jan 2, 2006"
	eventTimeLayout = "3:04 PM"
)

// EventView is the camelCase event shape the UI layer renders, with the
// derived flags the wire format does not carry.
type EventView struct {
	ID                   int64      `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	StartDate            time.Time  `json:"startDate"`
	EndDate              *time.Time `json:"endDate,omitempty"`
	DateLabel            string     `json:"dateLabel"`
	TimeLabel            string     `json:"timeLabel"`
	Location             string     `json:"location,omitempty"`
	MeetingLink          string     `json:"meetingLink,omitempty"`
	MaxAttendees         *int       `json:"maxAttendees,omitempty"`
	RegistrationDeadline *time.Time `json:"registrationDeadline,omitempty"`
	Status               string     `json:"status"`
	CreatorID            int64      `json:"creatorId"`
	CreatorName          string     `json:"creatorName,omitempty"`
	AttendeeCount        int        `json:"attendeeCount"`
	IsRegistered         bool       `json:"isRegistered"`
	IsVirtual            bool       `json:"isVirtual"`
	IsCreator            bool       `json:"isCreator"`
	IsFull               bool       `json:"isFull"`
	SpotsLeft            *int       `json:"spotsLeft,omitempty"`
	CanRegister          bool       `json:"canRegister"`
}

// ToEventView maps a wire event to its view shape. currentUserID identifies
// the viewer; now anchors the deadline check.
//
// CanRegister holds only when every gate passes: the event is upcoming, the
// registration deadline (if any) has not passed, capacity (if any) is not
// reached, and the viewer is not already registered.
func ToEventView(event *models.Event, currentUserID int64, now time.Time) EventView {
	view := EventView{
		ID:                   event.ID,
		Title:                event.Title,
		Description:          event.Description,
		StartDate:            event.StartDate,
		EndDate:              event.EndDate,
		DateLabel:            event.StartDate.Format(eventDateLayout),
		TimeLabel:            event.StartDate.Format(eventTimeLayout),
		Location:             event.Location,
		MeetingLink:          event.MeetingLink,
		MaxAttendees:         event.MaxAttendees,
		RegistrationDeadline: event.RegistrationDeadline,
		Status:               string(event.Status),
		CreatorID:            event.CreatorID,
		AttendeeCount:        event.AttendeeCount,
		IsRegistered:         event.IsRegistered,
		IsVirtual:            event.MeetingLink != "",
		IsCreator:            event.CreatorID == currentUserID,
	}

	if event.Creator != nil {
		view.CreatorName = event.Creator.FullName()
	}

	if event.MaxAttendees != nil {
		view.IsFull = event.AttendeeCount >= *event.MaxAttendees
		spots := *event.MaxAttendees - event.AttendeeCount
		if spots < 0 {
			spots = 0
		}
		view.SpotsLeft = &spots
	}

	view.CanRegister = event.Status == models.EventUpcoming &&
		(event.RegistrationDeadline == nil || event.RegistrationDeadline.After(now)) &&
		!view.IsFull &&
		!event.IsRegistered

	return view
}

// ToEventViews maps a page of wire events, preserving order.
func ToEventViews(events []models.Event, currentUserID int64, now time.Time) []EventView {
	views := make([]EventView, 0, len(events))
	for i := range events {
		views = append(views, ToEventView(&events[i], currentUserID, now))
	}
	return views
}
