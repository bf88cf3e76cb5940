package models

import "time"

// Event mirrors the platform's event resource as the API sends it.
// MaxAttendees and RegistrationDeadline are pointers: absent means uncapped
// and no deadline respectively.
type Event struct {
	ID                   int64       `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	StartDate            time.Time   `json:"start_date"`
	EndDate              *time.Time  `json:"end_date,omitempty"`
	Location             string      `json:"location,omitempty"`     // physical venue, empty for virtual events
	MeetingLink          string      `json:"meeting_link,omitempty"` // set for virtual events
	MaxAttendees         *int        `json:"max_attendees,omitempty"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	Status               EventStatus `json:"status"`
	CreatorID            int64       `json:"creator_id"`
	Creator              *User       `json:"creator,omitempty"`
	UniversityID         int64       `json:"university_id"`
	AttendeeCount        int         `json:"attendee_count"`
	IsRegistered         bool        `json:"is_registered"` // whether the requesting user is registered
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	StartDate            time.Time   `json:"start_date"`
	EndDate              *time.Time  `json:"end_date,omitempty"`
	Location             string      `json:"location,omitempty"`
	MeetingLink          string      `json:"meeting_link,omitempty"`
	MaxAttendees         *int        `json:"max_attendees,omitempty"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
}

// UpdateEventRequest is the payload for updating an event. Nil fields are
// left untouched by the server.
type UpdateEventRequest struct {
	Title                *string      `json:"title,omitempty"`
	Description          *string      `json:"description,omitempty"`
	StartDate            *time.Time   `json:"start_date,omitempty"`
	EndDate              *time.Time   `json:"end_date,omitempty"`
	Location             *string      `json:"location,omitempty"`
	MeetingLink          *string      `json:"meeting_link,omitempty"`
	MaxAttendees         *int         `json:"max_attendees,omitempty"`
	RegistrationDeadline *time.Time   `json:"registration_deadline,omitempty"`
	Status               *EventStatus `json:"status,omitempty"`
}
