package models

import "time"

// Notification mirrors the platform's notification resource.
type Notification struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"user_id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	ReferenceID *int64           `json:"reference_id,omitempty"` // id of the post/event/user it points at
	IsRead      bool             `json:"is_read"`
	CreatedAt   time.Time        `json:"created_at"`
}

// UnreadCount is the response of the unread counter endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}
