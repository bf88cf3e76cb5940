package dto

import (
	"strconv"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// NotificationView is the camelCase notification the UI layer renders.
type NotificationView struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Title       string    `json:"title"`
	Message     string    `json:"message"`
	ReferenceID *int64    `json:"referenceId,omitempty"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
	AgeLabel    string    `json:"ageLabel"`
}

// ToNotificationView maps a wire notification to its view shape. now anchors
// the relative age label.
func ToNotificationView(n *models.Notification, now time.Time) NotificationView {
	return NotificationView{
		ID:          n.ID,
		Type:        string(n.Type),
		Title:       n.Title,
		Message:     n.Message,
		ReferenceID: n.ReferenceID,
		IsRead:      n.IsRead,
		CreatedAt:   n.CreatedAt,
		AgeLabel:    ageLabel(now.Sub(n.CreatedAt)),
	}
}

// ToNotificationViews maps a list of wire notifications, preserving order.
func ToNotificationViews(list []models.Notification, now time.Time) []NotificationView {
	views := make([]NotificationView, 0, len(list))
	for i := range list {
		views = append(views, ToNotificationView(&list[i], now))
	}
	return views
}

// ageLabel renders a coarse relative timestamp ("just now", "5m ago", ...).
func ageLabel(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return strconv.Itoa(int(d.Minutes())) + "m ago"
	case d < 24*time.Hour:
		return strconv.Itoa(int(d.Hours())) + "h ago"
	default:
		return strconv.Itoa(int(d.Hours()/24)) + "d ago"
	}
}
