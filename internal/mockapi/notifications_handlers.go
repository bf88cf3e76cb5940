package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// handleListNotifications returns the caller's notifications, newest first.
// unread_only=true drops the already-read ones.
func (s *Server) handleListNotifications(c *gin.Context) {
	user := currentUser(c)
	unreadOnly := c.Query("unread_only") == "true"

	s.store.mu.Lock()
	stored := s.store.notifs[user.ID]
	list := make([]models.Notification, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		if unreadOnly && stored[i].IsRead {
			continue
		}
		list = append(list, *stored[i])
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleUnreadCount(c *gin.Context) {
	user := currentUser(c)

	s.store.mu.Lock()
	count := 0
	for _, n := range s.store.notifs[user.ID] {
		if !n.IsRead {
			count++
		}
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, models.UnreadCount{Count: count})
}

func (s *Server) handleMarkNotificationRead(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	for _, n := range s.store.notifs[user.ID] {
		if n.ID == id {
			n.IsRead = true
			c.Status(http.StatusNoContent)
			return
		}
	}
	fail(c, http.StatusNotFound, "Notification not found")
}

func (s *Server) handleMarkAllNotificationsRead(c *gin.Context) {
	user := currentUser(c)

	s.store.mu.Lock()
	for _, n := range s.store.notifs[user.ID] {
		n.IsRead = true
	}
	s.store.mu.Unlock()

	c.Status(http.StatusNoContent)
}
