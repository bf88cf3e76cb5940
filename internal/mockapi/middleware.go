package mockapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models"
)

const contextUserKey = "currentUser"

// fail writes the platform's error body shape: a "detail" field carrying the
// human-readable message.
func fail(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

// bearerToken pulls the token out of the Authorization header. Empty means
// the request is anonymous.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

// optionalAuth resolves the caller's identity when a valid token is present
// and lets anonymous requests through. Handlers that compute viewer-relative
// fields (is_registered, is_liked) sit behind this.
func (s *Server) optionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := s.tokens.Validate(token)
		if err != nil {
			fail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		s.store.mu.Lock()
		user, ok := s.store.users[claims.UserID]
		s.store.mu.Unlock()
		if !ok || !user.IsActive {
			fail(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// requireAuth rejects anonymous requests. Must run after optionalAuth.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(contextUserKey); !ok {
			fail(c, http.StatusUnauthorized, "Authentication required")
			return
		}
		c.Next()
	}
}

// requireAdmin rejects callers without an administrative role. Must run
// after requireAuth.
func (s *Server) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin() {
			fail(c, http.StatusForbidden, "Administrator access required")
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated caller, nil for anonymous requests.
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(contextUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}

// currentUserID returns the caller's id, 0 for anonymous requests.
func currentUserID(c *gin.Context) int64 {
	if user := currentUser(c); user != nil {
		return user.ID
	}
	return 0
}
