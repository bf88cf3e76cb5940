package mockapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// handleRegister creates an account plus its alumni profile and signs it in.
func (s *Server) handleRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid registration payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		fail(c, http.StatusUnprocessableEntity, "Email and password are required")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Could not hash password")
		return
	}

	s.store.mu.Lock()
	if _, exists := s.store.emails[email]; exists {
		s.store.mu.Unlock()
		fail(c, http.StatusConflict, "An account with this email already exists")
		return
	}

	now := time.Now()
	user := &models.User{
		ID:           s.store.nextID("user"),
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         models.RoleAlumni,
		UniversityID: req.UniversityID,
		IsActive:     true,
		CreatedAt:    now,
	}
	s.store.users[user.ID] = user
	s.store.passwords[user.ID] = string(hash)
	s.store.emails[email] = user.ID

	s.store.profiles[user.ID] = &models.AlumniProfile{
		ID:             s.store.nextID("profile"),
		UserID:         user.ID,
		GraduationYear: req.GraduationYear,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	userCopy := *user
	s.store.mu.Unlock()

	s.issueSession(c, http.StatusCreated, &userCopy)
}

// handleLogin exchanges credentials for a bearer token.
func (s *Server) handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid login payload")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	s.store.mu.Lock()
	userID, ok := s.store.emails[email]
	var userCopy models.User
	var hash string
	if ok {
		userCopy = *s.store.users[userID]
		hash = s.store.passwords[userID]
	}
	s.store.mu.Unlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, "Incorrect email or password")
		return
	}
	if !userCopy.IsActive {
		fail(c, http.StatusForbidden, "Account is deactivated")
		return
	}

	s.issueSession(c, http.StatusOK, &userCopy)
}

// handleLogout acknowledges the logout. Tokens are stateless here, so there
// is nothing to revoke; the client drops its copy.
func (s *Server) handleLogout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// handleChangePassword replaces the caller's password after checking the
// current one.
func (s *Server) handleChangePassword(c *gin.Context) {
	user := currentUser(c)

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewPassword == "" {
		fail(c, http.StatusUnprocessableEntity, "Invalid password payload")
		return
	}

	s.store.mu.Lock()
	hash := s.store.passwords[user.ID]
	s.store.mu.Unlock()

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.CurrentPassword)) != nil {
		fail(c, http.StatusUnprocessableEntity, "Current password is incorrect")
		return
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		fail(c, http.StatusInternalServerError, "Could not hash password")
		return
	}

	s.store.mu.Lock()
	s.store.passwords[user.ID] = string(newHash)
	s.store.mu.Unlock()

	c.Status(http.StatusNoContent)
}

// issueSession signs a token for the user and writes the token response.
func (s *Server) issueSession(c *gin.Context, status int, user *models.User) {
	token, expiresIn, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Token issue failed")
		fail(c, http.StatusInternalServerError, "Could not issue token")
		return
	}

	c.JSON(status, models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		User:        user,
	})
}
