package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
	"github.com/yigit/alumnisphere/internal/pkg/validation"
)

func (s *Server) handleGetMe(c *gin.Context) {
	c.JSON(http.StatusOK, *currentUser(c))
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	user, exists := s.store.users[id]
	var out models.User
	if exists {
		out = *user
	}
	s.store.mu.Unlock()

	if !exists {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateMe(c *gin.Context) {
	user := currentUser(c)

	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid account payload")
		return
	}

	s.store.mu.Lock()
	stored := s.store.users[user.ID]
	if req.FirstName != nil {
		stored.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		stored.LastName = *req.LastName
	}
	out := *stored
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

// handleUploadAvatar replaces the caller's avatar. Only image extensions are
// accepted here; the video allowlist does not apply to avatars.
func (s *Server) handleUploadAvatar(c *gin.Context) {
	user := currentUser(c)

	if s.storage == nil {
		fail(c, http.StatusInternalServerError, "Upload storage is not configured")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, "A file part is required")
		return
	}

	kind, err := validation.CheckMediaFile(fileHeader.Filename, fileHeader.Size)
	if err != nil {
		fail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if kind != models.MediaImage {
		fail(c, http.StatusUnprocessableEntity, "Avatar must be an image")
		return
	}

	url, err := s.storage.Save(fileHeader)
	if err != nil {
		s.logger.Error().Err(err).Int64("userId", user.ID).Msg("Avatar upload failed")
		fail(c, http.StatusInternalServerError, "Could not store the file")
		return
	}

	s.store.mu.Lock()
	stored := s.store.users[user.ID]
	stored.AvatarURL = url
	out := *stored
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

func (s *Server) handleListUniversities(c *gin.Context) {
	s.store.mu.Lock()
	list := make([]models.University, 0, len(s.store.universities))
	for _, u := range s.store.universities {
		list = append(list, *u)
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, list)
}

func (s *Server) handleGetUniversity(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	u, exists := s.store.universities[id]
	var out models.University
	if exists {
		out = *u
	}
	s.store.mu.Unlock()

	if !exists {
		fail(c, http.StatusNotFound, "University not found")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleGetUniversityBySlug(c *gin.Context) {
	slug := c.Param("slug")

	s.store.mu.Lock()
	var out *models.University
	for _, u := range s.store.universities {
		if u.Slug == slug {
			cp := *u
			out = &cp
			break
		}
	}
	s.store.mu.Unlock()

	if out == nil {
		fail(c, http.StatusNotFound, "University not found")
		return
	}
	c.JSON(http.StatusOK, *out)
}

func (s *Server) handleListAlumni(c *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(c)

	s.store.mu.Lock()
	profiles := s.store.sortedProfiles()
	start, end := helpers.SliceWindow(skip, limit, len(profiles))
	page := make([]models.AlumniProfile, 0, end-start)
	for _, p := range profiles[start:end] {
		out := *p
		if u, ok := s.store.users[p.UserID]; ok {
			cp := *u
			out.User = &cp
		}
		page = append(page, out)
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleGetAlumniProfile(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	s.store.mu.Lock()
	profile, exists := s.store.profiles[userID]
	var out models.AlumniProfile
	if exists {
		out = *profile
		if u, uok := s.store.users[userID]; uok {
			cp := *u
			out.User = &cp
		}
	}
	s.store.mu.Unlock()

	if !exists {
		fail(c, http.StatusNotFound, "Alumni profile not found")
		return
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) handleUpdateMyProfile(c *gin.Context) {
	user := currentUser(c)

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid profile payload")
		return
	}

	s.store.mu.Lock()
	profile, exists := s.store.profiles[user.ID]
	if !exists {
		profile = &models.AlumniProfile{
			ID:        s.store.nextID("profile"),
			UserID:    user.ID,
			CreatedAt: time.Now(),
		}
		s.store.profiles[user.ID] = profile
	}
	if req.GraduationYear != nil {
		profile.GraduationYear = *req.GraduationYear
	}
	if req.Degree != nil {
		profile.Degree = *req.Degree
	}
	if req.Major != nil {
		profile.Major = *req.Major
	}
	if req.CurrentPosition != nil {
		profile.CurrentPosition = *req.CurrentPosition
	}
	if req.Company != nil {
		profile.Company = *req.Company
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}
	if req.Bio != nil {
		profile.Bio = *req.Bio
	}
	if req.LinkedinURL != nil {
		profile.LinkedinURL = *req.LinkedinURL
	}
	if req.TwitterURL != nil {
		profile.TwitterURL = *req.TwitterURL
	}
	if req.WebsiteURL != nil {
		profile.WebsiteURL = *req.WebsiteURL
	}
	profile.UpdatedAt = time.Now()

	out := *profile
	cp := *user
	out.User = &cp
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, out)
}
