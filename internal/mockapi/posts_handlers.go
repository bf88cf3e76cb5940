package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/pkg/helpers"
	"github.com/yigit/alumnisphere/internal/pkg/validation"
)

// handleFeed returns one skip/limit page of the feed: pinned posts first,
// then newest. Hidden posts are visible to admins only.
func (s *Server) handleFeed(c *gin.Context) {
	skip, limit := helpers.ParseSkipLimit(c)
	viewer := currentUser(c)
	viewerID := currentUserID(c)

	s.store.mu.Lock()
	posts := s.store.sortedFeed(viewer != nil && viewer.IsAdmin())
	start, end := helpers.SliceWindow(skip, limit, len(posts))
	page := make([]models.Post, 0, end-start)
	for _, p := range posts[start:end] {
		page = append(page, s.store.postView(p, viewerID))
	}
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, page)
}

func (s *Server) handleGetPost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	post, exists := s.store.posts[id]
	var view models.Post
	if exists && post.Status != models.PostDeleted {
		view = s.store.postView(post, currentUserID(c))
	} else {
		exists = false
	}
	s.store.mu.Unlock()

	if !exists {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	c.JSON(http.StatusOK, view)
}

func (s *Server) handleCreatePost(c *gin.Context) {
	user := currentUser(c)

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		fail(c, http.StatusUnprocessableEntity, "Post content is required")
		return
	}

	now := time.Now()
	post := &models.Post{
		Content:      req.Content,
		AuthorID:     user.ID,
		UniversityID: user.UniversityID,
		Status:       models.PostActive,
		Tag:          req.Tag,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.store.mu.Lock()
	post.ID = s.store.nextID("post")
	s.store.posts[post.ID] = post
	view := s.store.postView(post, user.ID)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, view)
}

func (s *Server) handleUpdatePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusUnprocessableEntity, "Invalid post payload")
		return
	}

	s.store.mu.Lock()
	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		s.store.mu.Unlock()
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.AuthorID != user.ID {
		s.store.mu.Unlock()
		fail(c, http.StatusForbidden, "Only the author can edit this post")
		return
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Tag != nil {
		post.Tag = req.Tag
	}
	post.UpdatedAt = time.Now()
	view := s.store.postView(post, user.ID)
	s.store.mu.Unlock()

	c.JSON(http.StatusOK, view)
}

// handleDeletePost soft-deletes: the post drops out of every list but keeps
// its row, matching the platform's moderation trail.
func (s *Server) handleDeletePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.AuthorID != user.ID && !user.IsAdmin() {
		fail(c, http.StatusForbidden, "Only the author can delete this post")
		return
	}
	post.Status = models.PostDeleted
	post.UpdatedAt = time.Now()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleLikePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status != models.PostActive {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}

	likes := s.store.postLikes[id]
	if likes == nil {
		likes = map[int64]bool{}
		s.store.postLikes[id] = likes
	}
	if likes[user.ID] {
		fail(c, http.StatusConflict, "Post already liked")
		return
	}
	likes[user.ID] = true
	s.store.notify(post.AuthorID, user.ID, models.NotifLike,
		"New like", user.FullName()+" liked your post", post.ID)
	c.Status(http.StatusNoContent)
}

func (s *Server) handleUnlikePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	if _, exists := s.store.posts[id]; !exists {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	likes := s.store.postLikes[id]
	if !likes[user.ID] {
		fail(c, http.StatusNotFound, "Post not liked")
		return
	}
	delete(likes, user.ID)
	c.Status(http.StatusNoContent)
}

// setPinned flips the pin flag; setHidden moves a post between active and
// hidden. Both sit behind requireAdmin in the router.
func (s *Server) setPinned(c *gin.Context, pinned bool) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	post.IsPinned = pinned
	post.UpdatedAt = time.Now()
	c.Status(http.StatusNoContent)
}

func (s *Server) handlePinPost(c *gin.Context)   { s.setPinned(c, true) }
func (s *Server) handleUnpinPost(c *gin.Context) { s.setPinned(c, false) }

func (s *Server) handleHidePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.Status == models.PostHidden {
		fail(c, http.StatusConflict, "Post is already hidden")
		return
	}
	post.Status = models.PostHidden
	post.UpdatedAt = time.Now()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleRestorePost(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.Status != models.PostHidden {
		fail(c, http.StatusConflict, "Post is not hidden")
		return
	}
	post.Status = models.PostActive
	post.UpdatedAt = time.Now()
	c.Status(http.StatusNoContent)
}

func (s *Server) handleListComments(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}

	comments := make([]models.Comment, 0, len(s.store.comments[id]))
	for _, cm := range s.store.comments[id] {
		out := *cm
		if author, ok := s.store.users[cm.AuthorID]; ok {
			a := *author
			out.Author = &a
		}
		comments = append(comments, out)
	}
	c.JSON(http.StatusOK, comments)
}

func (s *Server) handleAddComment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	user := currentUser(c)

	var req struct {
		Content string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == "" {
		fail(c, http.StatusUnprocessableEntity, "Comment content is required")
		return
	}

	s.store.mu.Lock()
	defer s.store.mu.Unlock()

	post, exists := s.store.posts[id]
	if !exists || post.Status != models.PostActive {
		fail(c, http.StatusNotFound, "Post not found")
		return
	}

	comment := &models.Comment{
		ID:        s.store.nextID("comment"),
		PostID:    id,
		AuthorID:  user.ID,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}
	s.store.comments[id] = append(s.store.comments[id], comment)
	s.store.notify(post.AuthorID, user.ID, models.NotifComment,
		"New comment", user.FullName()+" commented on your post", post.ID)

	out := *comment
	u := *user
	out.Author = &u
	c.JSON(http.StatusCreated, out)
}

// handleUploadPostMedia attaches one multipart file to a post. The position
// form field fixes the attachment's order within the post; it is read before
// the file part, which is why the client writes text fields first.
func (s *Server) handleUploadPostMedia(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
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

	position, _ := strconv.Atoi(c.PostForm("position"))

	s.store.mu.Lock()
	post, exists := s.store.posts[id]
	if !exists || post.Status == models.PostDeleted {
		s.store.mu.Unlock()
		fail(c, http.StatusNotFound, "Post not found")
		return
	}
	if post.AuthorID != user.ID {
		s.store.mu.Unlock()
		fail(c, http.StatusForbidden, "Only the author can attach media")
		return
	}
	s.store.mu.Unlock()

	url, err := s.storage.Save(fileHeader)
	if err != nil {
		s.logger.Error().Err(err).Int64("postId", id).Msg("Media upload failed")
		fail(c, http.StatusInternalServerError, "Could not store the file")
		return
	}

	s.store.mu.Lock()
	media := models.PostMedia{
		ID:        s.store.nextID("media"),
		PostID:    id,
		URL:       url,
		MediaType: kind,
		Position:  position,
	}
	post.Media = append(post.Media, media)
	s.store.mu.Unlock()

	c.JSON(http.StatusCreated, media)
}
