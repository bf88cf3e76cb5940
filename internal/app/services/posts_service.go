package services

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/yigit/alumnisphere/internal/app/models"
	"github.com/yigit/alumnisphere/internal/app/models/dto"
	"github.com/yigit/alumnisphere/internal/client"
	"github.com/yigit/alumnisphere/internal/credstore"
	"github.com/yigit/alumnisphere/internal/pkg/validation"
)

// PostsService defines the interface for feed operations
type PostsService interface {
	Feed(ctx context.Context, skip, limit int) ([]dto.PostView, error)
	Get(ctx context.Context, id int64) (*dto.PostView, error)
	Create(ctx context.Context, req *models.CreatePostRequest, mediaPaths []string, progress client.ProgressFunc) (*dto.PostView, error)
	Update(ctx context.Context, id int64, req *models.UpdatePostRequest) (*dto.PostView, error)
	Delete(ctx context.Context, id int64) error
	Like(ctx context.Context, id int64) error
	Unlike(ctx context.Context, id int64) error
	Pin(ctx context.Context, id int64) error
	Unpin(ctx context.Context, id int64) error
	Hide(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
	Comments(ctx context.Context, postID int64) ([]dto.CommentView, error)
	AddComment(ctx context.Context, postID int64, content string) (*dto.CommentView, error)
}

// postsServiceImpl implements PostsService
type postsServiceImpl struct {
	api    *client.Client
	store  *credstore.Store
	logger zerolog.Logger
}

// NewPostsService creates a new PostsService
func NewPostsService(api *client.Client, store *credstore.Store, logger zerolog.Logger) PostsService {
	return &postsServiceImpl{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Feed fetches one page of the university feed.
func (s *postsServiceImpl) Feed(ctx context.Context, skip, limit int) ([]dto.PostView, error) {
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var posts []models.Post
	if err := s.api.Get(ctx, "/posts", query, &posts); err != nil {
		return nil, err
	}
	return dto.ToPostViews(posts, currentUserID(s.store)), nil
}

// Get fetches one post.
func (s *postsServiceImpl) Get(ctx context.Context, id int64) (*dto.PostView, error) {
	var post models.Post
	err := s.api.Get(ctx, fmt.Sprintf("/posts/%d", id), nil, &post)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "Post not found",
		})
	}

	view := dto.ToPostView(&post, currentUserID(s.store))
	return &view, nil
}

// Create publishes a post, then uploads its attachments one at a time in the
// order given so the feed shows them as the author arranged them. Every file
// is validated before the post is created: one bad file fails the whole call
// with zero network traffic.
func (s *postsServiceImpl) Create(ctx context.Context, req *models.CreatePostRequest, mediaPaths []string, progress client.ProgressFunc) (*dto.PostView, error) {
	s.logger.Debug().Int("mediaCount", len(mediaPaths)).Msg("Creating post")

	for _, path := range mediaPaths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("reading media file: %w", err)
		}
		if _, err := validation.CheckMediaFile(path, info.Size()); err != nil {
			return nil, err
		}
	}

	var post models.Post
	err := s.api.Post(ctx, "/posts", req, &post)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to post",
		})
	}

	for i, path := range mediaPaths {
		up := client.Upload{
			Path:   path,
			Fields: map[string]string{"position": strconv.Itoa(i)},
		}
		if err := s.api.UploadFile(ctx, fmt.Sprintf("/posts/%d/media", post.ID), up, nil, progress); err != nil {
			return nil, fmt.Errorf("uploading media %d of %d: %w", i+1, len(mediaPaths), err)
		}
	}

	s.logger.Info().Int64("postId", post.ID).Msg("Post created")

	// Re-fetch so the returned view includes the uploaded attachments.
	if len(mediaPaths) > 0 {
		return s.Get(ctx, post.ID)
	}

	view := dto.ToPostView(&post, currentUserID(s.store))
	return &view, nil
}

// Update edits a post's content or tag.
func (s *postsServiceImpl) Update(ctx context.Context, id int64, req *models.UpdatePostRequest) (*dto.PostView, error) {
	var post models.Post
	err := s.api.Patch(ctx, fmt.Sprintf("/posts/%d", id), req, &post)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Forbidden: "Only the author can edit this post",
			NotFound:  "Post not found",
		})
	}

	view := dto.ToPostView(&post, currentUserID(s.store))
	return &view, nil
}

// Delete removes a post.
func (s *postsServiceImpl) Delete(ctx context.Context, id int64) error {
	err := s.api.Delete(ctx, fmt.Sprintf("/posts/%d", id))
	return userFacing(err, failureMessages{
		Forbidden: "Only the author can delete this post",
		NotFound:  "Post not found",
	})
}

// Like marks a post as liked by the caller.
func (s *postsServiceImpl) Like(ctx context.Context, id int64) error {
	err := s.api.Post(ctx, fmt.Sprintf("/posts/%d/like", id), nil, nil)
	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in to like posts",
		NotFound:     "Post not found",
		Conflict:     "You already liked this post",
	})
}

// Unlike removes the caller's like.
func (s *postsServiceImpl) Unlike(ctx context.Context, id int64) error {
	err := s.api.Delete(ctx, fmt.Sprintf("/posts/%d/like", id))
	return userFacing(err, failureMessages{
		Unauthorized: "You must be logged in",
		NotFound:     "You have not liked this post",
	})
}

// Pin sticks a post to the top of the feed. Admin only.
func (s *postsServiceImpl) Pin(ctx context.Context, id int64) error {
	err := s.api.Post(ctx, fmt.Sprintf("/posts/%d/pin", id), nil, nil)
	return userFacing(err, failureMessages{
		Forbidden: "Only administrators can pin posts",
		NotFound:  "Post not found",
	})
}

// Unpin removes a post from the pinned slot. Admin only.
func (s *postsServiceImpl) Unpin(ctx context.Context, id int64) error {
	err := s.api.Delete(ctx, fmt.Sprintf("/posts/%d/pin", id))
	return userFacing(err, failureMessages{
		Forbidden: "Only administrators can unpin posts",
		NotFound:  "Post not found",
	})
}

// Hide takes a post out of the feed without deleting it. Admin only.
func (s *postsServiceImpl) Hide(ctx context.Context, id int64) error {
	err := s.api.Post(ctx, fmt.Sprintf("/posts/%d/hide", id), nil, nil)
	return userFacing(err, failureMessages{
		Forbidden: "Only administrators can hide posts",
		NotFound:  "Post not found",
	})
}

// Restore puts a hidden post back in the feed. Admin only.
func (s *postsServiceImpl) Restore(ctx context.Context, id int64) error {
	err := s.api.Post(ctx, fmt.Sprintf("/posts/%d/restore", id), nil, nil)
	return userFacing(err, failureMessages{
		Forbidden: "Only administrators can restore posts",
		NotFound:  "Post not found",
	})
}

// Comments lists a post's comments, oldest first.
func (s *postsServiceImpl) Comments(ctx context.Context, postID int64) ([]dto.CommentView, error) {
	var comments []models.Comment
	err := s.api.Get(ctx, fmt.Sprintf("/posts/%d/comments", postID), nil, &comments)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			NotFound: "Post not found",
		})
	}
	return dto.ToCommentViews(comments), nil
}

// AddComment attaches a comment to a post.
func (s *postsServiceImpl) AddComment(ctx context.Context, postID int64, content string) (*dto.CommentView, error) {
	var comment models.Comment
	err := s.api.Post(ctx, fmt.Sprintf("/posts/%d/comments", postID), map[string]string{"content": content}, &comment)
	if err != nil {
		return nil, userFacing(err, failureMessages{
			Unauthorized: "You must be logged in to comment",
			NotFound:     "Post not found",
		})
	}

	view := dto.ToCommentView(&comment)
	return &view, nil
}
