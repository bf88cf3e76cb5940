package dto

import (
	"sort"
	"time"

	"github.com/yigit/alumnisphere/internal/app/models"
)

// PostMediaView is an attachment in display order.
type PostMediaView struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	MediaType string `json:"mediaType"`
	Position  int    `json:"position"`
}

// PostView is the camelCase post shape the UI layer renders.
type PostView struct {
	ID           int64           `json:"id"`
	Content      string          `json:"content"`
	AuthorID     int64           `json:"authorId"`
	AuthorName   string          `json:"authorName,omitempty"`
	AuthorAvatar string          `json:"authorAvatar,omitempty"`
	Status       string          `json:"status"`
	IsPinned     bool            `json:"isPinned"`
	Tag          string          `json:"tag,omitempty"`
	LikeCount    int             `json:"likeCount"`
	CommentCount int             `json:"commentCount"`
	IsLiked      bool            `json:"isLiked"`
	IsAuthor     bool            `json:"isAuthor"`
	Media        []PostMediaView `json:"media,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// CommentView is the camelCase comment shape.
type CommentView struct {
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	AuthorID   int64     `json:"authorId"`
	AuthorName string    `json:"authorName,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToPostView maps a wire post to its view shape. Attachments come out
// sorted by their wire position so the author's ordering survives.
func ToPostView(post *models.Post, currentUserID int64) PostView {
	view := PostView{
		ID:           post.ID,
		Content:      post.Content,
		AuthorID:     post.AuthorID,
		Status:       string(post.Status),
		IsPinned:     post.IsPinned,
		LikeCount:    post.LikeCount,
		CommentCount: post.CommentCount,
		IsLiked:      post.IsLiked,
		IsAuthor:     post.AuthorID == currentUserID,
		CreatedAt:    post.CreatedAt,
	}

	if post.Tag != nil {
		view.Tag = string(*post.Tag)
	}

	if post.Author != nil {
		view.AuthorName = post.Author.FullName()
		view.AuthorAvatar = post.Author.AvatarURL
	}

	if len(post.Media) > 0 {
		media := make([]PostMediaView, 0, len(post.Media))
		for _, m := range post.Media {
			media = append(media, PostMediaView{
				ID:        m.ID,
				URL:       m.URL,
				MediaType: string(m.MediaType),
				Position:  m.Position,
			})
		}
		sort.SliceStable(media, func(i, j int) bool { return media[i].Position < media[j].Position })
		view.Media = media
	}

	return view
}

// ToPostViews maps a page of wire posts, preserving order.
func ToPostViews(posts []models.Post, currentUserID int64) []PostView {
	views := make([]PostView, 0, len(posts))
	for i := range posts {
		views = append(views, ToPostView(&posts[i], currentUserID))
	}
	return views
}

// ToCommentView maps a wire comment to its view shape.
func ToCommentView(comment *models.Comment) CommentView {
	view := CommentView{
		ID:        comment.ID,
		PostID:    comment.PostID,
		AuthorID:  comment.AuthorID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}

	if comment.Author != nil {
		view.AuthorName = comment.Author.FullName()
	}

	return view
}

// ToCommentViews maps a list of wire comments, preserving order.
func ToCommentViews(comments []models.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for i := range comments {
		views = append(views, ToCommentView(&comments[i]))
	}
	return views
}
