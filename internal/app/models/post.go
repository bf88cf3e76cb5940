package models

import "time"

// Post mirrors the platform's feed post resource as the API sends it.
type Post struct {
	ID           int64       `json:"id"`
	Content      string      `json:"content"`
	AuthorID     int64       `json:"author_id"`
	Author       *User       `json:"author,omitempty"`
	UniversityID int64       `json:"university_id"`
	Status       PostStatus  `json:"status"`
	IsPinned     bool        `json:"is_pinned"`
	Tag          *PostTag    `json:"tag,omitempty"`
	LikeCount    int         `json:"like_count"`
	CommentCount int         `json:"comment_count"`
	IsLiked      bool        `json:"is_liked"` // whether the requesting user liked it
	Media        []PostMedia `json:"media,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// PostMedia is an ordered media attachment on a post.
type PostMedia struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	URL       string    `json:"url"`
	MediaType MediaType `json:"media_type"`
	Position  int       `json:"position"` // 0-based order within the post
}

// Comment is a comment on a post.
type Comment struct {
	ID        int64     `json:"id"`
	PostID    int64     `json:"post_id"`
	AuthorID  int64     `json:"author_id"`
	Author    *User     `json:"author,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// CreatePostRequest is the payload for creating a post. Media files are
// uploaded separately after the post exists.
type CreatePostRequest struct {
	Content string   `json:"content"`
	Tag     *PostTag `json:"tag,omitempty"`
}

// UpdatePostRequest is the payload for editing a post's content or tag.
type UpdatePostRequest struct {
	Content *string  `json:"content,omitempty"`
	Tag     *PostTag `json:"tag,omitempty"`
}
