package post

import (
	"context"

	"socialorbit/internal/core/post"
	userPort "socialorbit/internal/ports/user"
)

// PostRepository is the outbound port for the post store. FindByID and
// FindAll return posts with author, likes and comments loaded. AddLike,
// RemoveLike and AddComment are each atomic against their one post.
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id string) (*post.Post, error)
	FindAll(ctx context.Context) ([]*post.Post, error)
	AddLike(ctx context.Context, postID, userID string) error
	RemoveLike(ctx context.Context, postID, userID string) error
	AddComment(ctx context.Context, comment *post.Comment) error
}

// FeedCache caches the rendered feed. GetFeed returns (nil, nil) on a miss.
type FeedCache interface {
	GetFeed(ctx context.Context) ([]*PostDTO, error)
	SetFeed(ctx context.Context, posts []*PostDTO) error
	Invalidate(ctx context.Context) error
}

// DTOs mirror the wire shape of a post document: likes as user ids, comments
// in append order, the author narrowed to {id, username}.
type PostDTO struct {
	ID          string            `json:"id"`
	UserID      string            `json:"userId"`
	TextContent string            `json:"textContent,omitempty"`
	ImageURL    string            `json:"imageUrl,omitempty"`
	Likes       []string          `json:"likes"`
	Comments    []*CommentDTO     `json:"comments"`
	User        *userPort.UserDTO `json:"user,omitempty"`
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type CommentDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	Username  string `json:"username"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt"`
}
