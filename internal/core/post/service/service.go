package postapp

import (
	"context"
	"fmt"
	"time"

	postEntity "socialorbit/internal/core/post"
	postPort "socialorbit/internal/ports/post"
	userPort "socialorbit/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// PostService owns the post aggregate: creation, the feed, like toggling and
// comment appends. It holds no state of its own.
type PostService struct {
	PostRepository postPort.PostRepository
	FeedCache      postPort.FeedCache
	Logger         *zap.Logger
}

func NewPostService(postRepo postPort.PostRepository, feedCache postPort.FeedCache, logger *zap.Logger) *PostService {
	return &PostService{
		PostRepository: postRepo,
		FeedCache:      feedCache,
		Logger:         logger,
	}
}

// CreatePost persists a new post. A post needs text or an image; both may be
// present, neither is rejected before any write happens.
func (s *PostService) CreatePost(ctx context.Context, userID, textContent, imageURL string) (*postPort.PostDTO, error) {
	if textContent == "" && imageURL == "" {
		return nil, postEntity.ErrEmptyPost
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	p := &postEntity.Post{
		ID:          uuid.Must(uuid.NewV4()),
		UserID:      uid,
		TextContent: textContent,
		ImageURL:    imageURL,
	}

	created, err := s.PostRepository.Create(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	// Reload so the author relation is populated before returning
	full, err := s.PostRepository.FindByID(ctx, created.ID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to load created post: %w", err)
	}

	s.invalidateFeed(ctx)
	s.Logger.Info("post created", zap.String("postID", full.ID.String()), zap.String("userID", userID))
	return toPostDTO(full), nil
}

// GetFeed returns every post, newest first. Reads go through the cache;
// a miss or a cache error falls back to the database.
func (s *PostService) GetFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	cached, err := s.FeedCache.GetFeed(ctx)
	if err != nil {
		s.Logger.Warn("feed cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}
	return s.RefreshFeed(ctx)
}

// RefreshFeed rebuilds the cached feed from the database and returns it.
func (s *PostService) RefreshFeed(ctx context.Context) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toPostDTO(p))
	}

	if err := s.FeedCache.SetFeed(ctx, dtos); err != nil {
		s.Logger.Warn("feed cache write failed", zap.Error(err))
	}
	return dtos, nil
}

// ToggleLike flips the caller's membership in the post's like set: present
// removes, absent adds. The same endpoint serves like and unlike.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) (*postPort.PostDTO, error) {
	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if p.HasLike(uid) {
		err = s.PostRepository.RemoveLike(ctx, postID, userID)
	} else {
		err = s.PostRepository.AddLike(ctx, postID, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to toggle like: %w", err)
	}

	updated, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return toPostDTO(updated), nil
}

// AddComment appends a comment to the post. Username is the authoritative
// display name at call time and is stored as-is.
func (s *PostService) AddComment(ctx context.Context, postID, userID, username, text string) (*postPort.PostDTO, error) {
	if text == "" {
		return nil, postEntity.ErrEmptyComment
	}

	uid, err := uuid.FromString(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid userID: %w", err)
	}

	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	c := &postEntity.Comment{
		ID:       uuid.Must(uuid.NewV4()),
		PostID:   p.ID,
		UserID:   uid,
		Username: username,
		Text:     text,
	}

	if err := s.PostRepository.AddComment(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}

	updated, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	s.invalidateFeed(ctx)
	return toPostDTO(updated), nil
}

func (s *PostService) invalidateFeed(ctx context.Context) {
	if err := s.FeedCache.Invalidate(ctx); err != nil {
		s.Logger.Warn("feed cache invalidation failed", zap.Error(err))
	}
}

func toPostDTO(p *postEntity.Post) *postPort.PostDTO {
	likes := make([]string, 0, len(p.Likes))
	for _, l := range p.Likes {
		likes = append(likes, l.UserID.String())
	}

	comments := make([]*postPort.CommentDTO, 0, len(p.Comments))
	for _, c := range p.Comments {
		comments = append(comments, &postPort.CommentDTO{
			ID:        c.ID.String(),
			UserID:    c.UserID.String(),
			Username:  c.Username,
			Text:      c.Text,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}

	return &postPort.PostDTO{
		ID:          p.ID.String(),
		UserID:      p.UserID.String(),
		TextContent: p.TextContent,
		ImageURL:    p.ImageURL,
		Likes:       likes,
		Comments:    comments,
		User: &userPort.UserDTO{
			ID:       p.User.ID.String(),
			Username: p.User.Username,
		},
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}
