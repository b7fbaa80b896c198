package database

import (
	"context"
	"errors"
	"time"

	"socialorbit/internal/config"
	"socialorbit/internal/core/post"

	"github.com/gofrs/uuid"
	"gorm.io/gorm"
)

// PostRepositoryDatabase implements PostRepository on MySQL via GORM.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id string) (*post.Post, error) {
	var p post.Post
	err := withRelations(config.DB.WithContext(ctx)).First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, post.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindAll returns every post, newest first; equal timestamps keep their
// insertion order, as a stable sort would.
func (repo *PostRepositoryDatabase) FindAll(ctx context.Context) ([]*post.Post, error) {
	var posts []*post.Post
	err := withRelations(config.DB.WithContext(ctx)).
		Order("created_at DESC, seq ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// AddLike inserts the like row and touches the post in one transaction. The
// (post_id, user_id) unique index rejects a duplicate from a racing toggle.
func (repo *PostRepositoryDatabase) AddLike(ctx context.Context, postID, userID string) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		like := &post.Like{
			ID:     uuid.Must(uuid.NewV4()),
			PostID: uuid.FromStringOrNil(postID),
			UserID: uuid.FromStringOrNil(userID),
		}
		if err := tx.Create(like).Error; err != nil {
			return err
		}
		return touchPost(tx, postID)
	})
}

func (repo *PostRepositoryDatabase) RemoveLike(ctx context.Context, postID, userID string) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&post.Like{}).Error; err != nil {
			return err
		}
		return touchPost(tx, postID)
	})
}

func (repo *PostRepositoryDatabase) AddComment(ctx context.Context, c *post.Comment) error {
	return config.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		return touchPost(tx, c.PostID.String())
	})
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Likes").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.seq ASC")
		})
}

func touchPost(tx *gorm.DB, postID string) error {
	return tx.Model(&post.Post{}).
		Where("id = ?", postID).
		Update("updated_at", time.Now()).Error
}
