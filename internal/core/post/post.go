package post

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
	"socialorbit/internal/core/user"
)

// Errors returned by the post store. Anything else coming out of an
// adapter is a storage failure.
var (
	ErrEmptyPost    = errors.New("post must have text or an image")
	ErrEmptyComment = errors.New("comment text is required")
	ErrNotFound     = errors.New("post not found")
)

type Post struct {
	ID          uuid.UUID `gorm:"primary_key;type:char(36)"`
	UserID      uuid.UUID `gorm:"type:char(36);not null;index"`
	User        user.User `gorm:"foreignkey:UserID"`
	TextContent string    `gorm:"type:text"`
	ImageURL    string    `gorm:"type:varchar(2048)"`
	Likes       []Like    `gorm:"foreignkey:PostID"`
	Comments    []Comment `gorm:"foreignkey:PostID"`
	// Seq records insertion order; the feed tie-breaks equal timestamps on it
	Seq       uint64    `gorm:"autoIncrement;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Like is one user's like on one post. The composite unique index makes a
// duplicate like from the same user impossible.
type Like struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_post_user"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;uniqueIndex:uniq_post_user"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Comment is append-only and owned by its post. Username is a snapshot of
// the commenter's name at posting time, deliberately not a live reference.
type Comment struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	PostID    uuid.UUID `gorm:"type:char(36);not null;index"`
	UserID    uuid.UUID `gorm:"type:char(36);not null"`
	Username  string    `gorm:"not null"`
	Text      string    `gorm:"type:text;not null"`
	Seq       uint64    `gorm:"autoIncrement;uniqueIndex"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// HasLike reports whether userID is in the post's like set.
func (p *Post) HasLike(userID uuid.UUID) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}
