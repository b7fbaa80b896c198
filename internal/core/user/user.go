package user

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"
)

// ErrAlreadyTaken is returned when a signup collides with an existing
// username or email.
var ErrAlreadyTaken = errors.New("username or email already taken")

type User struct {
	ID        uuid.UUID `gorm:"primary_key;type:char(36)"`
	Username  string    `gorm:"unique;not null"`
	Email     string    `gorm:"unique;not null"`
	Password  string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}
