package user

import (
	"socialorbit/internal/core/user"

	"github.com/dgrijalva/jwt-go"
)

// UserRepository is the outbound port for storing and retrieving users.
type UserRepository interface {
	Create(user *user.User) (*user.User, error)
	FindByUsernameOrEmail(username, email string) (*user.User, error)
	FindByUsername(username string) (*user.User, error)
}

// Claims are what a signed token carries. Username rides along so protected
// handlers get the authoritative display name without a user lookup.
type Claims struct {
	Username string `json:"username"`
	jwt.StandardClaims
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// UserDTO is the minimal author projection exposed to clients; the full user
// record (email, password hash) never leaves the store.
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
