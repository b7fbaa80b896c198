package userapp

import (
	"context"
	"errors"
	"time"

	userEntity "socialorbit/internal/core/user"
	userPort "socialorbit/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// UserService handles signup and login and issues the tokens the rest of
// the API trusts for identity.
type UserService struct {
	UserRepository userPort.UserRepository
	jwtKey         []byte
	Logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, jwtKey []byte, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		jwtKey:         jwtKey,
		Logger:         logger,
	}
}

// LoginUser checks credentials and issues a signed JWT.
func (s *UserService) LoginUser(ctx context.Context, username string, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByUsername(username)
	if err != nil {
		s.Logger.Info("login failed, user not found", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.Logger.Info("login failed, wrong password", zap.String("username", username))
		return nil, errors.New("invalid credentials")
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		s.Logger.Error("could not generate token", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// generateJWT signs a token carrying the user id and username. The username
// claim is what makes comment author names server-authoritative.
func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &userPort.Claims{
		Username: user.Username,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID.String(),
			Issuer:    "socialorbit",
			ExpiresAt: expiresAt.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// RegisterUser creates a new account with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByUsernameOrEmail(username, email)
	if err == nil && existing != nil {
		return nil, userEntity.ErrAlreadyTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Username: username,
		Email:    email,
		Password: string(hashed),
	}

	u, err := s.UserRepository.Create(user)
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Username: u.Username,
	}, nil
}
