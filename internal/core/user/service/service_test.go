package userapp

import (
	"context"
	"errors"
	"testing"

	userEntity "socialorbit/internal/core/user"
	userPort "socialorbit/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var (
	testKey         = []byte("test-secret")
	errUserNotFound = errors.New("user not found")
)

type fakeUserRepo struct {
	users map[string]*userEntity.User // by username
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*userEntity.User)}
}

func (r *fakeUserRepo) Create(u *userEntity.User) (*userEntity.User, error) {
	r.users[u.Username] = u
	return u, nil
}

func (r *fakeUserRepo) FindByUsernameOrEmail(username, email string) (*userEntity.User, error) {
	for _, u := range r.users {
		if u.Username == username || u.Email == email {
			return u, nil
		}
	}
	return nil, errUserNotFound
}

func (r *fakeUserRepo) FindByUsername(username string) (*userEntity.User, error) {
	if u, ok := r.users[username]; ok {
		return u, nil
	}
	return nil, errUserNotFound
}


func TestRegisterUser_HashesPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testKey, zap.NewNop())

	dto, err := svc.RegisterUser(context.Background(), "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Username)
	assert.NotEmpty(t, dto.ID)

	stored := repo.users["alice"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("hunter22")))
}

func TestRegisterUser_DuplicateRejected(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testKey, zap.NewNop())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.RegisterUser(ctx, "alice", "other@example.com", "hunter22")
	assert.ErrorIs(t, err, userEntity.ErrAlreadyTaken)

	_, err = svc.RegisterUser(ctx, "bob", "alice@example.com", "hunter22")
	assert.ErrorIs(t, err, userEntity.ErrAlreadyTaken)
}

func TestLoginUser_IssuesTokenWithIdentityClaims(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testKey, zap.NewNop())
	ctx := context.Background()

	dto, err := svc.RegisterUser(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	res, err := svc.LoginUser(ctx, "alice", "hunter22")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)

	claims := &userPort.Claims{}
	token, err := jwt.ParseWithClaims(res.Token, claims, func(t *jwt.Token) (interface{}, error) {
		return testKey, nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, dto.ID, claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestLoginUser_BadCredentials(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewUserService(repo, testKey, zap.NewNop())
	ctx := context.Background()

	_, err := svc.RegisterUser(ctx, "alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.LoginUser(ctx, "alice", "wrong")
	assert.EqualError(t, err, "invalid credentials")

	_, err = svc.LoginUser(ctx, "nobody", "hunter22")
	assert.EqualError(t, err, "invalid credentials")
}
