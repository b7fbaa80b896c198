package httpapi

import (
	"context"

	"socialorbit/internal/adapters/httpapi/middleware"
	postPort "socialorbit/internal/ports/post"
	userPort "socialorbit/internal/ports/user"

	"github.com/gin-gonic/gin"
)

// Inbound ports: what the controllers need from the use cases.
type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, username, email, password string) (*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, userID, textContent, imageURL string) (*postPort.PostDTO, error)
	GetFeed(ctx context.Context) ([]*postPort.PostDTO, error)
	ToggleLike(ctx context.Context, postID, userID string) (*postPort.PostDTO, error)
	AddComment(ctx context.Context, postID, userID, username, text string) (*postPort.PostDTO, error)
}

// SetupRoutes wires the controllers; use cases and the token key are
// injected from outside.
func SetupRoutes(userUC UserUseCase, postUC PostUseCase, jwtKey []byte) *gin.Engine {
	r := gin.Default()
	uc := NewUserController(userUC)
	pc := NewPostController(postUC)
	auth := middleware.JWTAuthMiddleware(jwtKey)

	api := r.Group("/api")

	api.POST("/auth/signup", uc.RegisterUser)
	api.POST("/auth/login", uc.LoginUser)

	// The feed is public; everything that writes requires a valid token
	api.GET("/posts", pc.GetFeed)
	api.POST("/posts", auth, pc.CreatePost)
	api.PUT("/posts/:id/like", auth, pc.ToggleLike)
	api.POST("/posts/:id/comment", auth, pc.AddComment)

	return r
}
