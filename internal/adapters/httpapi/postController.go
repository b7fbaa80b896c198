package httpapi

import (
	"errors"
	"net/http"

	"socialorbit/internal/core/post"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		TextContent string `json:"textContent"`
		ImageURL    string `json:"imageUrl"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.CreatePost(c.Request.Context(), userID.(string), req.TextContent, req.ImageURL)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *PostController) GetFeed(c *gin.Context) {
	posts, err := ctl.pc.GetFeed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) ToggleLike(c *gin.Context) {
	postID := c.Param("id")
	if _, err := uuid.FromString(postID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.ToggleLike(c.Request.Context(), postID, userID.(string))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *PostController) AddComment(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	postID := c.Param("id")
	if _, err := uuid.FromString(postID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}

	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return
	}

	res, err := ctl.pc.AddComment(c.Request.Context(), postID, userID.(string), username.(string), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// respondError maps store errors to status codes. Anything unrecognized is a
// storage failure and must not leak internals.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": post.ErrNotFound.Error()})
	case errors.Is(err, post.ErrEmptyPost):
		c.JSON(http.StatusBadRequest, gin.H{"error": post.ErrEmptyPost.Error()})
	case errors.Is(err, post.ErrEmptyComment):
		c.JSON(http.StatusBadRequest, gin.H{"error": post.ErrEmptyComment.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
