package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/services"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postService *services.PostService
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/mine", h.GetOwnPosts)
	g.PUT("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost publishes a new post
func (h *PostHandler) CreatePost(c echo.Context) error {
	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.postService.Publish(c.Request().Context(), callerEmail(c), req.Content, req.ClubTag)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetOwnPosts retrieves the caller's own posts with engagement data
func (h *PostHandler) GetOwnPosts(c echo.Context) error {
	posts, err := h.postService.ListOwn(c.Request().Context(), callerEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, posts)
}

// UpdatePost edits the content of an own post
func (h *PostHandler) UpdatePost(c echo.Context) error {
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postService.EditOwn(c.Request().Context(), callerEmail(c), postID, req.Content); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeletePost deletes an own post together with its comments and likes
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID := c.Param("id")

	if err := h.postService.DeleteOwn(c.Request().Context(), callerEmail(c), postID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
