package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/services"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	postService *services.PostService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(postService *services.PostService) *CommentHandler {
	return &CommentHandler{postService: postService}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
}

// CreateComment adds a comment to a post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	postID := c.Param("post_id")

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.postService.AddComment(c.Request().Context(), callerEmail(c), postID, req.Content); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusCreated)
}
