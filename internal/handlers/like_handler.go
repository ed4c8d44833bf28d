package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/services"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	postService *services.PostService
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(postService *services.PostService) *LikeHandler {
	return &LikeHandler{postService: postService}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/like", h.LikePost)
}

// LikePost records a like on a post. Liking the same post twice conflicts.
func (h *LikeHandler) LikePost(c echo.Context) error {
	postID := c.Param("post_id")

	if err := h.postService.Like(c.Request().Context(), callerEmail(c), postID); err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusCreated)
}
