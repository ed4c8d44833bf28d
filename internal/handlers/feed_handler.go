package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/services"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct {
	feedService *services.FeedService
}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler(feedService *services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
}

// GetFeed returns the personalized feed for the current user. Journalists
// select a view via the mode and team query parameters; fans and clubs
// ignore them.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	opts := models.FeedOptions{
		Mode: models.FeedMode(c.QueryParam("mode")),
		Team: c.QueryParam("team"),
	}

	posts, err := h.feedService.ComputeFeed(c.Request().Context(), callerEmail(c), opts)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"posts": posts})
}
