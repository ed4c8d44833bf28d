package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/models"
	"github.com/lksmueller/fankurve/internal/services"
)

// FriendshipHandler handles HTTP requests related to friendships
type FriendshipHandler struct {
	friendshipService *services.FriendshipService
}

// NewFriendshipHandler creates a new FriendshipHandler
func NewFriendshipHandler(friendshipService *services.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendshipService: friendshipService}
}

// RegisterFriendshipRoutes registers friendship-related routes
func (h *FriendshipHandler) RegisterFriendshipRoutes(g *echo.Group) {
	g.POST("/friends/request", h.SendFriendRequest)
	g.GET("/friends/requests/pending", h.GetPendingFriendRequests)
	g.POST("/friends/request/resolve", h.ResolveFriendRequest)
}

// SendFriendRequest handles sending a friend request to another fan
func (h *FriendshipHandler) SendFriendRequest(c echo.Context) error {
	var req models.SendFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.friendshipService.SendRequest(c.Request().Context(), callerEmail(c), req.Target); err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, models.FriendRequest{
		Requester: callerEmail(c),
		Target:    req.Target,
	})
}

// GetPendingFriendRequests retrieves pending friend requests for the
// authenticated fan
func (h *FriendshipHandler) GetPendingFriendRequests(c echo.Context) error {
	requests, err := h.friendshipService.ListIncoming(c.Request().Context(), callerEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, requests)
}

// ResolveFriendRequest accepts or rejects a pending friend request
func (h *FriendshipHandler) ResolveFriendRequest(c echo.Context) error {
	var req models.ResolveFriendRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.friendshipService.Resolve(c.Request().Context(), req.Requester, callerEmail(c), models.Decision(req.Decision))
	if err != nil {
		return httpError(err)
	}

	return c.NoContent(http.StatusNoContent)
}
