package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/services"
)

// UserHandler handles directory and admin HTTP requests
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// RegisterUserRoutes registers directory and admin routes
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/clubs", h.ListClubs)
	g.GET("/admin/users", h.ListUsers)
	g.GET("/admin/export", h.ExportData)
}

// ListClubs returns all registered club names
func (h *UserHandler) ListClubs(c echo.Context) error {
	clubs, err := h.userService.ListClubs(c.Request().Context(), callerEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, echo.Map{"clubs": clubs})
}

// ListUsers returns every registered user (admin only)
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.ListUsers(c.Request().Context(), callerEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// ExportData returns the full graph dump (admin only)
func (h *UserHandler) ExportData(c echo.Context) error {
	export, err := h.userService.ExportData(c.Request().Context(), callerEmail(c))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, export)
}
