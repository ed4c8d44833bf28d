package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lksmueller/fankurve/internal/apperrors"
)

// httpError maps a service error onto the HTTP status for its kind.
// Anything outside the taxonomy is an internal error.
func httpError(err error) *echo.HTTPError {
	switch apperrors.KindOf(err) {
	case apperrors.Validation:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case apperrors.Conflict:
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case apperrors.Authorization:
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case apperrors.NotFound:
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// callerEmail returns the authenticated caller's email stored by the JWT
// middleware.
func callerEmail(c echo.Context) string {
	email, _ := c.Get("userEmail").(string)
	return email
}
