package helpers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// BearerToken extracts the bearer token from the Authorization header.
func BearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "malformed authorization header")
	}
	return strings.TrimPrefix(header, prefix), nil
}
