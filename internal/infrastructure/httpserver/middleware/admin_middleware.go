package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/antonistheo/qrmenu/internal/infrastructure/httpserver/helpers"
)

type AdminMiddleware struct {
	authService ports.AdminAuthService
	logger      *logrus.Logger
}

func NewAdminMiddleware(authService ports.AdminAuthService, logger *logrus.Logger) *AdminMiddleware {
	return &AdminMiddleware{authService: authService, logger: logger}
}

// RequireAdmin creates middleware that validates the operator token on the
// reload and install endpoints.
func (m *AdminMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := helpers.BearerToken(c)
			if err != nil {
				return err
			}

			if err := m.authService.ValidateToken(c.Request().Context(), token); err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("admin token validation failed")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			return next(c)
		}
	}
}
