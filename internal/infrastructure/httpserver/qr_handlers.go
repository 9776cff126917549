package httpserver

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/antonistheo/qrmenu/internal/core/domain/qr"
	"github.com/labstack/echo/v4"
)

// generateQR renders a code for the supplied URL, defaulting to the canonical
// public menu URL, and returns the PNG inline. The rendered code replaces any
// previous one.
func (s *Server) generateQR(c echo.Context) error {
	text := c.QueryParam("url")
	if text == "" {
		text = s.qrSvc.Link()
	}
	size := 0
	if raw := c.QueryParam("size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			size = v
		}
	}

	code, err := s.qrSvc.Generate(text, size)
	if err != nil {
		if errors.Is(err, qr.ErrEmptyInput) {
			return echo.NewHTTPError(http.StatusBadRequest, "Paste your live URL first.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Blob(http.StatusOK, "image/png", code.PNG)
}

// downloadQR exports the last rendered code as a named PNG attachment.
func (s *Server) downloadQR(c echo.Context) error {
	filename, png, err := s.qrSvc.Download()
	if err != nil {
		if errors.Is(err, qr.ErrNoCode) {
			return echo.NewHTTPError(http.StatusBadRequest, "Generate the QR first.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "image/png", png)
}

// qrLink returns the canonical public menu URL for the copy affordance.
func (s *Server) qrLink(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{"url": s.qrSvc.Link()})
}
