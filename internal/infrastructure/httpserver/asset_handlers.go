package httpserver

import (
	"mime"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// serveAsset answers shell asset requests: cached copy first, live origin
// read otherwise.
func (s *Server) serveAsset(c echo.Context) error {
	path := c.Request().URL.Path
	data, cached, err := s.assetSvc.Serve(c.Request().Context(), path)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "asset not found")
	}

	result := "miss"
	if cached {
		result = "hit"
	}
	shellCacheRequests.WithLabelValues(result).Inc()

	ctype := mime.TypeByExtension(filepath.Ext(path))
	if ctype == "" {
		ctype = http.DetectContentType(data)
	}
	return c.Blob(http.StatusOK, ctype, data)
}

// installAssets populates the shell cache namespace for the configured
// version. Any asset failing to load fails the whole install.
func (s *Server) installAssets(c echo.Context) error {
	if err := s.assetSvc.Install(c.Request().Context()); err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	return c.NoContent(http.StatusNoContent)
}
