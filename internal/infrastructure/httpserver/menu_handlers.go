package httpserver

import (
	"net/http"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/labstack/echo/v4"
)

// getMenu returns the filtered card projection for the active category and
// search text. While a load is pending it reports the skeleton placeholder
// state instead of stale content; after a failed load it reports the fixed
// load-failure message and no cards.
func (s *Server) getMenu(c echo.Context) error {
	category := c.QueryParam("category")
	if category == "" {
		category = menu.CategoryAll
	}
	search := c.QueryParam("q")

	status := s.menuSvc.Status()
	switch status.State {
	case menu.StateLoading:
		return c.JSON(http.StatusOK, map[string]interface{}{
			"state":     menu.StateLoading,
			"skeletons": status.Skeletons,
		})
	case menu.StateFailed:
		return c.JSON(http.StatusServiceUnavailable, map[string]interface{}{
			"state":   menu.StateFailed,
			"message": status.Message,
		})
	}

	cards := s.menuSvc.Query(category, search)
	resp := map[string]interface{}{
		"state": menu.StateReady,
		"cards": cards,
		"total": len(cards),
	}
	if len(cards) == 0 {
		resp["placeholder"] = menu.NoItemsPlaceholder
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) getCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"categories": s.menuSvc.Categories(),
	})
}

func (s *Server) getMenuStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, s.menuSvc.Status())
}

// reloadMenu schedules a debounced reload; bursts collapse into one fetch.
func (s *Server) reloadMenu(c echo.Context) error {
	s.menuSvc.ScheduleReload()
	menuReloadsTotal.WithLabelValues("scheduled").Inc()
	return c.JSON(http.StatusAccepted, map[string]interface{}{"status": "scheduled"})
}
