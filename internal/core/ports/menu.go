package ports

import (
	"context"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
)

// MenuSource fetches the menu items from wherever the document lives. Fetches
// must bypass intermediary caches so a reload always observes the current
// document.
type MenuSource interface {
	// Name identifies the source in errors and logs.
	Name() string
	Fetch(ctx context.Context) ([]menu.Item, error)
}

// MenuService owns the in-memory menu store and its projections.
type MenuService interface {
	// Reload replaces the store wholesale from the source. On failure the
	// store is left empty and a *menu.LoadError is returned.
	Reload(ctx context.Context) error
	// ScheduleReload requests a reload after a quiet period; bursts of
	// requests collapse into a single reload.
	ScheduleReload()
	// Query returns the display cards for the active category and search
	// text, in original item order.
	Query(category, search string) []menu.Card
	// Categories returns the selectable categories, the "All" sentinel first.
	Categories() []string
	Items() []menu.Item
	Status() menu.LoadStatus
}
