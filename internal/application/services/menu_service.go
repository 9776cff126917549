package services

import (
	"context"
	"sync"
	"time"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// MenuConfig carries the tunables of the menu store.
type MenuConfig struct {
	// SkeletonCount is how many placeholder cards the UI shows while a load
	// is pending.
	SkeletonCount int
	// ReloadQuiet is the debounce quiet period for scheduled reloads.
	ReloadQuiet time.Duration
	// ReloadTimeout bounds a single source fetch.
	ReloadTimeout time.Duration
}

// MenuService holds the most recently loaded item sequence and serves the
// pure filter/projection path over it. The store is replaced wholesale on
// each successful load and emptied on failure; nothing is persisted.
type MenuService struct {
	source    ports.MenuSource
	formatter menu.PriceFormatter
	cfg       MenuConfig
	debounce  *Debouncer
	logger    *logrus.Logger

	mu       sync.RWMutex
	items    []menu.Item
	state    menu.LoadState
	loadedAt time.Time
}

func NewMenuService(source ports.MenuSource, formatter menu.PriceFormatter, cfg MenuConfig, logger *logrus.Logger) *MenuService {
	if cfg.SkeletonCount <= 0 {
		cfg.SkeletonCount = 6
	}
	if cfg.ReloadTimeout <= 0 {
		cfg.ReloadTimeout = 10 * time.Second
	}
	return &MenuService{
		source:    source,
		formatter: formatter,
		cfg:       cfg,
		debounce:  NewDebouncer(cfg.ReloadQuiet),
		logger:    logger,
		state:     menu.StateEmpty,
	}
}

// Reload fetches the menu document and replaces the store. On any fetch or
// parse failure the store is emptied, never left with partial state.
func (s *MenuService) Reload(ctx context.Context) error {
	s.mu.Lock()
	s.state = menu.StateLoading
	s.mu.Unlock()

	items, err := s.source.Fetch(ctx)
	if err != nil {
		s.mu.Lock()
		s.items = nil
		s.state = menu.StateFailed
		s.mu.Unlock()
		if s.logger != nil {
			s.logger.WithError(err).WithField("source", s.source.Name()).Error("menu load failed")
		}
		return &menu.LoadError{Source: s.source.Name(), Err: err}
	}

	s.mu.Lock()
	s.items = items
	s.state = menu.StateReady
	s.loadedAt = time.Now()
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"source": s.source.Name(), "items": len(items)}).Info("menu loaded")
	}
	return nil
}

// ScheduleReload requests a reload after the quiet period. Bursts of requests
// collapse into a single reload; only the last pending request fires.
func (s *MenuService) ScheduleReload() {
	s.debounce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ReloadTimeout)
		defer cancel()
		_ = s.Reload(ctx)
	})
}

// Query runs the pure filter/projection path over the current store.
func (s *MenuService) Query(category, search string) []menu.Card {
	if category == "" {
		category = menu.CategoryAll
	}
	s.mu.RLock()
	items := s.items
	s.mu.RUnlock()
	return menu.Cards(menu.Filter(items, category, search), s.formatter)
}

// Categories returns the selectable categories with the sentinel first.
func (s *MenuService) Categories() []string {
	s.mu.RLock()
	items := s.items
	s.mu.RUnlock()
	return append([]string{menu.CategoryAll}, menu.Categories(items)...)
}

// Items returns a snapshot of the loaded sequence.
func (s *MenuService) Items() []menu.Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]menu.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Status reports the store lifecycle for the status endpoint. While loading
// it carries the configured skeleton count; after a failure it carries the
// fixed user-facing message.
func (s *MenuService) Status() menu.LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := menu.LoadStatus{State: s.state, ItemCount: len(s.items), LoadedAt: s.loadedAt}
	switch s.state {
	case menu.StateLoading:
		st.Skeletons = s.cfg.SkeletonCount
	case menu.StateFailed:
		st.Message = menu.LoadFailedMessage
	}
	return st
}
