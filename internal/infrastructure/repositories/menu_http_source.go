package repositories

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// maxDocumentSize bounds how much of a menu document is read. Real menus are
// a few kilobytes; anything bigger is a misconfigured source.
const maxDocumentSize = 4 << 20

// HTTPMenuSource fetches the menu document over HTTP. Every fetch asks
// intermediaries not to serve a stored copy so a reload observes the current
// document.
type HTTPMenuSource struct {
	url    string
	client *http.Client
	logger *logrus.Logger
}

func NewHTTPMenuSource(url string, timeout time.Duration, logger *logrus.Logger) ports.MenuSource {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPMenuSource{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (s *HTTPMenuSource) Name() string { return s.url }

func (s *HTTPMenuSource) Fetch(ctx context.Context) ([]menu.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build menu request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch menu document: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch menu document: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
	if err != nil {
		return nil, fmt.Errorf("read menu document: %w", err)
	}

	items, err := menu.ParseDocument(body)
	if err != nil {
		return nil, err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"url": s.url, "items": len(items)}).Debug("menu document fetched")
	}
	return items, nil
}
