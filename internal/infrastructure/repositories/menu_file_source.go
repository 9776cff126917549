package repositories

import (
	"context"
	"fmt"
	"os"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/antonistheo/qrmenu/internal/core/ports"
)

// FileMenuSource reads the menu document from local disk. Used when the
// service is deployed next to its static files.
type FileMenuSource struct {
	path string
}

func NewFileMenuSource(path string) ports.MenuSource {
	return &FileMenuSource{path: path}
}

func (s *FileMenuSource) Name() string { return s.path }

func (s *FileMenuSource) Fetch(ctx context.Context) ([]menu.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read menu document: %w", err)
	}
	return menu.ParseDocument(data)
}
