package repositories

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// DirAssetOrigin serves shell assets from a local directory. The document
// root path maps to index.html, matching how the static site is laid out.
type DirAssetOrigin struct {
	root string
}

func NewDirAssetOrigin(root string) *DirAssetOrigin {
	return &DirAssetOrigin{root: root}
}

func (o *DirAssetOrigin) Read(ctx context.Context, reqPath string) ([]byte, error) {
	rel := path.Clean("/" + reqPath)
	if rel == "/" {
		rel = "/index.html"
	}
	if strings.Contains(rel, "..") {
		return nil, fmt.Errorf("invalid asset path %q", reqPath)
	}
	data, err := os.ReadFile(filepath.Join(o.root, filepath.FromSlash(rel)))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", rel, err)
	}
	return data, nil
}
