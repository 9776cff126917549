package services

import (
	"context"
	"fmt"

	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// AssetService maintains the versioned offline shell cache. A fixed manifest
// of assets is installed under one namespace per version string; bumping the
// version starts a fresh namespace and orphans the old one.
type AssetService struct {
	cache    ports.Cache
	origin   ports.AssetOrigin
	version  string
	manifest []string
	logger   *logrus.Logger
	sf       singleflight.Group
}

func NewAssetService(cache ports.Cache, origin ports.AssetOrigin, version string, manifest []string, logger *logrus.Logger) *AssetService {
	return &AssetService{
		cache:    cache,
		origin:   origin,
		version:  version,
		manifest: manifest,
		logger:   logger,
	}
}

func (s *AssetService) key(path string) string {
	return "shell:" + s.version + ":" + path
}

// Install stages every manifest asset from the origin, then populates the
// cache namespace. Staging happens up front so a failing asset aborts the
// install before anything is written; there is no partial shell cache.
func (s *AssetService) Install(ctx context.Context) error {
	staged := make(map[string][]byte, len(s.manifest))
	for _, path := range s.manifest {
		data, err := s.origin.Read(ctx, path)
		if err != nil {
			return fmt.Errorf("install shell cache %q: fetch %s: %w", s.version, path, err)
		}
		staged[path] = data
	}
	for path, data := range staged {
		if err := s.cache.Set(ctx, s.key(path), data, 0); err != nil {
			return fmt.Errorf("install shell cache %q: store %s: %w", s.version, path, err)
		}
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"version": s.version, "assets": len(staged)}).Info("shell cache installed")
	}
	return nil
}

// Serve returns the bytes for a request path, preferring the cached copy and
// falling back to a live origin read. Misses are not written back; the cache
// is only populated at install time. Concurrent origin reads for the same
// path are coalesced.
func (s *AssetService) Serve(ctx context.Context, path string) ([]byte, bool, error) {
	data, ok, err := s.cache.Get(ctx, s.key(path))
	if err != nil && s.logger != nil {
		s.logger.WithError(err).WithField("path", path).Warn("shell cache lookup failed")
	}
	if ok {
		return data, true, nil
	}
	v, err, _ := s.sf.Do(path, func() (any, error) {
		return s.origin.Read(ctx, path)
	})
	if err != nil {
		return nil, false, err
	}
	return v.([]byte), false, nil
}

func (s *AssetService) Manifest() []string {
	out := make([]string, len(s.manifest))
	copy(out, s.manifest)
	return out
}

func (s *AssetService) Version() string { return s.version }
