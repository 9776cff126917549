package ports

import "context"

// AssetOrigin reads shell asset bytes from their authoritative location.
type AssetOrigin interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// AssetService maintains the versioned offline shell cache: a fixed manifest
// of assets installed under one cache namespace per version string. Bumping
// the version creates a new namespace; stale ones are simply orphaned.
type AssetService interface {
	// Install stages every manifest asset from the origin and populates the
	// cache namespace. Any asset failing to load fails the whole install with
	// no partial population.
	Install(ctx context.Context) error
	// Serve returns the asset bytes for a request path, preferring the cache
	// namespace and falling back to a live origin read. The fallback is not
	// written back to the cache.
	Serve(ctx context.Context, path string) (data []byte, cached bool, err error)
	Manifest() []string
	Version() string
}
