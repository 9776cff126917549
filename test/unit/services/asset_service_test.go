package services_test

import (
	"context"
	"errors"
	"testing"

	impl "github.com/antonistheo/qrmenu/internal/application/services"
	"github.com/antonistheo/qrmenu/test/mocks"
)

func originWith(files map[string][]byte) *mocks.AssetOriginMock {
	return &mocks.AssetOriginMock{ReadFn: func(ctx context.Context, path string) ([]byte, error) {
		if data, ok := files[path]; ok {
			return data, nil
		}
		return nil, errors.New("no such asset")
	}}
}

func TestAssetService_InstallThenServeHitsCache(t *testing.T) {
	files := map[string][]byte{
		"/index.html": []byte("<html>"),
		"/styles.css": []byte("body{}"),
	}
	cache := &mocks.CacheMock{}
	svc := impl.NewAssetService(cache, originWith(files), "shell-v1", []string{"/index.html", "/styles.css"}, quietLogger())

	if err := svc.Install(context.Background()); err != nil {
		t.Fatalf("install: %v", err)
	}

	// Break the origin: a cached shell must keep serving without it.
	broken := impl.NewAssetService(cache, &mocks.AssetOriginMock{ReadFn: func(ctx context.Context, path string) ([]byte, error) {
		return nil, errors.New("origin down")
	}}, "shell-v1", []string{"/index.html", "/styles.css"}, quietLogger())

	data, cached, err := broken.Serve(context.Background(), "/index.html")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if !cached || string(data) != "<html>" {
		t.Fatalf("expected cached bytes, got cached=%v data=%q", cached, data)
	}
}

func TestAssetService_FailedInstallWritesNothing(t *testing.T) {
	files := map[string][]byte{"/index.html": []byte("<html>")}
	cache := &mocks.CacheMock{}
	svc := impl.NewAssetService(cache, originWith(files), "shell-v1", []string{"/index.html", "/missing.css"}, quietLogger())

	if err := svc.Install(context.Background()); err == nil {
		t.Fatal("expected install to fail on the missing asset")
	}
	if len(cache.Entries) != 0 {
		t.Fatalf("partial install leaked entries: %v", cache.Entries)
	}
}

func TestAssetService_MissFallsBackToOriginWithoutWriteBack(t *testing.T) {
	files := map[string][]byte{"/extra.js": []byte("js")}
	cache := &mocks.CacheMock{}
	svc := impl.NewAssetService(cache, originWith(files), "shell-v1", []string{}, quietLogger())

	data, cached, err := svc.Serve(context.Background(), "/extra.js")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if cached || string(data) != "js" {
		t.Fatalf("expected origin fallback, got cached=%v data=%q", cached, data)
	}
	if len(cache.Entries) != 0 {
		t.Fatalf("fallback must not write back, cache now has %v", cache.Entries)
	}
}

func TestAssetService_VersionBumpStartsFreshNamespace(t *testing.T) {
	files := map[string][]byte{"/index.html": []byte("old")}
	cache := &mocks.CacheMock{}
	v1 := impl.NewAssetService(cache, originWith(files), "shell-v1", []string{"/index.html"}, quietLogger())
	if err := v1.Install(context.Background()); err != nil {
		t.Fatalf("install v1: %v", err)
	}

	files["/index.html"] = []byte("new")
	v2 := impl.NewAssetService(cache, originWith(files), "shell-v2", []string{"/index.html"}, quietLogger())
	if err := v2.Install(context.Background()); err != nil {
		t.Fatalf("install v2: %v", err)
	}

	data, cached, err := v2.Serve(context.Background(), "/index.html")
	if err != nil || !cached || string(data) != "new" {
		t.Fatalf("v2 serve: data=%q cached=%v err=%v", data, cached, err)
	}
	// The old namespace is orphaned, not overwritten.
	data, cached, err = v1.Serve(context.Background(), "/index.html")
	if err != nil || !cached || string(data) != "old" {
		t.Fatalf("v1 serve: data=%q cached=%v err=%v", data, cached, err)
	}
}

func TestAssetService_CacheErrorDegradesToOrigin(t *testing.T) {
	files := map[string][]byte{"/index.html": []byte("<html>")}
	cache := &mocks.CacheMock{GetFn: func(ctx context.Context, key string) ([]byte, bool, error) {
		return nil, false, errors.New("cache unavailable")
	}}
	svc := impl.NewAssetService(cache, originWith(files), "shell-v1", []string{"/index.html"}, quietLogger())

	data, cached, err := svc.Serve(context.Background(), "/index.html")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	if cached || string(data) != "<html>" {
		t.Fatalf("expected live read, got cached=%v data=%q", cached, data)
	}
}
