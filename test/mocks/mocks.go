package mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/antonistheo/qrmenu/internal/core/domain/menu"
	"github.com/antonistheo/qrmenu/internal/core/domain/qr"
)

// MenuSourceMock is a lightweight mock for MenuSource
type MenuSourceMock struct {
	NameFn  func() string
	FetchFn func(ctx context.Context) ([]menu.Item, error)
}

func (m *MenuSourceMock) Name() string {
	if m.NameFn != nil {
		return m.NameFn()
	}
	return "mock"
}
func (m *MenuSourceMock) Fetch(ctx context.Context) ([]menu.Item, error) {
	if m.FetchFn != nil {
		return m.FetchFn(ctx)
	}
	return nil, nil
}

// MenuServiceMock is a lightweight mock for MenuService
type MenuServiceMock struct {
	ReloadFn         func(ctx context.Context) error
	ScheduleReloadFn func()
	QueryFn          func(category, search string) []menu.Card
	CategoriesFn     func() []string
	ItemsFn          func() []menu.Item
	StatusFn         func() menu.LoadStatus
}

func (m *MenuServiceMock) Reload(ctx context.Context) error {
	if m.ReloadFn != nil {
		return m.ReloadFn(ctx)
	}
	return nil
}
func (m *MenuServiceMock) ScheduleReload() {
	if m.ScheduleReloadFn != nil {
		m.ScheduleReloadFn()
	}
}
func (m *MenuServiceMock) Query(category, search string) []menu.Card {
	if m.QueryFn != nil {
		return m.QueryFn(category, search)
	}
	return nil
}
func (m *MenuServiceMock) Categories() []string {
	if m.CategoriesFn != nil {
		return m.CategoriesFn()
	}
	return []string{menu.CategoryAll}
}
func (m *MenuServiceMock) Items() []menu.Item {
	if m.ItemsFn != nil {
		return m.ItemsFn()
	}
	return nil
}
func (m *MenuServiceMock) Status() menu.LoadStatus {
	if m.StatusFn != nil {
		return m.StatusFn()
	}
	return menu.LoadStatus{State: menu.StateEmpty}
}

// QREncoderMock is a lightweight mock for QREncoder
type QREncoderMock struct {
	EncodeFn func(text string, size int) ([]byte, error)
}

func (m *QREncoderMock) Encode(text string, size int) ([]byte, error) {
	if m.EncodeFn != nil {
		return m.EncodeFn(text, size)
	}
	return []byte("png"), nil
}

// QRServiceMock is a lightweight mock for QRService
type QRServiceMock struct {
	GenerateFn func(text string, size int) (*qr.Code, error)
	DownloadFn func() (string, []byte, error)
	LinkFn     func() string
}

func (m *QRServiceMock) Generate(text string, size int) (*qr.Code, error) {
	if m.GenerateFn != nil {
		return m.GenerateFn(text, size)
	}
	return &qr.Code{Text: text, Size: size, PNG: []byte("png")}, nil
}
func (m *QRServiceMock) Download() (string, []byte, error) {
	if m.DownloadFn != nil {
		return m.DownloadFn()
	}
	return "", nil, qr.ErrNoCode
}
func (m *QRServiceMock) Link() string {
	if m.LinkFn != nil {
		return m.LinkFn()
	}
	return ""
}

// AssetOriginMock is a lightweight mock for AssetOrigin
type AssetOriginMock struct {
	ReadFn func(ctx context.Context, path string) ([]byte, error)
}

func (m *AssetOriginMock) Read(ctx context.Context, path string) ([]byte, error) {
	if m.ReadFn != nil {
		return m.ReadFn(ctx, path)
	}
	return nil, fmt.Errorf("not found")
}

// AssetServiceMock is a lightweight mock for AssetService
type AssetServiceMock struct {
	InstallFn  func(ctx context.Context) error
	ServeFn    func(ctx context.Context, path string) ([]byte, bool, error)
	ManifestFn func() []string
	VersionFn  func() string
}

func (m *AssetServiceMock) Install(ctx context.Context) error {
	if m.InstallFn != nil {
		return m.InstallFn(ctx)
	}
	return nil
}
func (m *AssetServiceMock) Serve(ctx context.Context, path string) ([]byte, bool, error) {
	if m.ServeFn != nil {
		return m.ServeFn(ctx, path)
	}
	return nil, false, fmt.Errorf("not found")
}
func (m *AssetServiceMock) Manifest() []string {
	if m.ManifestFn != nil {
		return m.ManifestFn()
	}
	return nil
}
func (m *AssetServiceMock) Version() string {
	if m.VersionFn != nil {
		return m.VersionFn()
	}
	return "v0"
}

// AdminAuthServiceMock is a lightweight mock for AdminAuthService
type AdminAuthServiceMock struct {
	LoginFn         func(ctx context.Context, password string) (string, error)
	ValidateTokenFn func(ctx context.Context, token string) error
}

func (m *AdminAuthServiceMock) Login(ctx context.Context, password string) (string, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, password)
	}
	return "", fmt.Errorf("invalid credentials")
}
func (m *AdminAuthServiceMock) ValidateToken(ctx context.Context, token string) error {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil
}

// CacheMock is an in-memory Cache for tests that records failures on demand.
type CacheMock struct {
	GetFn    func(ctx context.Context, key string) ([]byte, bool, error)
	SetFn    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	DeleteFn func(ctx context.Context, key string) error

	Entries map[string][]byte
}

func (m *CacheMock) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, key)
	}
	v, ok := m.Entries[key]
	return v, ok, nil
}
func (m *CacheMock) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.SetFn != nil {
		return m.SetFn(ctx, key, value, ttl)
	}
	if m.Entries == nil {
		m.Entries = make(map[string][]byte)
	}
	m.Entries[key] = value
	return nil
}
func (m *CacheMock) Delete(ctx context.Context, key string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, key)
	}
	delete(m.Entries, key)
	return nil
}
