package qr

import (
	"errors"
	"time"
)

// DefaultDownloadName is the filename offered when exporting the rendered code.
const DefaultDownloadName = "qr-menu.png"

var (
	// ErrEmptyInput is returned when generation is requested for an empty or
	// whitespace-only URL.
	ErrEmptyInput = errors.New("qr input is empty")
	// ErrNoCode is returned when an export is requested before any code has
	// been rendered.
	ErrNoCode = errors.New("no qr code has been generated yet")
)

// Code is a rendered QR image. Only the most recently rendered code is
// retained; rendering a new one replaces it.
type Code struct {
	Text      string
	Size      int
	PNG       []byte
	CreatedAt time.Time
}
