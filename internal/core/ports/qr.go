package ports

import (
	"github.com/antonistheo/qrmenu/internal/core/domain/qr"
)

// QREncoder is the opaque code renderer: text in, PNG bytes out. The encoding
// algorithm is not this system's concern.
type QREncoder interface {
	Encode(text string, size int) ([]byte, error)
}

// QRService renders scannable codes for the menu URL and keeps the most
// recent one for export.
type QRService interface {
	// Generate renders a code for the trimmed URL, replacing any previously
	// rendered one. Empty or whitespace-only input fails with qr.ErrEmptyInput.
	Generate(text string, size int) (*qr.Code, error)
	// Download returns the last rendered code as a named PNG attachment, or
	// qr.ErrNoCode when nothing has been rendered yet.
	Download() (filename string, png []byte, err error)
	// Link returns the canonical public menu URL offered for copying.
	Link() string
}
