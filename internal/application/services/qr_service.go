package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/antonistheo/qrmenu/internal/core/domain/qr"
	"github.com/antonistheo/qrmenu/internal/core/ports"
	"github.com/sirupsen/logrus"
)

// QRConfig carries the QR surface settings.
type QRConfig struct {
	// PublicURL is the canonical menu URL encoded by default and offered for
	// copying.
	PublicURL string
	// Size is the rendered image edge length in pixels when the caller does
	// not ask for one.
	Size int
	// DownloadName is the filename of the exported PNG.
	DownloadName string
}

// QRService renders codes through an opaque encoder and retains only the most
// recently rendered one for export.
type QRService struct {
	encoder ports.QREncoder
	cfg     QRConfig
	logger  *logrus.Logger

	mu   sync.Mutex
	last *qr.Code
}

func NewQRService(encoder ports.QREncoder, cfg QRConfig, logger *logrus.Logger) *QRService {
	if cfg.Size <= 0 {
		cfg.Size = 220
	}
	if cfg.DownloadName == "" {
		cfg.DownloadName = qr.DefaultDownloadName
	}
	return &QRService{encoder: encoder, cfg: cfg, logger: logger}
}

// Generate renders a code for the trimmed URL, replacing the previous one.
func (s *QRService) Generate(text string, size int) (*qr.Code, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, qr.ErrEmptyInput
	}
	if size <= 0 {
		size = s.cfg.Size
	}
	png, err := s.encoder.Encode(text, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	code := &qr.Code{Text: text, Size: size, PNG: png, CreatedAt: time.Now()}

	s.mu.Lock()
	s.last = code
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"size": size, "bytes": len(png)}).Debug("qr code rendered")
	}
	return code, nil
}

// Download returns the last rendered code for export.
func (s *QRService) Download() (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return "", nil, qr.ErrNoCode
	}
	return s.cfg.DownloadName, s.last.PNG, nil
}

// Link returns the canonical public menu URL.
func (s *QRService) Link() string { return s.cfg.PublicURL }
