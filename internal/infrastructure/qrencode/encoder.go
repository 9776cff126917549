// Package qrencode adapts the QR graphics library behind the ports.QREncoder
// contract so the rest of the system treats code rendering as an opaque
// capability.
package qrencode

import (
	qrcode "github.com/skip2/go-qrcode"
)

// Encoder renders PNG QR codes with medium error correction, a good balance
// for printed menus.
type Encoder struct{}

func New() *Encoder { return &Encoder{} }

func (e *Encoder) Encode(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}
