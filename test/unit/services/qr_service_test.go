package services_test

import (
	"errors"
	"fmt"
	"testing"

	impl "github.com/antonistheo/qrmenu/internal/application/services"
	"github.com/antonistheo/qrmenu/internal/core/domain/qr"
	"github.com/antonistheo/qrmenu/test/mocks"
)

func TestQRService_GenerateTrimsAndEncodes(t *testing.T) {
	enc := &mocks.QREncoderMock{EncodeFn: func(text string, size int) ([]byte, error) {
		return []byte("png:" + text), nil
	}}
	svc := impl.NewQRService(enc, impl.QRConfig{PublicURL: "https://example.com/menu", Size: 220}, quietLogger())

	code, err := svc.Generate("  https://example.com/menu  ", 0)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if code.Text != "https://example.com/menu" {
		t.Fatalf("text not trimmed: %q", code.Text)
	}
	if code.Size != 220 {
		t.Fatalf("expected default size, got %d", code.Size)
	}
}

func TestQRService_EmptyInputRejected(t *testing.T) {
	svc := impl.NewQRService(&mocks.QREncoderMock{}, impl.QRConfig{}, quietLogger())
	for _, input := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Generate(input, 0); !errors.Is(err, qr.ErrEmptyInput) {
			t.Fatalf("input %q: got %v, want ErrEmptyInput", input, err)
		}
	}
}

func TestQRService_DownloadBeforeGenerate(t *testing.T) {
	svc := impl.NewQRService(&mocks.QREncoderMock{}, impl.QRConfig{}, quietLogger())
	if _, _, err := svc.Download(); !errors.Is(err, qr.ErrNoCode) {
		t.Fatalf("got %v, want ErrNoCode", err)
	}
}

func TestQRService_DownloadReturnsLatestCode(t *testing.T) {
	enc := &mocks.QREncoderMock{EncodeFn: func(text string, size int) ([]byte, error) {
		return []byte("png:" + text), nil
	}}
	svc := impl.NewQRService(enc, impl.QRConfig{DownloadName: "qr-menu.png"}, quietLogger())

	if _, err := svc.Generate("https://one.example", 128); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Generate("https://two.example", 128); err != nil {
		t.Fatalf("generate: %v", err)
	}

	name, png, err := svc.Download()
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if name != "qr-menu.png" {
		t.Fatalf("filename: %q", name)
	}
	if string(png) != "png:https://two.example" {
		t.Fatalf("stale code exported: %q", png)
	}
}

func TestQRService_EncoderFailureDoesNotReplaceLast(t *testing.T) {
	calls := 0
	enc := &mocks.QREncoderMock{EncodeFn: func(text string, size int) ([]byte, error) {
		calls++
		if calls > 1 {
			return nil, fmt.Errorf("encoder broke")
		}
		return []byte("png:" + text), nil
	}}
	svc := impl.NewQRService(enc, impl.QRConfig{}, quietLogger())

	if _, err := svc.Generate("https://good.example", 0); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := svc.Generate("https://bad.example", 0); err == nil {
		t.Fatal("expected encoder error")
	}

	_, png, err := svc.Download()
	if err != nil {
		t.Fatalf("download: %v", err)
	}
	if string(png) != "png:https://good.example" {
		t.Fatalf("failed render clobbered the last code: %q", png)
	}
}

func TestQRService_Link(t *testing.T) {
	svc := impl.NewQRService(&mocks.QREncoderMock{}, impl.QRConfig{PublicURL: "https://example.com/menu"}, quietLogger())
	if got := svc.Link(); got != "https://example.com/menu" {
		t.Fatalf("link: %q", got)
	}
}
