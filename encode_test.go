package dossier

import (
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodeFileBase64(t *testing.T) {
	t.Parallel()

	t.Run("round trip with binary bytes", func(t *testing.T) {
		t.Parallel()

		raw := []byte{0x00, 0xFF, 0x10, 0x89, 'P', 'N', 'G', 0x0D, 0x0A}
		path := filepath.Join(t.TempDir(), "asset.bin")
		if err := os.WriteFile(path, raw, 0o600); err != nil {
			t.Fatalf("writing fixture: %v", err)
		}

		got, err := encodeFileBase64(path)
		if err != nil {
			t.Fatalf("encodeFileBase64() error = %v", err)
		}

		decoded, err := base64.StdEncoding.DecodeString(got)
		if err != nil {
			t.Fatalf("output is not valid base64: %v", err)
		}
		if string(decoded) != string(raw) {
			t.Errorf("decoded bytes = %v, want %v", decoded, raw)
		}
	})

	t.Run("missing file keeps os sentinel", func(t *testing.T) {
		t.Parallel()

		_, err := encodeFileBase64(filepath.Join(t.TempDir(), "nope.jpg"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want errors.Is(err, os.ErrNotExist)", err)
		}
	})
}

func TestDataURI(t *testing.T) {
	t.Parallel()

	got := dataURI("image/jpeg", "aGVsbG8=")
	want := "data:image/jpeg;base64,aGVsbG8="
	if got != want {
		t.Errorf("dataURI() = %q, want %q", got, want)
	}
}

func TestMimeForPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"photo.jpg", "image/jpeg"},
		{"photo.jpeg", "image/jpeg"},
		{"26.jpg.jpeg", "image/jpeg"},
		{"PHOTO.JPG", "image/jpeg"},
		{"logo.png", "image/png"},
		{"anim.gif", "image/gif"},
		{"pic.webp", "image/webp"},
		{"icon.svg", "image/svg+xml"},
		{"blob.bin", "application/octet-stream"},
		{"noext", "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()

			if got := mimeForPath(tt.path); got != tt.want {
				t.Errorf("mimeForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
