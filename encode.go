package dossier

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// encodeFileBase64 reads a file and returns its standard base64 encoding.
// I/O errors are wrapped and keep their os sentinel for errors.Is checks.
func encodeFileBase64(path string) (string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- asset paths come from user config
	if err != nil {
		return "", fmt.Errorf("reading asset: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// dataURI builds an inline data URI from a MIME type and a base64 payload.
func dataURI(mime, b64 string) string {
	return "data:" + mime + ";base64," + b64
}

// mimeForPath guesses a MIME type from the file extension.
// Unknown extensions fall back to application/octet-stream.
func mimeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	default:
		return "application/octet-stream"
	}
}
