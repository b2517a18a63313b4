// Package fileutil provides file and path utility functions.
package fileutil

import (
	"fmt"
	"os"
	"strings"
)

// TempFile creates an empty temporary file matching pattern and returns its
// path together with a cleanup function that removes it. Callers that hand
// the path to an external writer (e.g., pdfcpu) can rely on the file being
// overwritable.
func TempFile(pattern string) (path string, cleanup func(), err error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", nil, fmt.Errorf("creating temp file: %w", err)
	}

	path = f.Name()
	cleanup = func() { _ = os.Remove(path) }

	if closeErr := f.Close(); closeErr != nil {
		cleanup()
		return "", nil, fmt.Errorf("closing temp file: %w", closeErr)
	}

	return path, cleanup, nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Missing returns, in input order, the paths that do not exist as regular
// files. An empty result means every path is present.
func Missing(paths []string) []string {
	var missing []string
	for _, p := range paths {
		if !FileExists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}

// IsFilePath returns true if the string looks like a file path rather than
// a bare name. A string containing path separators (/, \) is treated as a
// path.
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}
