package main

import (
	"errors"
	"os"

	dossier "github.com/alnah/go-dossier"
	"github.com/alnah/go-dossier/internal/config"
)

// Exit codes for the dossier CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful run
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing inputs, permission denied, write failure
	ExitRender  = 4 // PDF rendering engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Rendering errors (exit 4)
	if errors.Is(err, dossier.ErrRenderEngine) ||
		errors.Is(err, dossier.ErrOpenPDF) ||
		errors.Is(err, dossier.ErrRenderPage) ||
		errors.Is(err, dossier.ErrEncodePNG) ||
		errors.Is(err, dossier.ErrRotatePDF) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrMissingInputs) ||
		errors.Is(err, ErrReadTemplate) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrRefuseOverwrite) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, dossier.ErrEmptyTemplate) ||
		errors.Is(err, dossier.ErrInvalidDPI) ||
		errors.Is(err, dossier.ErrNotesConvert) {
		return ExitUsage
	}

	return ExitGeneral
}
