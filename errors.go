package dossier

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyTemplate = errors.New("template content cannot be empty")
	ErrInvalidDPI    = errors.New("invalid DPI")
	ErrOpenPDF       = errors.New("failed to open PDF")
	ErrRenderPage    = errors.New("failed to render PDF page")
	ErrEncodePNG     = errors.New("failed to encode page image")
	ErrRotatePDF     = errors.New("failed to rotate PDF pages")
	ErrNotesConvert  = errors.New("notes conversion failed")
	ErrRenderEngine  = errors.New("PDF rendering engine unavailable")
)
