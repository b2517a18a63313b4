package dossier

import "fmt"

// DPI bounds for rasterization.
const (
	MinDPI     = 36.0
	MaxDPI     = 600.0
	DefaultDPI = 200.0
)

// Photo identifies the profile photo to inline.
type Photo struct {
	Path string // filesystem path
	MIME string // optional; inferred from the extension when empty
}

// Document identifies a PDF whose pages are rasterized and inlined.
type Document struct {
	Path     string
	RotateCW bool // add 90 degrees clockwise to each page's rotation
}

// Notes identifies an optional Markdown file rendered to an HTML fragment.
type Notes struct {
	Path string
}

// Input contains assembly parameters for one dossier.
type Input struct {
	Template  string     // HTML template text (required)
	Photo     *Photo     // profile photo (optional)
	Documents []Document // PDFs to inline (optional)
	Notes     *Notes     // Markdown notes (optional)
}

// Result holds the outcome of an assembly.
type Result struct {
	HTML      []byte   // final self-contained HTML
	Unmatched []string // asset names whose placeholder was absent from the template
}

// PageProgress receives a notification after each rasterized page.
type PageProgress func(doc string, page, total int)

// StageProgress receives a notification when a pipeline stage starts.
type StageProgress func(stage string)

// Pipeline stage names passed to StageProgress.
const (
	StagePhoto     = "photo"
	StageDocuments = "documents"
	StageNotes     = "notes"
)

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	dpi   float64
	page  PageProgress
	stage StageProgress
}

// WithDPI sets the rasterization resolution in dots per inch.
// The value is validated on Assemble; see MinDPI and MaxDPI.
func WithDPI(dpi float64) Option {
	return func(s *Service) {
		s.cfg.dpi = dpi
	}
}

// WithPageProgress sets a callback invoked after each rasterized page.
func WithPageProgress(fn PageProgress) Option {
	return func(s *Service) {
		s.cfg.page = fn
	}
}

// WithStageProgress sets a callback invoked when a pipeline stage starts.
func WithStageProgress(fn StageProgress) Option {
	return func(s *Service) {
		s.cfg.stage = fn
	}
}

// validateDPI checks that dpi is within the supported range.
func validateDPI(dpi float64) error {
	if dpi < MinDPI || dpi > MaxDPI {
		return fmt.Errorf("%w: %.0f (must be between %.0f and %.0f)", ErrInvalidDPI, dpi, MinDPI, MaxDPI)
	}
	return nil
}
