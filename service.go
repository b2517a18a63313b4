package dossier

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Service orchestrates the dossier assembly pipeline.
type Service struct {
	cfg        serviceConfig
	rasterizer pdfRasterizer
	notes      notesConverter
	assembler  *assembler
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithDPI).
func New(opts ...Option) *Service {
	s := &Service{
		cfg:       serviceConfig{dpi: DefaultDPI},
		notes:     newGoldmarkConverter(),
		assembler: &assembler{},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create rasterizer if not injected (e.g., by tests)
	if s.rasterizer == nil {
		s.rasterizer = newFitzRasterizer()
	}

	return s
}

// Assemble runs the full pipeline and returns the final HTML.
// The context is used for cancellation between stages and pages.
func (s *Service) Assemble(ctx context.Context, input Input) (*Result, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	htmlContent := input.Template
	var unmatched []string

	// Inline the profile photo
	if input.Photo != nil {
		s.reportStage(StagePhoto)
		b64, err := encodeFileBase64(input.Photo.Path)
		if err != nil {
			return nil, fmt.Errorf("encoding photo: %w", err)
		}
		mime := input.Photo.MIME
		if mime == "" {
			mime = mimeForPath(input.Photo.Path)
		}
		name := filepath.Base(input.Photo.Path)
		var ok bool
		htmlContent, ok = s.assembler.replacePhoto(htmlContent, name, dataURI(mime, b64))
		if !ok {
			unmatched = append(unmatched, name)
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Rasterize and inline each document
	if len(input.Documents) > 0 {
		s.reportStage(StageDocuments)
	}
	for _, d := range input.Documents {
		name := filepath.Base(d.Path)
		pages, err := s.rasterizer.RasterizePages(ctx, d.Path, rasterOptions{
			DPI:      s.cfg.dpi,
			RotateCW: d.RotateCW,
			Name:     name,
			Progress: s.cfg.page,
		})
		if err != nil {
			return nil, fmt.Errorf("rasterizing %s: %w", name, err)
		}
		var ok bool
		htmlContent, ok = s.assembler.replaceObject(htmlContent, name, buildPageFragment(pages))
		if !ok {
			unmatched = append(unmatched, name)
		}
	}

	// Render and inline the notes
	if input.Notes != nil {
		s.reportStage(StageNotes)
		raw, err := os.ReadFile(input.Notes.Path) // #nosec G304 -- notes path comes from user config
		if err != nil {
			return nil, fmt.Errorf("reading notes: %w", err)
		}
		fragment, err := s.notes.ToHTML(ctx, string(raw))
		if err != nil {
			return nil, fmt.Errorf("converting notes: %w", err)
		}
		name := filepath.Base(input.Notes.Path)
		var ok bool
		htmlContent, ok = s.assembler.replaceObject(htmlContent, name, fragment)
		if !ok {
			unmatched = append(unmatched, name)
		}
	}

	return &Result{HTML: []byte(htmlContent), Unmatched: unmatched}, nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.Template == "" {
		return ErrEmptyTemplate
	}
	return validateDPI(s.cfg.dpi)
}

// reportStage notifies the stage callback when one is configured.
func (s *Service) reportStage(stage string) {
	if s.cfg.stage != nil {
		s.cfg.stage(stage)
	}
}
