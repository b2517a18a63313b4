package dossier

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/alnah/go-dossier/internal/fileutil"
)

// rasterOptions control the rasterization of a single document.
type rasterOptions struct {
	DPI      float64
	RotateCW bool
	Name     string // display name passed to the progress callback
	Progress PageProgress
}

// pdfRasterizer abstracts PDF page rendering for testability.
type pdfRasterizer interface {
	RasterizePages(ctx context.Context, path string, opts rasterOptions) ([]string, error)
}

// fitzRasterizer renders PDF pages with the MuPDF engine via go-fitz.
type fitzRasterizer struct{}

// newFitzRasterizer creates the production rasterizer.
func newFitzRasterizer() *fitzRasterizer {
	return &fitzRasterizer{}
}

// RasterizePages renders every page of the PDF at opts.DPI and returns the
// pages as base64-encoded PNGs in document order.
//
// When opts.RotateCW is set, a pdfcpu pre-pass writes a temp copy with 90
// degrees added to each page's /Rotate entry and MuPDF renders that copy, so
// rotation compounds with whatever rotation the page already carries.
func (r *fitzRasterizer) RasterizePages(ctx context.Context, path string, opts rasterOptions) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	renderPath := path
	if opts.RotateCW {
		rotated, cleanup, err := rotatePagesCW(path)
		if err != nil {
			return nil, err
		}
		defer cleanup()
		renderPath = rotated
	}

	doc, err := fitz.New(renderPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrOpenPDF, path, err)
	}
	defer doc.Close()

	total := doc.NumPage()
	pages := make([]string, 0, total)
	for i := 0; i < total; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		img, err := doc.ImageDPI(i, opts.DPI)
		if err != nil {
			return nil, fmt.Errorf("%w: %s page %d: %v", ErrRenderPage, path, i+1, err)
		}

		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("%w: %s page %d: %v", ErrEncodePNG, path, i+1, err)
		}

		pages = append(pages, base64.StdEncoding.EncodeToString(buf.Bytes()))
		if opts.Progress != nil {
			opts.Progress(opts.Name, i+1, total)
		}
	}

	return pages, nil
}

// rotatePagesCW writes a temp copy of the PDF with 90 degrees clockwise
// added to every page's rotation. Returns the copy's path and a cleanup
// function that removes it.
func rotatePagesCW(path string) (string, func(), error) {
	tmpPath, cleanup, err := fileutil.TempFile("dossier-rotated-*.pdf")
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrRotatePDF, path, err)
	}

	if err := api.RotateFile(path, tmpPath, 90, nil, nil); err != nil {
		cleanup()
		return "", nil, fmt.Errorf("%w: %s: %v", ErrRotatePDF, path, err)
	}

	return tmpPath, cleanup, nil
}
