package dossier

import (
	"fmt"

	"github.com/gen2brain/go-fitz"
)

// SelfCheck verifies that the embedded MuPDF engine can open and render a
// page. It works entirely in memory against a one-page PDF, so it is safe
// to run before any input files are touched.
//
// Returns ErrRenderEngine when the engine is unusable, which usually means
// the binary was built without cgo or against a broken MuPDF toolchain.
func SelfCheck() error {
	doc, err := fitz.NewFromMemory(selfCheckPDF())
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderEngine, err)
	}
	defer doc.Close()

	if doc.NumPage() != 1 {
		return fmt.Errorf("%w: self-check document has %d pages, want 1", ErrRenderEngine, doc.NumPage())
	}

	img, err := doc.ImageDPI(0, 72)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRenderEngine, err)
	}
	if img.Bounds().Empty() {
		return fmt.Errorf("%w: self-check page rendered empty", ErrRenderEngine)
	}

	return nil
}

// selfCheckPDF builds a minimal one-page PDF (letter size, empty content).
// The xref offsets are computed, not hardcoded, so the document stays valid
// if the object bodies ever change.
func selfCheckPDF() []byte {
	var buf []byte
	append2 := func(s string) { buf = append(buf, s...) }

	append2("%PDF-1.4\n")

	offsets := make([]int, 4)

	offsets[1] = len(buf)
	append2("1 0 obj\n<</Type/Catalog/Pages 2 0 R>>\nendobj\n")

	offsets[2] = len(buf)
	append2("2 0 obj\n<</Type/Pages/Kids[3 0 R]/Count 1>>\nendobj\n")

	offsets[3] = len(buf)
	append2("3 0 obj\n<</Type/Page/MediaBox[0 0 612 792]/Parent 2 0 R/Resources<<>>>>\nendobj\n")

	xref := len(buf)
	append2("xref\n0 4\n")
	append2(fmt.Sprintf("%010d %05d f \r\n", 0, 65535))
	for i := 1; i < 4; i++ {
		append2(fmt.Sprintf("%010d %05d n \r\n", offsets[i], 0))
	}
	append2("trailer\n<</Size 4/Root 1 0 R>>\nstartxref\n")
	append2(fmt.Sprintf("%d\n", xref))
	append2("%%EOF")

	return buf
}
