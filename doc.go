// Package dossier assembles self-contained HTML documents from a profile
// photo, a set of PDF files, and optional Markdown notes. All binary assets
// are inlined as base64 data URIs, so the result is a single file with no
// external dependencies.
//
// # Quick Start
//
// Create a service, assemble a dossier, and write the result:
//
//	svc := dossier.New()
//	result, err := svc.Assemble(ctx, dossier.Input{
//	    Template: templateHTML,
//	    Photo:    &dossier.Photo{Path: "profile.jpg"},
//	    Documents: []dossier.Document{
//	        {Path: "degree.pdf"},
//	        {Path: "transcript.pdf", RotateCW: true},
//	    },
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", result.HTML, 0644)
//
// # Assembly Pipeline
//
// The pipeline runs sequentially, one asset at a time:
//
//  1. Profile photo encoded to base64 and swapped into the template's
//     literal src reference as a data URI.
//  2. Each PDF rasterized page by page at the configured DPI (MuPDF via
//     go-fitz), PNG-encoded, base64-encoded, and substituted for the
//     template's <object> placeholder as a run of <img> tags.
//  3. Optional Markdown notes rendered to an HTML fragment (goldmark, GFM)
//     and substituted the same way.
//
// Placeholders are <object> elements whose data attribute names the source
// file, matched tolerant of attribute order. A placeholder that is absent
// from the template leaves the HTML untouched; the unmatched name is
// reported in Result.Unmatched so callers can warn instead of failing.
//
// # Page Rotation
//
// Document.RotateCW adds 90 degrees clockwise to every page's existing
// /Rotate value through a pdfcpu pre-pass, so rotation compounds: applying
// it twice renders pages at (R+180) mod 360.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := dossier.New(
//	    dossier.WithDPI(300),
//	    dossier.WithPageProgress(func(doc string, page, total int) {
//	        fmt.Printf("%s: page %d/%d\n", doc, page, total)
//	    }),
//	)
//
// # Rendering Requirements
//
// PDF rasterization uses the MuPDF engine statically linked through
// github.com/gen2brain/go-fitz (cgo). SelfCheck renders a tiny in-memory
// PDF to verify the engine works before any input files are touched.
package dossier
