package dossier

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// buildPDF generates a minimal valid PDF with one page per entry in sizes,
// each sized [width, height] in points. Offsets in the xref table are
// computed, so the document stays valid as object bodies change.
func buildPDF(sizes [][2]int) []byte {
	var buf []byte
	w := func(s string) { buf = append(buf, s...) }

	w("%PDF-1.4\n")

	n := len(sizes)
	total := 2 + 2*n // catalog + pages + (page, contents) per page
	offsets := make([]int, total+1)

	offsets[1] = len(buf)
	w("1 0 obj\n<</Type/Catalog/Pages 2 0 R>>\nendobj\n")

	kids := make([]string, n)
	for i := range sizes {
		kids[i] = fmt.Sprintf("%d 0 R", 3+2*i)
	}
	offsets[2] = len(buf)
	w(fmt.Sprintf("2 0 obj\n<</Type/Pages/Kids[%s]/Count %d>>\nendobj\n", strings.Join(kids, " "), n))

	for i, size := range sizes {
		pageObj := 3 + 2*i
		contentObj := pageObj + 1

		offsets[pageObj] = len(buf)
		w(fmt.Sprintf("%d 0 obj\n<</Type/Page/MediaBox[0 0 %d %d]/Parent 2 0 R/Resources<<>>/Contents %d 0 R>>\nendobj\n",
			pageObj, size[0], size[1], contentObj))

		content := "q Q\n"
		offsets[contentObj] = len(buf)
		w(fmt.Sprintf("%d 0 obj\n<</Length %d>>\nstream\n%sendstream\nendobj\n",
			contentObj, len(content), content))
	}

	xref := len(buf)
	w(fmt.Sprintf("xref\n0 %d\n", total+1))
	w(fmt.Sprintf("%010d %05d f \r\n", 0, 65535))
	for i := 1; i <= total; i++ {
		w(fmt.Sprintf("%010d %05d n \r\n", offsets[i], 0))
	}
	w(fmt.Sprintf("trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF", total+1, xref))

	return buf
}

// writeTestPDF writes a generated PDF into dir and returns its path.
func writeTestPDF(t *testing.T, dir, name string, sizes [][2]int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, buildPDF(sizes), 0o600); err != nil {
		t.Fatalf("writing test PDF: %v", err)
	}
	return path
}
