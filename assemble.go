package dossier

import (
	"fmt"
	"regexp"
	"strings"
)

// pageImageStyle keeps inlined pages full-width and flush against each
// other so consecutive pages read as one continuous document.
const pageImageStyle = "width:100%;display:block;margin:0;padding:0;"

// buildPageFragment concatenates one <img> tag per rasterized page, in page
// order, each with a data:image/png;base64 source.
func buildPageFragment(pages []string) string {
	tags := make([]string, len(pages))
	for i, b64 := range pages {
		tags[i] = fmt.Sprintf(`<img src="data:image/png;base64,%s" alt="Page %d" style="%s">`, b64, i+1, pageImageStyle)
	}
	return strings.Join(tags, "\n")
}

// assembler performs the template substitutions. Everything outside the
// recognized placeholders is left byte-for-byte unchanged.
type assembler struct{}

// replacePhoto swaps every literal src reference to the photo filename for
// its data URI. Returns the new HTML and whether a replacement happened.
func (a *assembler) replacePhoto(htmlContent, filename, uri string) (string, bool) {
	needle := `src="` + filename + `"`
	if !strings.Contains(htmlContent, needle) {
		return htmlContent, false
	}
	return strings.ReplaceAll(htmlContent, needle, `src="`+uri+`"`), true
}

// objectPattern matches an <object> placeholder referencing filename in its
// data attribute: tolerant of attribute order, spanning to the closing tag,
// non-greedy across the element's fallback content.
func objectPattern(filename string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)<object[^>]*\bdata="` + regexp.QuoteMeta(filename) + `"[^>]*>.*?</object>`)
}

// replaceObject substitutes every placeholder referencing filename with the
// replacement fragment. The fragment is inserted literally, so regexp
// expansion metacharacters in base64 payloads are inert. An absent
// placeholder leaves the HTML unchanged and returns false.
func (a *assembler) replaceObject(htmlContent, filename, fragment string) (string, bool) {
	re := objectPattern(filename)
	if !re.MatchString(htmlContent) {
		return htmlContent, false
	}
	return re.ReplaceAllLiteralString(htmlContent, fragment), true
}
