// Package extract turns an uploaded CV file into plain text.
//
// The outcome is deliberately binary: text (possibly empty) or "". Callers
// treat an empty result as "extraction failed"; there is no partial success
// and no error value to inspect.
package extract

import (
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Extract reads the file at path and returns its plain text. The kind is
// inferred from the extension of declaredName (the client's original
// filename), not from the temp path on disk. Unknown extensions fall back to
// a raw UTF-8 read.
func Extract(path, declaredName string) string {
	switch strings.ToLower(filepath.Ext(declaredName)) {
	case ".pdf":
		return fromPDF(path)
	case ".docx":
		return fromDocx(path)
	case ".txt":
		return fromPlainText(path)
	default:
		return fromPlainText(path)
	}
}

// fromPDF concatenates per-page text in document order, one page per line.
// Within a page the library's native run spacing is kept as-is.
func fromPDF(path string) (text string) {
	// ledongthuc/pdf panics on some malformed files; map that to "".
	defer func() {
		if r := recover(); r != nil {
			log.Printf("pdf extraction panic on %s: %v", filepath.Base(path), r)
			text = ""
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return ""
	}
	defer f.Close()

	var b strings.Builder
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(pageText)
	}
	return b.String()
}

var (
	reParagraph = regexp.MustCompile(`</w:p>`)
	reTags      = regexp.MustCompile(`<[^>]+>`)
	reSpaces    = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines  = regexp.MustCompile(`\n+`)
)

func fromDocx(path string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("docx extraction panic on %s: %v", filepath.Base(path), r)
			text = ""
		}
	}()

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return ""
	}
	defer doc.Close()

	raw := doc.Editable().GetContent()
	// GetContent returns document.xml; keep paragraph boundaries, drop markup.
	raw = reParagraph.ReplaceAllString(raw, "\n")
	raw = strings.ReplaceAll(raw, "<w:tab/>", "\t")
	raw = reTags.ReplaceAllString(raw, " ")
	return normalizeWhitespace(raw)
}

func fromPlainText(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	if !utf8.Valid(data) {
		return ""
	}
	return string(data)
}

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
