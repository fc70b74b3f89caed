// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads the embedded text layer of a PDF. Scanned (image-only)
// pages yield no text and come back as empty pages; OCR is out of scope.
type PDFExtractor struct{}

// Extract opens the PDF at pdfPath and returns its pages in document order.
// A page whose handle is null or whose text cannot be decoded is skipped
// entirely; partial corruption does not abort the extraction. A parse failure
// of the document itself returns *OpenError.
func (PDFExtractor) Extract(pdfPath string) ([]Page, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &OpenError{Path: pdfPath, Err: err}
	}
	defer f.Close()

	fonts := make(map[string]*pdf.Font)
	var pages []Page

	for i := 1; i <= r.NumPage(); i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		// Cache fonts across pages; GetPlainText needs them to decode
		// glyph runs.
		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				font := p.Font(name)
				fonts[name] = &font
			}
		}

		text, err := p.GetPlainText(fonts)
		if err != nil {
			continue
		}

		pages = append(pages, Page{Number: i, Text: strings.TrimSpace(text)})
	}

	return pages, nil
}
