// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	// titleHeading opens every output document.
	titleHeading = "# PDFから抽出されたテキスト"
	// emptyPagePlaceholder stands in for a page that was retrieved but
	// carries no extractable text.
	emptyPagePlaceholder = "(空のページ)"
)

// Render serializes pages into the output Markdown document: a title heading
// followed by one section per page, in input order. Each section is
// "## Page N", the page text, and a horizontal rule. A page with empty text
// gets the empty-page placeholder as its body.
func Render(pages []Page) string {
	var b strings.Builder
	b.WriteString(titleHeading)
	b.WriteString("\n\n")

	for _, p := range pages {
		fmt.Fprintf(&b, "## Page %d\n\n", p.Number)
		if p.Text == "" {
			b.WriteString(emptyPagePlaceholder)
		} else {
			b.WriteString(p.Text)
		}
		b.WriteString("\n\n---\n\n")
	}

	return b.String()
}

// fmMeta is the YAML shape of the optional frontmatter block.
type fmMeta struct {
	SourcePDF   string `yaml:"source_pdf"`
	PageCount   int    `yaml:"page_count"`
	ConvertedAt string `yaml:"converted_at"`
}

// frontmatter renders a YAML frontmatter block for the given source PDF.
func frontmatter(pdfPath string, pageCount int) (string, error) {
	meta := fmMeta{
		SourcePDF:   filepath.ToSlash(pdfPath),
		PageCount:   pageCount,
		ConvertedAt: time.Now().UTC().Format(time.RFC3339),
	}
	data, err := yaml.Marshal(meta)
	if err != nil {
		return "", fmt.Errorf("marshalling frontmatter: %w", err)
	}
	return "---\n" + string(data) + "---\n\n", nil
}
