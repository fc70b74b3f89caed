// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements per-page PDF text extraction and Markdown
// serialization. Extraction backends implement the Extractor interface; the
// bundled backend reads the embedded text layer with github.com/ledongthuc/pdf.
package convert

import (
	"fmt"
	"io"

	"github.com/pdiddy/pdf2md/internal/resolve"
)

// Page is one successfully retrieved page of a document. Number is the
// 1-indexed position in the original document; Text may be empty when the
// page has no extractable text layer.
type Page struct {
	Number int
	Text   string
}

// Extractor reads a PDF and returns its pages in document order. Pages that
// cannot be retrieved are omitted from the result, not reported as errors.
type Extractor interface {
	Extract(pdfPath string) ([]Page, error)
}

// OpenError reports that the input PDF could not be parsed.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("cannot open PDF %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// WriteError reports that the rendered Markdown could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Options controls optional output features.
type Options struct {
	// Frontmatter prepends a YAML frontmatter block with source path, page
	// count, and conversion timestamp.
	Frontmatter bool
}

// Run extracts the job's input PDF, renders the Markdown document, and writes
// it atomically to the job's output path. Status goes to w. Extraction and
// write failures come back as *OpenError and *WriteError respectively.
func Run(ex Extractor, job resolve.Job, opts Options, w io.Writer) error {
	pages, err := ex.Extract(job.InputPath)
	if err != nil {
		return err
	}

	content := Render(pages)
	if opts.Frontmatter {
		fm, err := frontmatter(job.InputPath, len(pages))
		if err != nil {
			return err
		}
		content = fm + content
	}

	if err := WriteAtomic(job.OutputPath, content); err != nil {
		return err
	}

	fmt.Fprintf(w, "extracted %d pages to %s\n", len(pages), job.OutputPath)
	return nil
}
