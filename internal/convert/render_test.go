// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"regexp"
	"strings"
	"testing"
)

func TestRender_EmptyDocument(t *testing.T) {
	got := Render(nil)
	want := "# PDFから抽出されたテキスト\n\n"
	if got != want {
		t.Errorf("Render(nil) = %q, want %q", got, want)
	}
}

func TestRender_TitleHeadingFirst(t *testing.T) {
	got := Render([]Page{{Number: 1, Text: "hello"}})
	if !strings.HasPrefix(got, "# PDFから抽出されたテキスト\n\n") {
		t.Errorf("output does not start with title heading: %q", got)
	}
}

func TestRender_PageSectionShape(t *testing.T) {
	got := Render([]Page{{Number: 3, Text: "body text"}})
	want := "# PDFから抽出されたテキスト\n\n## Page 3\n\nbody text\n\n---\n\n"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_EmptyPagePlaceholder(t *testing.T) {
	got := Render([]Page{{Number: 2, Text: ""}})
	if !strings.Contains(got, "## Page 2\n\n(空のページ)\n\n---\n\n") {
		t.Errorf("empty page should render the placeholder, got %q", got)
	}
}

func TestRender_PageOrderPreserved(t *testing.T) {
	pages := []Page{
		{Number: 1, Text: "one"},
		{Number: 2, Text: "two"},
		{Number: 4, Text: "four"}, // page 3 was skipped during extraction
	}
	got := Render(pages)

	headings := regexp.MustCompile(`## Page (\d+)`).FindAllStringSubmatch(got, -1)
	if len(headings) != 3 {
		t.Fatalf("want 3 page headings, got %d", len(headings))
	}
	for i, want := range []string{"1", "2", "4"} {
		if headings[i][1] != want {
			t.Errorf("heading %d = Page %s, want Page %s", i, headings[i][1], want)
		}
	}
	if strings.Contains(got, "## Page 3") {
		t.Error("skipped page must not produce a heading")
	}
}

func TestRender_Idempotent(t *testing.T) {
	pages := []Page{{Number: 1, Text: "stable"}, {Number: 2, Text: ""}}
	if Render(pages) != Render(pages) {
		t.Error("Render must be deterministic for identical input")
	}
}

func TestFrontmatter(t *testing.T) {
	fm, err := frontmatter("raw/report.pdf", 7)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(fm, "---\n") || !strings.HasSuffix(fm, "---\n\n") {
		t.Errorf("frontmatter not delimited: %q", fm)
	}
	for _, want := range []string{
		"source_pdf: raw/report.pdf",
		fmt.Sprintf("page_count: %d", 7),
		"converted_at:",
	} {
		if !strings.Contains(fm, want) {
			t.Errorf("frontmatter missing %q: %q", want, fm)
		}
	}
}
