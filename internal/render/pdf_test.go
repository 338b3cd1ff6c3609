package render

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
	pdflib "github.com/ledongthuc/pdf"

	"github.com/zatif/resumeforge/internal/resume"
)

func renderPDF(t *testing.T, doc resume.Document) []byte {
	t.Helper()
	b, err := (&PDF{}).Render(doc)
	if err != nil {
		t.Fatalf("render pdf: %v", err)
	}
	if len(b) == 0 {
		t.Fatal("empty pdf artifact")
	}
	return b
}

func openPDF(t *testing.T, b []byte) *pdflib.Reader {
	t.Helper()
	r, err := pdflib.NewReader(bytes.NewReader(b), int64(len(b)))
	if err != nil {
		t.Fatalf("reopen generated pdf: %v", err)
	}
	return r
}

func pageText(t *testing.T, r *pdflib.Reader, n int) string {
	t.Helper()
	page := r.Page(n)
	if page.V.IsNull() {
		t.Fatalf("page %d is null", n)
	}
	text, err := page.GetPlainText(nil)
	if err != nil {
		t.Fatalf("extract page %d text: %v", n, err)
	}
	return text
}

func TestPDF_SeedFitsOnePage(t *testing.T) {
	doc := resume.Seed()
	b := renderPDF(t, doc)

	if !bytes.HasPrefix(b, []byte("%PDF")) {
		t.Fatal("artifact is not a pdf")
	}
	r := openPDF(t, b)
	if got := r.NumPage(); got != 1 {
		t.Fatalf("expected 1 page for the seed resume, got %d", got)
	}

	text := pageText(t, r, 1)
	if !strings.Contains(text, "Zain") {
		t.Errorf("page text missing name, got %q", text)
	}
	if !strings.Contains(text, "SUMMARY") {
		t.Error("page text missing section title")
	}
}

func TestPDF_DoesNotMutateDocument(t *testing.T) {
	doc := resume.Seed()
	snapshot := resume.Seed()
	renderPDF(t, doc)
	if !reflect.DeepEqual(doc, snapshot) {
		t.Error("rendering mutated the document")
	}
}

func TestPDF_PaginationBreaksAfterOversizedItem(t *testing.T) {
	// One item whose wrapped height exceeds a full page. The per-item check
	// fires only after the item completes, so the break happens once and the
	// following item starts at the top of page two.
	long := strings.Repeat("lorem ipsum dolor sit amet consectetur adipiscing elit ", 200)
	doc := resume.Document{
		Name: "Page Breaker",
		Sections: []resume.Section{
			{
				ID:    "wall",
				Title: "WALL OF TEXT",
				Items: []resume.Item{
					resume.NewParagraphItem(long),
					resume.NewParagraphItem("FRESHPAGE"),
				},
			},
		},
	}

	r := openPDF(t, renderPDF(t, doc))
	if got := r.NumPage(); got != 2 {
		t.Fatalf("expected exactly 2 pages, got %d", got)
	}
	if strings.Contains(pageText(t, r, 1), "FRESHPAGE") {
		t.Error("second item leaked onto the first page")
	}
	if !strings.Contains(pageText(t, r, 2), "FRESHPAGE") {
		t.Error("second item did not start on the new page")
	}
}

func TestPDF_EmptySectionRendersHeadingOnly(t *testing.T) {
	doc := resume.Document{
		Name:     "Headings Only",
		Sections: []resume.Section{{ID: "future", Title: "FUTURE PLANS"}},
	}
	r := openPDF(t, renderPDF(t, doc))
	if !strings.Contains(pageText(t, r, 1), "FUTURE") {
		t.Error("empty section heading missing from output")
	}
}

func TestPDF_ContactGapOnlyWhenContactDrawn(t *testing.T) {
	newComposer := func() *pdfComposer {
		pdf := gofpdf.New("P", "pt", "A4", "")
		pdf.SetAutoPageBreak(false, 0)
		return &pdfComposer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	}

	c := newComposer()
	c.compose(resume.Document{Name: "Solo"})
	if got, want := c.y, pdfMarginTop+pdfNameAdvance; got != want {
		t.Errorf("cursor advanced past absent contact line: got %v, want %v", got, want)
	}

	c = newComposer()
	c.compose(resume.Document{Name: "Solo", Contact: resume.Contact{Email: "solo@example.com"}})
	if got, want := c.y, pdfMarginTop+pdfNameAdvance+pdfContactGap; got != want {
		t.Errorf("cursor missing contact gap: got %v, want %v", got, want)
	}
}

func TestPDF_EmptyEntryRendersNothingButSucceeds(t *testing.T) {
	doc := resume.Document{
		Name: "Sparse",
		Sections: []resume.Section{{
			ID:    "s",
			Title: "S",
			Items: []resume.Item{resume.NewEntryItem(resume.EntryFields{})},
		}},
	}
	renderPDF(t, doc)
}
