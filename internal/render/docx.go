package render

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"

	"github.com/zatif/resumeforge/internal/resume"
)

// Run sizes in half-points, matching the on-screen hierarchy.
const (
	docxNameSize    = "48"
	docxContactSize = "20"
	docxHeadingSize = "26"
	docxBoldSize    = "24"
	docxBodySize    = "22"
)

const docxSerifFont = "Times New Roman"

// DOCX projects the document into a word-processing paragraph/run tree.
// There is no manual pagination; the consuming word processor flows pages.
// The bold/secondary lines shift their right-hand run with tab spacers, the
// structural stand-in for the PDF's measured right alignment.
type DOCX struct{}

func (r *DOCX) Render(doc resume.Document) ([]byte, error) {
	w := docx.New().WithDefaultTheme()

	name := w.AddParagraph().Justification("center")
	name.AddText(doc.Name).Size(docxNameSize).Bold().Font(docxSerifFont, "", docxSerifFont, "")

	if line := ContactLine(doc.Contact); line != "" {
		contact := w.AddParagraph().Justification("center")
		contact.AddText(line).Size(docxContactSize).Font(docxSerifFont, "", docxSerifFont, "")
	}

	for _, sec := range doc.Sections {
		heading := w.AddParagraph().Style("Heading2")
		heading.AddText(sec.Title).Size(docxHeadingSize).Bold().Underline("single").Font(docxSerifFont, "", docxSerifFont, "")

		for _, item := range sec.Items {
			switch item.Kind {
			case resume.KindParagraph:
				p := w.AddParagraph()
				p.AddText(item.Paragraph.Content).Size(docxBodySize).Font(docxSerifFont, "", docxSerifFont, "")
			case resume.KindEntry:
				addEntry(w, item.Entry)
			}
		}
	}

	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("pack docx: %w", err)
	}
	return buf.Bytes(), nil
}

func addEntry(w *docx.Docx, e *resume.EntryItem) {
	if e.HasBoldLine() {
		p := w.AddParagraph()
		if e.BoldTitle != "" {
			p.AddText(e.BoldTitle).Size(docxBoldSize).Bold().Font(docxSerifFont, "", docxSerifFont, "")
		}
		if e.BoldTitle != "" && e.BoldDate != "" {
			addTabSpacer(p, 4)
		}
		if e.BoldDate != "" {
			p.AddText(e.BoldDate).Size(docxBoldSize).Bold().Font(docxSerifFont, "", docxSerifFont, "")
		}
	}

	if e.HasSecondaryLine() {
		p := w.AddParagraph()
		if e.SecondaryTitle != "" {
			p.AddText(e.SecondaryTitle).Size(docxBodySize).Italic().Font(docxSerifFont, "", docxSerifFont, "")
		}
		if e.SecondaryTitle != "" && e.SecondaryText != "" {
			addTabSpacer(p, 3)
		}
		if e.SecondaryText != "" {
			p.AddText(e.SecondaryText).Size(docxBodySize).Font(docxSerifFont, "", docxSerifFont, "")
		}
	}

	for _, b := range e.Bullets {
		p := w.AddParagraph().Style("ListParagraph")
		p.AddText("• " + b).Size(docxBodySize).Font(docxSerifFont, "", docxSerifFont, "")
	}
}

func addTabSpacer(p *docx.Paragraph, tabs int) {
	spacer := p.AddText("")
	for i := 0; i < tabs; i++ {
		spacer.AddTab()
	}
}
