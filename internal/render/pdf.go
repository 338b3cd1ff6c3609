package render

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/zatif/resumeforge/internal/resume"
)

// Page geometry in points (A4). The composition is deliberately not a layout
// engine: fixed serif fonts, fixed margins, a vertical cursor, and a single
// pass over the document.
const (
	pdfPageWidth    = 595.28
	pdfPageHeight   = 841.89
	pdfMarginX      = 48.0
	pdfMarginTop    = 64.0
	pdfMarginBottom = 56.0
	pdfContentWidth = pdfPageWidth - 2*pdfMarginX

	pdfNameSize    = 24.0
	pdfContactSize = 10.0
	pdfHeadingSize = 12.0
	pdfBodySize    = 11.0

	pdfLineHeight   = 14.0
	pdfNameAdvance  = 20.0
	pdfContactGap   = 26.0
	pdfHeadingGap   = 20.0
	pdfItemGap      = 8.0
	pdfSectionGap   = 10.0
	pdfBulletIndent = 14.0
)

const pdfBulletGlyph = "•"

// PDF projects the document into a multi-page text PDF by drawing primitives
// at cursor positions. Pagination is checked once per item after it renders;
// an item taller than a full page is not split, only the next item is
// guaranteed to start on a fresh page.
type PDF struct{}

func (r *PDF) Render(doc resume.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	c := &pdfComposer{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
	c.compose(doc)

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("compose pdf: %w", err)
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfComposer tracks the vertical cursor across one composition pass. y is
// the baseline of the next text line.
type pdfComposer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (c *pdfComposer) compose(doc resume.Document) {
	c.pdf.AddPage()
	c.y = pdfMarginTop

	c.pdf.SetFont("Times", "B", pdfNameSize)
	c.pdf.Text(pdfMarginX, c.y, c.tr(doc.Name))
	c.y += pdfNameAdvance

	if line := ContactLine(doc.Contact); line != "" {
		c.pdf.SetFont("Times", "", pdfContactSize)
		c.pdf.Text(pdfMarginX, c.y, c.tr(line))
		c.y += pdfContactGap
	}

	for _, sec := range doc.Sections {
		c.sectionHeading(sec.Title)
		for _, item := range sec.Items {
			c.item(item)
			c.y += pdfItemGap
			// Per-item pagination check. Checked after the item rendered, so
			// a single oversized item can overflow the page boundary; the
			// next item then starts at the top margin of a new page.
			if c.y > pdfPageHeight-pdfMarginBottom {
				c.pdf.AddPage()
				c.y = pdfMarginTop
			}
		}
		c.y += pdfSectionGap
	}
}

func (c *pdfComposer) sectionHeading(title string) {
	c.pdf.SetFont("Times", "B", pdfHeadingSize)
	c.pdf.Text(pdfMarginX, c.y, c.tr(title))
	c.pdf.SetLineWidth(0.8)
	c.pdf.Line(pdfMarginX, c.y+4, pdfMarginX+pdfContentWidth, c.y+4)
	c.y += pdfHeadingGap
}

func (c *pdfComposer) item(item resume.Item) {
	switch item.Kind {
	case resume.KindParagraph:
		c.paragraph(item.Paragraph.Content)
	case resume.KindEntry:
		c.entry(item.Entry)
	}
}

func (c *pdfComposer) paragraph(content string) {
	c.pdf.SetFont("Times", "", pdfBodySize)
	if content == "" {
		c.y += pdfLineHeight
		return
	}
	for _, line := range c.pdf.SplitText(c.tr(content), pdfContentWidth) {
		c.pdf.Text(pdfMarginX, c.y, line)
		c.y += pdfLineHeight
	}
}

func (c *pdfComposer) entry(e *resume.EntryItem) {
	// Bold line: title at the left margin, date right-aligned by measured
	// width. These single-line fields do not wrap.
	if e.HasBoldLine() {
		c.pdf.SetFont("Times", "B", pdfBodySize)
		if e.BoldTitle != "" {
			c.pdf.Text(pdfMarginX, c.y, c.tr(e.BoldTitle))
		}
		if e.BoldDate != "" {
			date := c.tr(e.BoldDate)
			w := c.pdf.GetStringWidth(date)
			c.pdf.Text(pdfPageWidth-pdfMarginX-w, c.y, date)
		}
		c.y += pdfLineHeight
	}

	if e.HasSecondaryLine() {
		if e.SecondaryTitle != "" {
			c.pdf.SetFont("Times", "I", pdfBodySize)
			c.pdf.Text(pdfMarginX, c.y, c.tr(e.SecondaryTitle))
		}
		if e.SecondaryText != "" {
			c.pdf.SetFont("Times", "", pdfBodySize)
			text := c.tr(e.SecondaryText)
			w := c.pdf.GetStringWidth(text)
			c.pdf.Text(pdfPageWidth-pdfMarginX-w, c.y, text)
		}
		c.y += pdfLineHeight
	}

	if len(e.Bullets) > 0 {
		c.pdf.SetFont("Times", "", pdfBodySize)
		for _, b := range e.Bullets {
			lines := c.pdf.SplitText(c.tr(b), pdfContentWidth-pdfBulletIndent)
			for i, line := range lines {
				if i == 0 {
					c.pdf.Text(pdfMarginX+2, c.y, c.tr(pdfBulletGlyph))
				}
				c.pdf.Text(pdfMarginX+pdfBulletIndent, c.y, line)
				c.y += pdfLineHeight
			}
		}
	}
}
