// Package render projects a resume Document into its output media: the
// on-screen HTML paper, a paginated PDF, and a DOCX paragraph/run tree. All
// three share one visual contract (contact line join, per-item three-line
// layout, section ordering); only the medium differs.
package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/zatif/resumeforge/internal/resume"
)

// Renderer produces a binary artifact from a document snapshot. Renderers
// never mutate the document and perform no I/O beyond returning bytes;
// saving is the caller's concern.
type Renderer interface {
	Render(doc resume.Document) ([]byte, error)
}

// ForFormat returns the export renderer for a format name.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "pdf":
		return &PDF{}, nil
	case "docx":
		return &DOCX{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// contactSeparator joins the present contact fields on every medium.
const contactSeparator = " | "

// ContactLine joins the present contact fields in the fixed order email,
// phone, location. Absent fields produce no separators between neighbors.
func ContactLine(c resume.Contact) string {
	var parts []string
	for _, f := range []string{c.Email, c.Phone, c.Location} {
		if f != "" {
			parts = append(parts, f)
		}
	}
	return strings.Join(parts, contactSeparator)
}

var nameWhitespace = regexp.MustCompile(`\s+`)

// ExportFilename derives the artifact filename for a document and extension:
// the name with whitespace runs collapsed to underscores, suffixed
// "_Resume.<ext>".
func ExportFilename(name, ext string) string {
	return nameWhitespace.ReplaceAllString(name, "_") + "_Resume." + ext
}
