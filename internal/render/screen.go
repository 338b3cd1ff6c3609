package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/zatif/resumeforge/internal/resume"
)

// Screen renders the document as the on-screen paper fragment: an HTML block
// the page shell embeds and the websocket pushes on every new snapshot. The
// output is a pure function of the document, so a full re-render from any
// snapshot is idempotent.
type Screen struct{}

func (s *Screen) Render(doc resume.Document) ([]byte, error) {
	var buf bytes.Buffer
	data := struct {
		Doc         resume.Document
		ContactLine string
	}{Doc: doc, ContactLine: ContactLine(doc.Contact)}
	if err := paperTmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render screen: %w", err)
	}
	return buf.Bytes(), nil
}

var paperTmpl = template.Must(template.New("paper").Parse(`<div class="resume-paper" id="resume-paper">
  <header class="resume-header">
    <h1 class="resume-name">{{.Doc.Name}}</h1>
    {{with .ContactLine}}<p class="resume-contact">{{.}}</p>{{end}}
  </header>
{{range .Doc.Sections}}  <section class="resume-section" data-section-id="{{.ID}}">
    <h3 class="section-title">{{.Title}}</h3>
{{range .Items}}{{if eq .Kind "paragraph"}}    <p class="item-paragraph">{{.Paragraph.Content}}</p>
{{else}}{{with .Entry}}    <div class="item-entry">
{{if .HasBoldLine}}      <div class="entry-line entry-bold">{{with .BoldTitle}}<span class="entry-left">{{.}}</span>{{end}}{{with .BoldDate}}<span class="entry-right">{{.}}</span>{{end}}</div>
{{end}}{{if .HasSecondaryLine}}      <div class="entry-line entry-secondary">{{with .SecondaryTitle}}<span class="entry-left entry-italic">{{.}}</span>{{end}}{{with .SecondaryText}}<span class="entry-right">{{.}}</span>{{end}}</div>
{{end}}{{if .Bullets}}      <ul class="entry-bullets">
{{range .Bullets}}        <li>{{.}}</li>
{{end}}      </ul>
{{end}}    </div>
{{end}}{{end}}{{end}}  </section>
{{end}}</div>
`))
