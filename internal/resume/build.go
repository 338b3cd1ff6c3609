package resume

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// SlugID derives a stable section ID from a display title: trimmed,
// lower-cased, internal whitespace runs collapsed to single hyphens.
func SlugID(title string) string {
	t := strings.TrimSpace(title)
	return whitespaceRun.ReplaceAllString(strings.ToLower(t), "-")
}

// NewSection builds a section around its first item. The title is rejected
// with ErrEmptyTitle when it trims to nothing; otherwise the ID is derived
// once via SlugID and the stored title is the upper-cased trimmed form.
func NewSection(title string, first Item) (Section, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return Section{}, ErrEmptyTitle
	}
	return Section{
		ID:    SlugID(t),
		Title: strings.ToUpper(t),
		Items: []Item{first},
	}, nil
}

// EntryFields carries the raw form input for an entry item.
type EntryFields struct {
	BoldTitle      string
	BoldDate       string
	SecondaryTitle string
	SecondaryText  string
	Bullets        []string
}

// NewEntryItem builds an entry item. Every string field is trimmed, and a
// field that trims to empty is stored absent so renderers can rely on
// uniform presence checks. Bullets keep only non-blank trimmed strings in
// input order; if none survive, Bullets stays nil rather than an empty
// slice, distinguishing "no bullets" from "bullets not yet filled".
func NewEntryItem(f EntryFields) Item {
	e := EntryItem{
		BoldTitle:      strings.TrimSpace(f.BoldTitle),
		BoldDate:       strings.TrimSpace(f.BoldDate),
		SecondaryTitle: strings.TrimSpace(f.SecondaryTitle),
		SecondaryText:  strings.TrimSpace(f.SecondaryText),
	}
	for _, b := range f.Bullets {
		if t := strings.TrimSpace(b); t != "" {
			e.Bullets = append(e.Bullets, t)
		}
	}
	return Item{Kind: KindEntry, Entry: &e}
}

// NewParagraphItem builds a paragraph item with the raw content as given; an
// empty string is permitted and renders as an empty line.
func NewParagraphItem(text string) Item {
	return Item{Kind: KindParagraph, Paragraph: &ParagraphItem{Content: text}}
}
