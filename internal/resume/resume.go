// Package resume defines the canonical resume document model: a Document of
// ordered Sections, each holding ordered Items. All mutation is expressed as
// copy-on-write operations that return a new Document value, so any holder of
// a prior snapshot keeps a consistent, unchanged view.
package resume

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrEmptyTitle is returned when a section title trims to nothing.
	ErrEmptyTitle = errors.New("section title is empty")
	// ErrSectionNotFound is returned when an item append names an unknown section.
	ErrSectionNotFound = errors.New("section not found")
)

// Contact holds the optional header contact fields. An empty string means the
// field is absent and is omitted from every rendering.
type Contact struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// ItemKind tags the two Item variants.
type ItemKind string

const (
	KindParagraph ItemKind = "paragraph"
	KindEntry     ItemKind = "entry"
)

// ParagraphItem is a free-form block of body text. Content is stored raw; an
// empty string is permitted and renders as an empty line.
type ParagraphItem struct {
	Content string `json:"content"`
}

// EntryItem is the structured variant used for jobs, degrees and the like.
// Every field is optional; an absent string field is "", absent bullets are a
// nil slice (distinct from an empty one).
type EntryItem struct {
	BoldTitle      string   `json:"boldTitle,omitempty"`
	BoldDate       string   `json:"boldDate,omitempty"`
	SecondaryTitle string   `json:"secondaryTitle,omitempty"`
	SecondaryText  string   `json:"secondaryText,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
}

// HasBoldLine reports whether the bold title/date line renders at all.
func (e EntryItem) HasBoldLine() bool { return e.BoldTitle != "" || e.BoldDate != "" }

// HasSecondaryLine reports whether the secondary title/text line renders.
func (e EntryItem) HasSecondaryLine() bool { return e.SecondaryTitle != "" || e.SecondaryText != "" }

// Item is a tagged union over the paragraph and entry variants. Exactly one
// of the variant pointers is non-nil, matching Kind; renderers must branch on
// Kind and never inspect the other variant's fields.
type Item struct {
	Kind      ItemKind
	Paragraph *ParagraphItem
	Entry     *EntryItem
}

// itemJSON is the flattened wire form of the union. Content is a pointer so
// a paragraph with empty content survives a round trip while entry items
// omit the field entirely.
type itemJSON struct {
	Kind           ItemKind `json:"kind"`
	Content        *string  `json:"content,omitempty"`
	BoldTitle      string   `json:"boldTitle,omitempty"`
	BoldDate       string   `json:"boldDate,omitempty"`
	SecondaryTitle string   `json:"secondaryTitle,omitempty"`
	SecondaryText  string   `json:"secondaryText,omitempty"`
	Bullets        []string `json:"bullets,omitempty"`
}

// MarshalJSON flattens the active variant next to the kind tag.
func (it Item) MarshalJSON() ([]byte, error) {
	out := itemJSON{Kind: it.Kind}
	switch it.Kind {
	case KindParagraph:
		if it.Paragraph != nil {
			out.Content = &it.Paragraph.Content
		}
	case KindEntry:
		if it.Entry != nil {
			out.BoldTitle = it.Entry.BoldTitle
			out.BoldDate = it.Entry.BoldDate
			out.SecondaryTitle = it.Entry.SecondaryTitle
			out.SecondaryText = it.Entry.SecondaryText
			out.Bullets = it.Entry.Bullets
		}
	default:
		return nil, fmt.Errorf("unknown item kind %q", it.Kind)
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores the tagged union, rejecting unknown kinds.
func (it *Item) UnmarshalJSON(data []byte) error {
	var in itemJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case KindParagraph:
		p := ParagraphItem{}
		if in.Content != nil {
			p.Content = *in.Content
		}
		*it = Item{Kind: KindParagraph, Paragraph: &p}
	case KindEntry:
		*it = Item{Kind: KindEntry, Entry: &EntryItem{
			BoldTitle:      in.BoldTitle,
			BoldDate:       in.BoldDate,
			SecondaryTitle: in.SecondaryTitle,
			SecondaryText:  in.SecondaryText,
			Bullets:        in.Bullets,
		}}
	default:
		return fmt.Errorf("unknown item kind %q", in.Kind)
	}
	return nil
}

// Section is a titled, identified group of items. ID is derived once at
// creation from the title and never recomputed.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Document is the full resume: name, contact and ordered sections.
type Document struct {
	Name     string    `json:"name"`
	Contact  Contact   `json:"contact"`
	Sections []Section `json:"sections"`
}

// AppendSection returns a new Document with sec appended. The receiver and
// its sections are never mutated; the sections slice is reallocated so later
// appends cannot alias the old backing array.
func (d Document) AppendSection(sec Section) Document {
	out := d
	sections := make([]Section, len(d.Sections), len(d.Sections)+1)
	copy(sections, d.Sections)
	out.Sections = append(sections, sec)
	return out
}

// AppendItem returns a new Document with item appended to the section whose
// ID equals sectionID. Unknown IDs return the document unchanged together
// with ErrSectionNotFound; callers are expected to have validated the ID.
func (d Document) AppendItem(sectionID string, item Item) (Document, error) {
	idx := -1
	for i := range d.Sections {
		if d.Sections[i].ID == sectionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return d, fmt.Errorf("append item to %q: %w", sectionID, ErrSectionNotFound)
	}

	out := d
	sections := make([]Section, len(d.Sections))
	copy(sections, d.Sections)

	target := sections[idx]
	items := make([]Item, len(target.Items), len(target.Items)+1)
	copy(items, target.Items)
	target.Items = append(items, item)
	sections[idx] = target

	out.Sections = sections
	return out, nil
}

// FindSection returns the section with the given ID, if any.
func (d Document) FindSection(id string) (Section, bool) {
	for _, s := range d.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}
