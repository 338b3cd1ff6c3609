// Package session owns the live resume document for the lifetime of one
// server session. Mutations go through the model's copy-on-write operations,
// so every snapshot handed out stays internally consistent no matter what is
// appended afterwards.
package session

import (
	"log/slog"
	"sync"

	"github.com/zatif/resumeforge/internal/resume"
)

// Watcher is notified with the new document value after every mutation.
// Watchers run synchronously on the mutating goroutine and must not block.
type Watcher func(resume.Document)

// Store holds the current document and fans mutations out to watchers.
type Store struct {
	mu       sync.RWMutex
	doc      resume.Document
	watchers []Watcher
	log      *slog.Logger
}

func New(seed resume.Document, log *slog.Logger) *Store {
	return &Store{doc: seed, log: log}
}

// Snapshot returns the current document value. The value never changes after
// being returned; renderers may hold it for as long as they need.
func (s *Store) Snapshot() resume.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Watch registers a callback invoked after every successful mutation.
func (s *Store) Watch(w Watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, w)
}

// AddSection appends a section and returns the new document.
func (s *Store) AddSection(sec resume.Section) resume.Document {
	s.mu.Lock()
	s.doc = s.doc.AppendSection(sec)
	doc := s.doc
	watchers := s.watchers
	s.mu.Unlock()

	s.log.Info("section added", "id", sec.ID, "title", sec.Title)
	notify(watchers, doc)
	return doc
}

// AddItem appends an item to the named section. Unknown section IDs leave
// the document untouched and return resume.ErrSectionNotFound.
func (s *Store) AddItem(sectionID string, item resume.Item) (resume.Document, error) {
	s.mu.Lock()
	doc, err := s.doc.AppendItem(sectionID, item)
	if err != nil {
		s.mu.Unlock()
		return doc, err
	}
	s.doc = doc
	watchers := s.watchers
	s.mu.Unlock()

	s.log.Info("item added", "section", sectionID, "kind", item.Kind)
	notify(watchers, doc)
	return doc, nil
}

func notify(watchers []Watcher, doc resume.Document) {
	for _, w := range watchers {
		w(doc)
	}
}
