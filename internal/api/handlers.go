package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/zatif/resumeforge/internal/export"
	"github.com/zatif/resumeforge/internal/resume"
)

// itemPayload is the wire form of an item coming from the editor forms. The
// forms submit raw field values; trimming and absence rules are applied by
// the model constructors, never here.
type itemPayload struct {
	Kind           string   `json:"kind"`
	Content        string   `json:"content"`
	BoldTitle      string   `json:"boldTitle"`
	BoldDate       string   `json:"boldDate"`
	SecondaryTitle string   `json:"secondaryTitle"`
	SecondaryText  string   `json:"secondaryText"`
	Bullets        []string `json:"bullets"`
}

func buildItem(p itemPayload) (resume.Item, error) {
	switch resume.ItemKind(p.Kind) {
	case resume.KindParagraph:
		return resume.NewParagraphItem(p.Content), nil
	case resume.KindEntry:
		return resume.NewEntryItem(resume.EntryFields{
			BoldTitle:      p.BoldTitle,
			BoldDate:       p.BoldDate,
			SecondaryTitle: p.SecondaryTitle,
			SecondaryText:  p.SecondaryText,
			Bullets:        p.Bullets,
		}), nil
	default:
		return resume.Item{}, fmt.Errorf("unknown item kind %q", p.Kind)
	}
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		jsonError(w, "failed to read request body: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return body, true
}

func (s *Server) handleResumeJSON(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.store.Snapshot())
}

func (s *Server) handleAddSection(w http.ResponseWriter, r *http.Request) {
	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if err := validateBody(sectionSchema, body); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Title string      `json:"title"`
		Item  itemPayload `json:"item"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := buildItem(req.Item)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	sec, err := resume.NewSection(req.Title, item)
	if err != nil {
		if errors.Is(err, resume.ErrEmptyTitle) {
			jsonError(w, "section title must not be empty", http.StatusBadRequest)
			return
		}
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.store.AddSection(sec)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"id":    sec.ID,
		"title": sec.Title,
	})
}

func (s *Server) handleAddItem(w http.ResponseWriter, r *http.Request) {
	sectionID := chi.URLParam(r, "sectionID")

	body, ok := s.readBody(w, r)
	if !ok {
		return
	}
	if err := validateBody(itemSchema, body); err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req struct {
		Item itemPayload `json:"item"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := buildItem(req.Item)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if _, err := s.store.AddItem(sectionID, item); err != nil {
		if errors.Is(err, resume.ErrSectionNotFound) {
			jsonError(w, fmt.Sprintf("section %q not found", sectionID), http.StatusNotFound)
			return
		}
		jsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"section": sectionID})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := export.Format(strings.ToLower(chi.URLParam(r, "format")))

	artifact, err := s.exporter.Export(s.store.Snapshot(), format)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrUnknownFormat):
			jsonError(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, export.ErrInFlight):
			jsonError(w, err.Error(), http.StatusConflict)
		default:
			jsonError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Write(artifact.Data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
