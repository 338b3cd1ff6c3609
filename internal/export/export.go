// Package export is the boundary between the renderers and the outside
// world: it dispatches a document snapshot to the right renderer, guards
// against concurrent exports of the same format, and wraps the resulting
// bytes with the filename and content type the download needs.
package export

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/zatif/resumeforge/internal/render"
	"github.com/zatif/resumeforge/internal/resume"
)

var (
	// ErrInFlight is returned while an export of the same format is running.
	ErrInFlight = errors.New("export already in flight")
	// ErrUnknownFormat is returned for formats no renderer handles.
	ErrUnknownFormat = errors.New("unknown export format")
)

// Format names an export target.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

var contentTypes = map[Format]string{
	FormatPDF:  "application/pdf",
	FormatDOCX: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Artifact is a finished export: the bytes plus what a save collaborator
// needs to hand them to the user. Either the full artifact is produced or
// none is; there is no partial output.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Exporter runs one export per format at a time. The renderers themselves
// carry no reentrancy guard; repeat triggers are rejected here.
type Exporter struct {
	mu       sync.Mutex
	inflight map[Format]bool
	log      *slog.Logger
}

func New(log *slog.Logger) *Exporter {
	return &Exporter{
		inflight: make(map[Format]bool),
		log:      log,
	}
}

// Export renders the given snapshot into the requested format. Failures are
// returned to the caller and leave the document and the in-flight state
// clean, so the export can be retried immediately.
func (e *Exporter) Export(doc resume.Document, format Format) (Artifact, error) {
	if _, ok := contentTypes[format]; !ok {
		return Artifact{}, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	e.mu.Lock()
	if e.inflight[format] {
		e.mu.Unlock()
		return Artifact{}, fmt.Errorf("%s: %w", format, ErrInFlight)
	}
	e.inflight[format] = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.inflight[format] = false
		e.mu.Unlock()
	}()

	r, err := render.ForFormat(string(format))
	if err != nil {
		return Artifact{}, err
	}

	start := time.Now()
	data, err := r.Render(doc)
	if err != nil {
		e.log.Error("export failed", "format", format, "error", err)
		return Artifact{}, fmt.Errorf("export %s: %w", format, err)
	}

	e.log.Info("export complete",
		"format", format,
		"bytes", len(data),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return Artifact{
		Filename:    render.ExportFilename(doc.Name, string(format)),
		ContentType: contentTypes[format],
		Data:        data,
	}, nil
}
