package render

import (
	"io"
	"net/http"

	"github.com/vango-dev/tabs/pkg/dom"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes after </head> so the browser can start fetching assets.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer. If w implements
// http.Flusher, output is flushed after </head> and at the end.
func NewStreamingRenderer(w io.Writer, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders doc as a full page with incremental flushing.
func (s *StreamingRenderer) RenderPage(doc *dom.Document, page PageConfig) error {
	if err := s.renderPage(s.w, doc, page.withDefaults(), s.flush); err != nil {
		return err
	}
	s.flush()
	return nil
}

func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}

// FlushableWriter counts flushes; useful for testing streaming behavior.
type FlushableWriter struct {
	io.Writer
	FlushCount int
}

// Flush implements http.Flusher.
func (w *FlushableWriter) Flush() {
	w.FlushCount++
}
