package render

import (
	"fmt"
	"io"

	"github.com/vango-dev/tabs/pkg/dom"
)

// Default client endpoints.
const (
	DefaultClientScript  = "/_tabs/client.js"
	DefaultWebSocketPath = "/_tabs/ws"
)

// PageConfig controls the page shell around a document.
type PageConfig struct {
	// ClientScript is the path to the thin client.
	// Defaults to "/_tabs/client.js".
	ClientScript string

	// WebSocketPath is where the client connects.
	// Defaults to "/_tabs/ws".
	WebSocketPath string

	// Title is used only when the document root is not <html> and a shell
	// has to be generated.
	Title string

	// Lang is used only for a generated shell. Defaults to "en".
	Lang string

	// DisableClient omits the client script tag.
	DisableClient bool
}

func (c PageConfig) withDefaults() PageConfig {
	if c.ClientScript == "" {
		c.ClientScript = DefaultClientScript
	}
	if c.WebSocketPath == "" {
		c.WebSocketPath = DefaultWebSocketPath
	}
	if c.Lang == "" {
		c.Lang = "en"
	}
	return c
}

// RenderPage writes doc as a complete HTML page. The client script tag is
// injected before </body>; a document whose root is not <html> is wrapped
// in a generated shell.
func (r *Renderer) RenderPage(w io.Writer, doc *dom.Document, page PageConfig) error {
	return r.renderPage(w, doc, page.withDefaults(), nil)
}

// renderPage is shared with StreamingRenderer; flush runs after </head>.
func (r *Renderer) renderPage(w io.Writer, doc *dom.Document, page PageConfig, flush func()) error {
	if doc == nil || doc.Root() == nil {
		return fmt.Errorf("render: empty document")
	}

	if _, err := io.WriteString(w, "<!DOCTYPE html>\n"); err != nil {
		return err
	}

	root := doc.Root()
	if root.Tag != "html" {
		return r.renderShell(w, root, page, flush)
	}

	injected := false
	r.beforeClose = func(w io.Writer, n *dom.Node) error {
		if n.Tag != "body" || injected {
			return nil
		}
		injected = true
		return renderClientScript(w, page)
	}
	r.afterClose = func(n *dom.Node) {
		if n.Tag == "head" && flush != nil {
			flush()
		}
	}
	defer func() {
		r.beforeClose = nil
		r.afterClose = nil
	}()

	if err := r.RenderToWriter(w, root); err != nil {
		return err
	}
	if !injected {
		return renderClientScript(w, page)
	}
	return nil
}

func (r *Renderer) renderShell(w io.Writer, body *dom.Node, page PageConfig, flush func()) error {
	if _, err := fmt.Fprintf(w, "<html lang=\"%s\"><head><meta charset=\"utf-8\"><title>%s</title></head>",
		escapeAttr(page.Lang), escapeHTML(page.Title)); err != nil {
		return err
	}
	if flush != nil {
		flush()
	}
	if _, err := io.WriteString(w, "<body>"); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, body); err != nil {
		return err
	}
	if err := renderClientScript(w, page); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</body></html>\n")
	return err
}

func renderClientScript(w io.Writer, page PageConfig) error {
	if page.DisableClient {
		return nil
	}
	_, err := fmt.Fprintf(w, `<script src="%s" data-tabs-ws="%s" defer></script>`,
		escapeAttr(page.ClientScript), escapeAttr(page.WebSocketPath))
	return err
}
