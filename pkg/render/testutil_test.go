package render

import (
	"testing"

	"github.com/vango-dev/tabs/pkg/dom"
)

func mustParse(t *testing.T, markup string) *dom.Document {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

func mustRender(t *testing.T, r *Renderer, n *dom.Node) string {
	t.Helper()
	html, err := r.RenderToString(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}
