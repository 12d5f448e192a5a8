package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vango-dev/tabs/pkg/dom"
)

const samplePage = `<!DOCTYPE html>
<html lang="de"><head><title>Tabs</title></head>
<body>
<div data-js-tabs>
  <button data-js-tabs-button>A</button>
  <div data-js-tabs-content>a</div>
</div>
</body></html>`

func TestRenderPageInjectsClientBeforeBodyEnd(t *testing.T) {
	doc := mustParse(t, samplePage)
	var buf bytes.Buffer

	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, doc, PageConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	if !strings.HasPrefix(html, "<!DOCTYPE html>\n<html") {
		t.Errorf("missing doctype, got %q", html[:min(40, len(html))])
	}
	if !strings.Contains(html, `lang="de"`) {
		t.Errorf("source lang should be kept")
	}
	script := `<script src="/_tabs/client.js" data-tabs-ws="/_tabs/ws" defer></script></body>`
	if !strings.Contains(html, script) {
		t.Errorf("client script not injected before </body>: %q", html)
	}
	if strings.Count(html, "<script") != 1 {
		t.Errorf("expected exactly one script tag")
	}
}

func TestRenderPageHIDsSurviveReparse(t *testing.T) {
	doc := mustParse(t, samplePage)
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, doc, PageConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	again := mustParse(t, buf.String())
	count := 0
	again.Root().Walk(func(n *dom.Node) bool {
		if hid, ok := n.Attribute(HIDAttr); ok {
			count++
			if hid != n.HID {
				t.Errorf("<%s> rendered as %s, reparsed as %s", n.Tag, hid, n.HID)
			}
		}
		return true
	})
	if count == 0 {
		t.Fatal("no hydration IDs rendered")
	}
}

func TestRenderPageShell(t *testing.T) {
	root := dom.Div(dom.Data("js-tabs", ""))
	doc := dom.NewDocument(root)
	var buf bytes.Buffer

	err := NewRenderer(RendererConfig{}).RenderPage(&buf, doc, PageConfig{
		Title:         "A & B",
		ClientScript:  "/c.js",
		WebSocketPath: "/ws",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		`<html lang="en">`,
		`<title>A &amp; B</title>`,
		`<body><div data-js-tabs data-hid="h1"></div><script src="/c.js" data-tabs-ws="/ws" defer></script></body></html>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("missing %q in %q", want, html)
		}
	}
}

func TestRenderPageDisableClient(t *testing.T) {
	doc := mustParse(t, samplePage)
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, doc, PageConfig{DisableClient: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), "<script") {
		t.Errorf("client script should be omitted")
	}
}

func TestRenderPageNilDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer(RendererConfig{}).RenderPage(&buf, nil, PageConfig{}); err == nil {
		t.Error("expected error for nil document")
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	doc := mustParse(t, samplePage)
	var buf bytes.Buffer
	fw := &FlushableWriter{Writer: &buf}

	sr := NewStreamingRenderer(fw, RendererConfig{})
	if err := sr.RenderPage(doc, PageConfig{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fw.FlushCount != 2 {
		t.Errorf("FlushCount = %d, want 2", fw.FlushCount)
	}
	if !strings.Contains(buf.String(), "</body></html>") {
		t.Errorf("incomplete page: %q", buf.String())
	}
}
