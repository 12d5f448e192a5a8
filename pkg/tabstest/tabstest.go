package tabstest

import (
	"strings"
	"testing"

	"github.com/vango-dev/tabs/pkg/dom"
	"github.com/vango-dev/tabs/pkg/render"
	"github.com/vango-dev/tabs/pkg/tabs"
)

// Page is a parsed document with its tab groups built.
type Page struct {
	Doc        *dom.Document
	Collection *tabs.Collection

	// Err holds the joined errors of groups that could not be built.
	Err error
}

// NewPage parses markup and builds its tab groups. Patches recorded while
// building are discarded, so the first interaction starts from a clean
// journal. Groups that fail to build are reported through Err, not t.
func NewPage(t testing.TB, markup string, opts ...tabs.Option) *Page {
	t.Helper()
	doc, err := dom.ParseString(markup)
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	coll, err := tabs.NewCollection(doc, opts...)
	if coll == nil {
		t.Fatalf("build tab groups: %v", err)
	}
	doc.TakePatches()
	return &Page{Doc: doc, Collection: coll, Err: err}
}

// Group returns the i-th group, failing the test when there is none.
func (p *Page) Group(t testing.TB, i int) *tabs.Group {
	t.Helper()
	g := p.Collection.Group(i)
	if g == nil {
		t.Fatalf("no tab group %d (page has %d)", i, p.Collection.Len())
	}
	return g
}

// Click dispatches a click on n and returns the patches it produced.
func (p *Page) Click(t testing.TB, n *dom.Node) []dom.Patch {
	t.Helper()
	if n == nil {
		t.Fatal("click on nil node")
	}
	p.Doc.Dispatch(n, &dom.Event{Type: "click"})
	return p.Doc.TakePatches()
}

// ClickTab clicks the i-th button of g.
func (p *Page) ClickTab(t testing.TB, g *tabs.Group, i int) []dom.Patch {
	t.Helper()
	buttons := g.Buttons()
	if i < 0 || i >= len(buttons) {
		t.Fatalf("group has %d buttons, cannot click %d", len(buttons), i)
	}
	return p.Click(t, buttons[i])
}

// Press dispatches a key-down inside g and returns the patches it produced.
// Like a browser, the event targets the focused element when it lies within
// g, and g's root otherwise.
func (p *Page) Press(t testing.TB, g *tabs.Group, code string, meta bool) []dom.Patch {
	t.Helper()
	target := g.Root()
	if focused := p.Doc.ActiveElement(); focused != nil && contains(g.Root(), focused) {
		target = focused
	}
	p.Doc.Dispatch(target, &dom.Event{Type: "keydown", Key: code, Code: code, Meta: meta})
	return p.Doc.TakePatches()
}

// HTML renders the document without the page shell.
func (p *Page) HTML() string {
	html, err := render.NewRenderer(render.RendererConfig{}).RenderToString(p.Doc.Root())
	if err != nil {
		return ""
	}
	return html
}

// ExpectActive asserts that g's active index is want and that the tree
// shows exactly that button and panel as active.
func ExpectActive(t testing.TB, g *tabs.Group, want int) {
	t.Helper()
	if got := g.Active(); got != want {
		t.Errorf("active = %d, want %d", got, want)
	}
	panels := g.Panels()
	class := g.Markers().ActiveClass
	for i, b := range g.Buttons() {
		on := i == want
		if b.HasClass(class) != on {
			t.Errorf("button %d active class = %v, want %v", i, !on, on)
		}
		if v, _ := b.Attribute(tabs.AttrAriaSelected); v != boolString(on) {
			t.Errorf("button %d aria-selected = %q, want %q", i, v, boolString(on))
		}
		wantTab := "-1"
		if on {
			wantTab = "0"
		}
		if v, _ := b.Attribute(tabs.AttrTabIndex); v != wantTab {
			t.Errorf("button %d tabindex = %q, want %q", i, v, wantTab)
		}
		if i < len(panels) && panels[i].HasClass(class) != on {
			t.Errorf("panel %d active class = %v, want %v", i, !on, on)
		}
	}
}

// ExpectFocused asserts that n is the document's active element.
func ExpectFocused(t testing.TB, p *Page, n *dom.Node) {
	t.Helper()
	if got := p.Doc.ActiveElement(); got != n {
		t.Errorf("focused = %s, want %s", describe(got), describe(n))
	}
}

// ExpectFocusPatch asserts that patches end with focus moving to n.
func ExpectFocusPatch(t testing.TB, patches []dom.Patch, n *dom.Node) {
	t.Helper()
	if len(patches) == 0 {
		t.Errorf("no patches, want focus on %s", describe(n))
		return
	}
	last := patches[len(patches)-1]
	if last.Op != dom.PatchFocus || last.HID != n.HID {
		t.Errorf("last patch = %+v, want focus on %s", last, describe(n))
	}
}

// ExpectNoFocusPatch asserts that patches never move focus.
func ExpectNoFocusPatch(t testing.TB, patches []dom.Patch) {
	t.Helper()
	for _, pt := range patches {
		if pt.Op == dom.PatchFocus {
			t.Errorf("unexpected focus patch for %s", pt.HID)
		}
	}
}

// ExpectContains asserts that the rendered document contains expected.
func ExpectContains(t testing.TB, p *Page, expected string) {
	t.Helper()
	html := p.HTML()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectAttribute asserts that the rendered document contains attr="value".
func ExpectAttribute(t testing.TB, p *Page, attr, value string) {
	t.Helper()
	html := p.HTML()
	needle := attr + `="` + value + `"`
	if !strings.Contains(html, needle) {
		t.Errorf("expected attribute %s=%q not found, got:\n%s", attr, value, truncate(html, 500))
	}
}

func contains(root, n *dom.Node) bool {
	for cur := n; cur != nil; cur = cur.Parent() {
		if cur == root {
			return true
		}
	}
	return false
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func describe(n *dom.Node) string {
	if n == nil {
		return "<nil>"
	}
	return "<" + n.Tag + " " + n.HID + ">"
}

// truncate truncates a string to max length with ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
