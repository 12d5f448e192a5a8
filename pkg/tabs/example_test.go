package tabs_test

import (
	"fmt"
	"testing"

	"github.com/vango-dev/tabs/pkg/dom"
	"github.com/vango-dev/tabs/pkg/tabs"
	"github.com/vango-dev/tabs/pkg/tabstest"
)

func ExampleNewCollection() {
	doc, _ := dom.ParseString(`
<div data-js-tabs>
  <button data-js-tabs-button>Overview</button>
  <button data-js-tabs-button class="is-active">Specs</button>
  <div data-js-tabs-content>...</div>
  <div data-js-tabs-content>...</div>
</div>`)

	coll, err := tabs.NewCollection(doc)
	if err != nil {
		panic(err)
	}
	g := coll.Group(0)
	fmt.Println("active:", g.Active())

	g.Next()
	fmt.Println("after next:", g.Active())
	fmt.Println("focused:", doc.ActiveElement().TextContent())
	// Output:
	// active: 1
	// after next: 0
	// focused: Overview
}

func TestNestedGroupsOuterSeesKeysFromInner(t *testing.T) {
	p := tabstest.NewPage(t, `
<div data-js-tabs id="outer">
  <button data-js-tabs-button>A</button>
  <button data-js-tabs-button>B</button>
  <div data-js-tabs-content>
    <div data-js-tabs id="inner">
      <button data-js-tabs-button>x</button>
      <button data-js-tabs-button>y</button>
      <div data-js-tabs-content>x</div>
      <div data-js-tabs-content>y</div>
    </div>
  </div>
  <div data-js-tabs-content>b</div>
</div>`)

	// The outer root's query also matches the inner buttons and panels, so
	// the outer group has four tabs and a key-down inside the inner group
	// bubbles to both.
	outer, inner := p.Group(t, 0), p.Group(t, 1)
	if outer.Len() != 4 || inner.Len() != 2 {
		t.Fatalf("outer=%d inner=%d, want 4 and 2", outer.Len(), inner.Len())
	}

	p.Press(t, inner, "End", false)
	if inner.Active() != 1 || outer.Active() != 3 {
		t.Errorf("inner=%d outer=%d, want 1 and 3", inner.Active(), outer.Active())
	}
	// Both groups end on the same button.
	tabstest.ExpectFocused(t, p, inner.Buttons()[1])
}
