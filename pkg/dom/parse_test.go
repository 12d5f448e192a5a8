package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tabsMarkup = `<!DOCTYPE html>
<html><body>
<div data-js-tabs>
  <div role="tablist">
    <button data-js-tabs-button class="tab">One</button>
    <button data-js-tabs-button class="tab is-active">Two</button>
  </div>
  <!-- panels -->
  <div data-js-tabs-content>First</div>
  <div data-js-tabs-content>Second</div>
</div>
</body></html>`

func TestParse(t *testing.T) {
	doc, err := ParseString(tabsMarkup)
	require.NoError(t, err)

	assert.True(t, doc.Doctype())
	assert.Equal(t, "html", doc.Root().Tag)

	roots := doc.QueryAll("data-js-tabs")
	require.Len(t, roots, 1)

	buttons := roots[0].QueryAll("data-js-tabs-button")
	require.Len(t, buttons, 2)
	assert.True(t, buttons[1].HasClass("is-active"))
	assert.Equal(t, "Two", buttons[1].TextContent())
	assert.NotEmpty(t, buttons[1].HID)

	panels := roots[0].QueryAll("data-js-tabs-content")
	require.Len(t, panels, 2)
	assert.Equal(t, "Second", panels[1].TextContent())
}

func TestParseFragmentIsWrapped(t *testing.T) {
	doc, err := ParseString(`<div data-js-tabs></div>`)
	require.NoError(t, err)

	assert.False(t, doc.Doctype())
	root := doc.Root()
	assert.Equal(t, "html", root.Tag)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "body", root.Children[1].Tag)
	assert.Len(t, doc.QueryAll("data-js-tabs"), 1)
}

func TestParseIsDeterministic(t *testing.T) {
	a, err := ParseString(tabsMarkup)
	require.NoError(t, err)
	b, err := ParseString(tabsMarkup)
	require.NoError(t, err)

	ab := a.QueryAll("data-js-tabs-button")
	bb := b.QueryAll("data-js-tabs-button")
	require.Len(t, bb, len(ab))
	for i := range ab {
		assert.Equal(t, ab[i].HID, bb[i].HID)
	}
}
