package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind     NodeKind
		expected string
	}{
		{ElementNode, "Element"},
		{TextNode, "Text"},
		{NodeKind(99), "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.kind.String())
	}
}

func TestElAttributesAndChildren(t *testing.T) {
	n := Div(
		ID("root"),
		Class("a", "b"),
		Class("c"),
		Data("js-tabs", ""),
		nil,
		Attr{},
		Button("One"),
		[]*Node{Span("x"), nil},
	)

	v, ok := n.Attribute("id")
	require.True(t, ok)
	assert.Equal(t, "root", v)
	assert.Equal(t, []string{"a", "b", "c"}, n.Classes())
	assert.True(t, n.HasAttribute("data-js-tabs"))
	require.Len(t, n.Children, 2)
	assert.Same(t, n, n.Children[0].Parent())
	assert.Equal(t, "One", n.Children[0].TextContent())
	assert.Equal(t, "Onex", n.TextContent())
	assert.Equal(t, []string{"class", "data-js-tabs", "id"}, n.AttributeNames())
}

func TestToggleClass(t *testing.T) {
	n := Button(Class("tab", "is-active", "wide"))

	n.ToggleClass("is-active", false)
	assert.Equal(t, []string{"tab", "wide"}, n.Classes())

	n.ToggleClass("is-active", true)
	assert.Equal(t, []string{"tab", "wide", "is-active"}, n.Classes())

	n.ToggleClass("is-active", true)
	assert.Equal(t, []string{"tab", "wide", "is-active"}, n.Classes())

	solo := Button(Class("is-active"))
	solo.ToggleClass("is-active", false)
	assert.False(t, solo.HasAttribute("class"))
}

func TestSetAttributeRecordsPatchesOnlyOnChange(t *testing.T) {
	btn := Button()
	doc := NewDocument(Div(btn))

	btn.SetAttribute("aria-selected", "true")
	btn.SetAttribute("aria-selected", "true")
	btn.SetAttribute("tabindex", "0")
	btn.RemoveAttribute("tabindex")
	btn.RemoveAttribute("tabindex")

	patches := doc.TakePatches()
	require.Len(t, patches, 3)
	assert.Equal(t, Patch{Op: PatchSetAttr, HID: "h2", Key: "aria-selected", Value: "true"}, patches[0])
	assert.Equal(t, Patch{Op: PatchSetAttr, HID: "h2", Key: "tabindex", Value: "0"}, patches[1])
	assert.Equal(t, Patch{Op: PatchRemoveAttr, HID: "h2", Key: "tabindex"}, patches[2])
	assert.Empty(t, doc.TakePatches())
}

func TestDetachedNodesRecordNothing(t *testing.T) {
	n := Button()
	n.SetAttribute("tabindex", "-1")
	v, _ := n.Attribute("tabindex")
	assert.Equal(t, "-1", v)
	assert.Nil(t, n.Document())
}

func TestTextNodesIgnoreAttributes(t *testing.T) {
	n := Text("hello")
	n.SetAttribute("id", "x")
	assert.False(t, n.HasAttribute("id"))
	assert.Equal(t, "hello", n.TextContent())
}

func TestPatchOpString(t *testing.T) {
	assert.Equal(t, "SetAttr", PatchSetAttr.String())
	assert.Equal(t, "RemoveAttr", PatchRemoveAttr.String())
	assert.Equal(t, "Focus", PatchFocus.String())
	assert.Equal(t, "Unknown", PatchOp(0).String())
}
