package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() (*Node, []*Node) {
	b0 := Button(Data("btn", ""), "A")
	b1 := Button(Data("btn", ""), "B")
	root := Div(Data("group", ""),
		Div(b0, b1),
		Section(Data("panel", ""), "pa"),
	)
	return root, []*Node{b0, b1}
}

func TestNewDocumentAssignsHIDsInDocumentOrder(t *testing.T) {
	root, buttons := sampleTree()
	doc := NewDocument(root)

	assert.Equal(t, "h1", root.HID)
	assert.Equal(t, "h3", buttons[0].HID)
	assert.Equal(t, "h4", buttons[1].HID)

	n, ok := doc.ByHID("h4")
	require.True(t, ok)
	assert.Same(t, buttons[1], n)

	_, ok = doc.ByHID("h99")
	assert.False(t, ok)
}

func TestQueryAll(t *testing.T) {
	root, buttons := sampleTree()
	doc := NewDocument(root)

	assert.Equal(t, buttons, root.QueryAll("data-btn"))
	assert.Equal(t, []*Node{root}, doc.QueryAll("data-group"))
	assert.Empty(t, root.QueryAll("data-group"))
	assert.Same(t, buttons[0], root.Query("data-btn"))
	assert.Nil(t, root.Query("data-missing"))
}

func TestDispatchBubblesToAncestors(t *testing.T) {
	root, buttons := sampleTree()
	doc := NewDocument(root)

	var order []string
	buttons[0].AddEventListener(EventKeyDown, func(ev *Event) {
		order = append(order, "button:"+ev.CurrentTarget.HID)
	})
	root.AddEventListener(EventKeyDown, func(ev *Event) {
		order = append(order, "root:"+ev.CurrentTarget.HID)
		assert.Same(t, buttons[0], ev.Target)
	})
	root.AddEventListener(EventClick, func(ev *Event) {
		order = append(order, "click")
	})

	doc.Dispatch(buttons[0], &Event{Type: EventKeyDown, Code: "Home"})
	assert.Equal(t, []string{"button:h3", "root:h1"}, order)
	assert.True(t, root.IsInteractive())
	assert.Equal(t, []string{"click", "keydown"}, root.ListenerTypes())
}

func TestStopPropagation(t *testing.T) {
	root, buttons := sampleTree()
	doc := NewDocument(root)

	reached := false
	buttons[1].AddEventListener(EventClick, func(ev *Event) { ev.StopPropagation() })
	root.AddEventListener(EventClick, func(ev *Event) { reached = true })

	doc.Dispatch(buttons[1], &Event{Type: EventClick})
	assert.False(t, reached)
}

func TestFocusRecordsPatchEveryTime(t *testing.T) {
	root, buttons := sampleTree()
	doc := NewDocument(root)

	assert.Nil(t, doc.ActiveElement())
	doc.Focus(buttons[1])
	doc.Focus(buttons[1])
	doc.Focus(Button())

	assert.Same(t, buttons[1], doc.ActiveElement())
	assert.Equal(t, []Patch{
		{Op: PatchFocus, HID: "h4"},
		{Op: PatchFocus, HID: "h4"},
	}, doc.TakePatches())
}
