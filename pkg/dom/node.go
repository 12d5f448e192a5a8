package dom

import (
	"sort"
	"strings"
)

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	ElementNode NodeKind = iota // <div>, <button>, etc.
	TextNode                    // Plain text node
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case ElementNode:
		return "Element"
	case TextNode:
		return "Text"
	default:
		return "Unknown"
	}
}

// Node is a node of the document tree.
type Node struct {
	Kind     NodeKind // Node type
	Tag      string   // Element tag name (e.g., "div")
	Text     string   // For TextNode
	HID      string   // Hydration ID (assigned when attached to a Document)
	Children []*Node  // Child nodes

	attrs     map[string]string
	listeners map[string][]Listener
	parent    *Node
	doc       *Document
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Document returns the document this node is attached to, if any.
func (n *Node) Document() *Document {
	return n.doc
}

// AppendChild appends child to n's children.
// Nodes appended after the document was created do not receive a HID.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = n
	n.Children = append(n.Children, child)
}

// Attribute returns the value of an attribute and whether it is present.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(key string) bool {
	_, ok := n.attrs[key]
	return ok
}

// AttributeNames returns the attribute names in sorted order.
func (n *Node) AttributeNames() []string {
	keys := make([]string, 0, len(n.attrs))
	for k := range n.attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetAttribute sets an attribute value. Setting the current value is a no-op
// and records no patch.
func (n *Node) SetAttribute(key, value string) {
	if n.Kind != ElementNode || key == "" {
		return
	}
	if old, ok := n.attrs[key]; ok && old == value {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
	n.record(Patch{Op: PatchSetAttr, HID: n.HID, Key: key, Value: value})
}

// RemoveAttribute removes an attribute if present.
func (n *Node) RemoveAttribute(key string) {
	if _, ok := n.attrs[key]; !ok {
		return
	}
	delete(n.attrs, key)
	n.record(Patch{Op: PatchRemoveAttr, HID: n.HID, Key: key})
}

// Classes returns the element's class list.
func (n *Node) Classes() []string {
	return strings.Fields(n.attrs["class"])
}

// HasClass reports whether the class list contains name.
func (n *Node) HasClass(name string) bool {
	for _, c := range n.Classes() {
		if c == name {
			return true
		}
	}
	return false
}

// ToggleClass adds name to the class list when on is true and removes it
// otherwise. The order of the remaining classes is preserved.
func (n *Node) ToggleClass(name string, on bool) {
	if name == "" || n.HasClass(name) == on {
		return
	}
	classes := n.Classes()
	if on {
		classes = append(classes, name)
	} else {
		kept := classes[:0]
		for _, c := range classes {
			if c != name {
				kept = append(kept, c)
			}
		}
		classes = kept
	}
	if len(classes) == 0 {
		n.RemoveAttribute("class")
		return
	}
	n.SetAttribute("class", strings.Join(classes, " "))
}

// TextContent returns the concatenated text of n and its descendants.
func (n *Node) TextContent() string {
	if n.Kind == TextNode {
		return n.Text
	}
	var b strings.Builder
	n.Walk(func(c *Node) bool {
		if c.Kind == TextNode {
			b.WriteString(c.Text)
		}
		return true
	})
	return b.String()
}

// Walk visits n and its descendants in document order. Returning false from
// fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// record appends a patch to the owning document's journal.
func (n *Node) record(p Patch) {
	if n.doc == nil || n.HID == "" {
		return
	}
	n.doc.patches = append(n.doc.patches, p)
}
