package dom

import "fmt"

// Document owns a node tree, its hydration IDs, focus state and patch journal.
//
// A Document is not safe for concurrent use. Callers serialize access the way
// a browser event loop does.
type Document struct {
	root    *Node
	byHID   map[string]*Node
	active  *Node
	patches []Patch
	counter uint32
	doctype bool
}

// NewDocument attaches root to a new Document and assigns HIDs ("h1", "h2",
// ...) to every element in document order.
func NewDocument(root *Node) *Document {
	d := &Document{
		root:  root,
		byHID: make(map[string]*Node),
	}
	d.attach(root, nil)
	return d
}

func (d *Document) attach(n *Node, parent *Node) {
	if n == nil {
		return
	}
	n.parent = parent
	n.doc = d
	if n.Kind == ElementNode {
		d.counter++
		n.HID = fmt.Sprintf("h%d", d.counter)
		d.byHID[n.HID] = n
	}
	for _, c := range n.Children {
		d.attach(c, n)
	}
}

// Root returns the document's root node.
func (d *Document) Root() *Node {
	return d.root
}

// Doctype reports whether the source markup declared a doctype.
func (d *Document) Doctype() bool {
	return d.doctype
}

// ByHID returns the element with the given hydration ID.
func (d *Document) ByHID(hid string) (*Node, bool) {
	n, ok := d.byHID[hid]
	return n, ok
}

// QueryAll returns every element in the document carrying the attribute,
// in document order, including the root.
func (d *Document) QueryAll(attr string) []*Node {
	if d.root == nil {
		return nil
	}
	var out []*Node
	if d.root.Kind == ElementNode && d.root.HasAttribute(attr) {
		out = append(out, d.root)
	}
	return append(out, d.root.QueryAll(attr)...)
}

// Focus moves input focus to n. A Focus patch is recorded even when n already
// holds focus, since pointer input can move focus on the client unobserved.
func (d *Document) Focus(n *Node) {
	if n == nil || n.doc != d {
		return
	}
	d.active = n
	n.record(Patch{Op: PatchFocus, HID: n.HID})
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Node {
	return d.active
}

// Dispatch delivers ev to target's listeners and then to each ancestor's,
// stopping early if a listener calls StopPropagation.
func (d *Document) Dispatch(target *Node, ev *Event) {
	if target == nil || ev == nil {
		return
	}
	ev.Target = target
	for cur := target; cur != nil; cur = cur.parent {
		listeners := cur.listeners[ev.Type]
		if len(listeners) == 0 {
			continue
		}
		ev.CurrentTarget = cur
		for _, fn := range listeners {
			fn(ev)
		}
		if ev.stopped {
			break
		}
	}
	ev.CurrentTarget = nil
}

// Patches returns the recorded patches without draining them.
func (d *Document) Patches() []Patch {
	return d.patches
}

// TakePatches returns and clears the recorded patches.
func (d *Document) TakePatches() []Patch {
	p := d.patches
	d.patches = nil
	return p
}
