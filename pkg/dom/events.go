package dom

import "sort"

// Event types understood by the document.
const (
	EventClick   = "click"
	EventKeyDown = "keydown"
)

// Event is a browser input event replayed against the document.
type Event struct {
	Type  string // "click", "keydown"
	Key   string // Logical key value (e.g., "a", "ArrowLeft")
	Code  string // Physical key code (e.g., "ArrowLeft", "Home")
	Meta  bool   // Command/meta modifier held
	Ctrl  bool
	Shift bool
	Alt   bool

	// Target is the node the event was dispatched to.
	Target *Node

	// CurrentTarget is the node whose listener is running.
	CurrentTarget *Node

	stopped bool
}

// StopPropagation prevents the event from reaching further ancestors.
func (e *Event) StopPropagation() {
	e.stopped = true
}

// Listener handles an event.
type Listener func(*Event)

// AddEventListener registers fn for events of the given type on n.
func (n *Node) AddEventListener(eventType string, fn Listener) {
	if n.Kind != ElementNode || fn == nil {
		return
	}
	if n.listeners == nil {
		n.listeners = make(map[string][]Listener)
	}
	n.listeners[eventType] = append(n.listeners[eventType], fn)
}

// ListenerTypes returns the event types n has listeners for, sorted.
func (n *Node) ListenerTypes() []string {
	if len(n.listeners) == 0 {
		return nil
	}
	types := make([]string, 0, len(n.listeners))
	for t := range n.listeners {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// IsInteractive returns true if this node has event listeners.
func (n *Node) IsInteractive() bool {
	return n != nil && n.Kind == ElementNode && len(n.listeners) > 0
}
