// Package dom provides the server-held document tree that tab groups operate on.
//
// A Document owns a tree of Nodes parsed from host markup (or built with the
// element helpers). Every element receives a hydration ID (HID) in document
// order, which links server nodes to the browser DOM.
//
// # Core Types
//
// Node is an element or text node. Elements carry attributes, a class list,
// children and event listeners. Document tracks the focused element and keeps
// a journal of mutations.
//
// # Queries
//
// Markup contracts are attribute based, so queries match attribute presence:
//
//	roots := doc.QueryAll("data-js-tabs")
//	buttons := roots[0].QueryAll("data-js-tabs-button")
//
// # Events
//
// Listeners are bound per node and events bubble from the target up to the
// root, the way browser key-down and click events do:
//
//	root.AddEventListener(dom.EventKeyDown, func(ev *dom.Event) { ... })
//	doc.Dispatch(button, &dom.Event{Type: dom.EventKeyDown, Code: "ArrowRight"})
//
// # Patches
//
// Attribute changes and focus moves on attached nodes are recorded as Patch
// values. TakePatches drains them so the caller can ship them to the client.
package dom
