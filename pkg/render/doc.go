// Package render serializes a dom.Document to HTML.
//
// Output is deterministic: attributes are written in sorted order, every
// element carries its hydration ID in data-hid, and elements with listeners
// carry data-on-<event> markers so the thin client knows which events to
// forward.
//
// # Basic Usage
//
//	renderer := render.NewRenderer(render.RendererConfig{})
//	html, err := renderer.RenderToString(doc.Root())
//
// # Full Page Rendering
//
// RenderPage writes the whole document and injects the client script tag
// before </body>:
//
//	err := renderer.RenderPage(w, doc, render.PageConfig{})
//
// # Streaming
//
// StreamingRenderer flushes after </head> and at the end of the page.
//
// # Security
//
// Text and attribute values are escaped. Children of script and style are
// raw text and written as-is, so only trusted markup should be rendered.
package render
