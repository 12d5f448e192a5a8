// Package server serves host pages with live tab groups.
//
// A page is rendered once with every tab group in its initial state. Each
// browser then opens a WebSocket; the server builds a private copy of the
// document and its tab groups for that connection and replays the client's
// click and key-down events into it. The attribute and focus changes each
// event produces are sent back as one Patches frame.
//
// # Session Lifecycle
//
// Every connection is a Session running three goroutines:
//   - ReadLoop: decodes frames, answers pings, queues events
//   - EventLoop: the only goroutine that touches the session's document
//   - WriteLoop: sends heartbeat pings
//
// Because hydration IDs are assigned in document order and the page bytes
// never change after startup, the IDs in the rendered HTML match the IDs in
// every session's document.
//
// # Observability
//
// Events, activations, patches and sessions are counted in Prometheus
// collectors served at /metrics. Each event runs inside an OpenTelemetry
// span named after its type. Logs go through log/slog with a session_id
// attribute on every session logger.
package server
