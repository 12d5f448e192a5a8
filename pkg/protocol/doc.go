// Package protocol implements the binary wire format between the thin
// client and the server.
//
// Every WebSocket message is one frame:
//
//	[type:1][flags:1][length:2 big-endian][payload]
//
// The client sends Event frames (clicks and key-downs addressed by
// hydration ID). The server answers each event with a Patches frame carrying
// the attribute and focus changes it produced, in order. Control frames carry
// ping/pong and close notices; Error frames report rejected input.
//
// Integers inside payloads are unsigned varints (protobuf style) and strings
// are varint-length-prefixed UTF-8. The decoder bounds every length prefix
// and collection count so a malicious client cannot force large allocations.
package protocol
