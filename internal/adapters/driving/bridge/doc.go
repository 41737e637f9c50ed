// Package bridge provides the JSON message surface host applications call
// into. A host runtime (a WebView shell, a plugin channel, an FFI layer)
// sends a method name and a JSON payload; the bridge decodes it, drives
// the engine and returns a JSON envelope.
//
// Payload field names follow the host-side convention (camelCase), so a
// JavaScript caller can pass its objects through unchanged. Errors never
// escape as Go errors: every failure is folded into the envelope with a
// stable machine-readable code.
package bridge
