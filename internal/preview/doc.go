// Package preview serves a rendered document over HTTP and reloads
// connected browsers when the document file changes.
//
// Routes:
//
//	GET /              the rendered page with the reload script injected
//	GET /captures      captured elements as JSON, keyed by element path
//	GET /metrics       Prometheus metrics (when enabled)
//	GET /_gee/reload   WebSocket used by the reload script
//
// A document that fails to build keeps the last good page in place and
// shows the error in an overlay until the next successful build.
package preview
