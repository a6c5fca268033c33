// Package http implements the HTTP transport of the reference draft server.
//
// It exposes route wiring, the draft-save and health handlers, and the
// middleware chain (request tracing, access logging, response compression)
// applied before requests reach the service layer.
package http
