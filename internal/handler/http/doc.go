// Package http implements the HTTP transport layer of the leave tracker.
//
// It exposes the JSON API under /api, the server-rendered leave page under /
// and the middleware in front of both. Cross-cutting concerns such as request
// tracing, access logging, response compression, session parsing and
// idempotent create are handled in this package before requests are delegated
// to the service layer.
package http
