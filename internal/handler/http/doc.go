// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, server-rendered pages, and the
// JSON suggestions endpoint. Session authentication, logging, and tracing
// concerns are all handled at this layer before requests are forwarded to
// the service layer.
package http
