// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// settings it reads: listen port, request body limit (which bounds uploads) and
// whether the Swagger UI is mounted.
package server
