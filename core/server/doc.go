// Package server holds the HTTP server configuration.
//
// While the serve command handles the server startup, this package defines the
// listening port and the credentials accepted by the auth middleware.
package server
