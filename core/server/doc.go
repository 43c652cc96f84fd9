// Package server holds the HTTP server configuration and constants.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structures for server settings.
//
// # Configuration
//
// The Config struct defines the bind host and port. Addr assembles them into
// the host:port form consumed by the listener.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
