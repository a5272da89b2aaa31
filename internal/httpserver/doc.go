// Package httpserver wraps the standard http.Server with listen-address
// validation, sane timeouts, and graceful shutdown.
package httpserver
