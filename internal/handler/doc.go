// Package handler implements the forwarding pipeline of the migration
// proxy: per-request backend selection, timed forwarding, response relay,
// and the failure boundary that translates faults into uniform degraded
// responses.
package handler
