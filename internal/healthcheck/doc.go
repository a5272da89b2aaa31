// Package healthcheck probes upstream backends in the background and feeds
// the per-backend health gauge. It is observability only: the routing path
// does not depend on probe results.
package healthcheck
