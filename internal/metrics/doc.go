// Package metrics provides request telemetry for the migration proxy.
//
// It wraps an owned Prometheus registry with three collectors:
//   - proxy_requests_total: per (service, endpoint, status) request counter
//   - proxy_request_duration_seconds: per (service, endpoint) latency histogram
//   - proxy_backend_up: per-backend health gauge fed by the background probe
//
// The registry instance is created at startup and passed by reference into
// the forwarding handler and health checker; nothing in this package uses
// the global default registry.
package metrics
