// Package backend implements outbound request forwarding to upstream
// services. It defines the immutable Target identity and a timeout-bounded
// Client that relays responses byte-for-byte.
package backend
