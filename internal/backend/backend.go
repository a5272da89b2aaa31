package backend

import (
	"net/url"
)

// Target identifies one upstream service by name and base address.
// Targets are created at startup and never mutated afterwards.
type Target struct {
	name    string
	baseURL *url.URL
}

func NewTarget(name string, baseURL *url.URL) *Target {
	return &Target{
		name:    name,
		baseURL: baseURL,
	}
}

// Name returns the service name used for metric labels and logs.
func (t *Target) Name() string {
	return t.name
}

// BaseURL returns the base address requests are forwarded to.
func (t *Target) BaseURL() *url.URL {
	return t.baseURL
}
