package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Result carries an upstream response exactly as the backend produced it.
// The proxy never re-encodes or reinterprets any of these fields.
type Result struct {
	StatusCode  int
	Body        []byte
	ContentType string
}

// TransportError reports an outbound call that could not complete:
// connection refused, timeout, DNS failure, or an unreadable response.
type TransportError struct {
	Service string
	Path    string
	Err     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("backend %s unreachable on %s: %v", e.Service, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client performs single outbound GET calls against backend targets.
// The underlying HTTP client is bounded by a timeout so one slow backend
// cannot pin request workers indefinitely.
type Client struct {
	http *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
	}
}

// Forward issues one GET to target's base address joined with path and
// returns the raw status, body and content type. Any failure to complete
// the call is returned as a *TransportError wrapping the cause.
func (c *Client) Forward(ctx context.Context, target *Target, path string) (*Result, error) {
	requestURL := target.BaseURL().ResolveReference(&url.URL{Path: path})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", target.Name(), err)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Service: target.Name(), Path: path, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &TransportError{Service: target.Name(), Path: path, Err: err}
	}

	return &Result{
		StatusCode:  res.StatusCode,
		Body:        body,
		ContentType: res.Header.Get("Content-Type"),
	}, nil
}
