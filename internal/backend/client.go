// Package backend is the HTTP client for the local index service. All
// transport, status and parse failures surface as ErrUnreachable so callers
// treat the backend as a single online/offline collaborator.
package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrUnreachable wraps every network-level failure: connection errors,
// timeouts, non-2xx responses and undecodable bodies.
var ErrUnreachable = errors.New("backend unreachable")

// Client talks to the index service
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Health probes GET /; any 2xx means the backend is online
func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/", nil, nil)
}

// do issues a request and decodes a JSON body into out when out is non-nil
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}) error {
	body, err := c.raw(ctx, method, path, query)
	if err != nil {
		return err
	}
	defer body.Close()

	if out == nil {
		// Drain so the connection can be reused
		io.Copy(io.Discard, body)
		return nil
	}
	if err := decodeJSON(body, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrUnreachable, path, err)
	}
	return nil
}

// raw issues a request and returns the response body for 2xx responses
func (c *Client) raw(ctx context.Context, method, path string, query url.Values) (io.ReadCloser, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", ErrUnreachable, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s %s returned %s", ErrUnreachable, method, path, resp.Status)
	}
	return resp.Body, nil
}
