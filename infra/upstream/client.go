package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

// Error is a failed upstream call. A Status > 0 means the upstream
// answered with a non-2xx response and Body holds its raw payload for
// verbatim passthrough. Status == 0 means the call never produced an
// HTTP response (DNS, connection refused, timeout).
type Error struct {
	Upstream string
	Status   int
	Body     []byte
	cause    error
	timeout  bool
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("upstream %s responded with status %d", e.Upstream, e.Status)
	}
	return fmt.Sprintf("upstream %s unreachable: %v", e.Upstream, e.cause)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Timeout reports whether the failure was a timed-out call rather than
// an immediate network error or an HTTP-level rejection.
func (e *Error) Timeout() bool {
	return e.timeout
}

// Unreachable reports whether the upstream never answered at all.
func (e *Error) Unreachable() bool {
	return e.Status == 0
}

// Response is a successful (2xx) upstream response.
type Response struct {
	Status int
	Body   []byte
}

func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// Passthrough exposes the status and raw body so the edge can forward
// an upstream response verbatim.
func (r *Response) Passthrough() (int, []byte) {
	return r.Status, r.Body
}

// Client performs JSON HTTP calls against a single named upstream.
type Client struct {
	name       string
	baseURL    string
	httpClient *http.Client
}

func NewClient(name, baseURL string, timeout time.Duration) *Client {
	return &Client{
		name:    name,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do issues one HTTP call. path is relative to the upstream's base URL
// and body, when non-nil, is serialized as JSON. Non-2xx responses come
// back as *Error, never as a Response.
func (c *Client) Do(ctx context.Context, method, path string, headers map[string]string, body any) (*Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		if value != "" {
			req.Header.Set(key, value)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{
			Upstream: c.name,
			cause:    err,
			timeout:  isTimeout(err),
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Upstream: c.name, cause: err, timeout: isTimeout(err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{
			Upstream: c.name,
			Status:   resp.StatusCode,
			Body:     raw,
		}
	}

	return &Response{Status: resp.StatusCode, Body: raw}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
