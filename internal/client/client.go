// Package client is a thin HTTP client for the UniFi Protect Integration API.
//
// It adds the API key header, honours the TLS verification toggle, and turns
// non-2xx responses into errors carrying the status code and body. It does
// not retry, cache, or interpret payloads beyond choosing between JSON and
// text by content type.
package client

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jpl-au/protect-mcp/internal/config"
)

// BasePath is the API prefix appended to the configured host.
const BasePath = "/proxy/protect/integration/v1"

// APIKeyHeader carries the Protect API key on every request.
const APIKeyHeader = "X-API-KEY"

// DefaultMIMEType is reported for binary responses without a content type.
const DefaultMIMEType = "application/octet-stream"

// ErrRequest wraps failures that happen before a response is received.
var ErrRequest = errors.New("protect request failed")

// StatusError is returned for any response outside the 2xx range.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Body)
}

// Binary is a raw response body with its reported MIME type.
type Binary struct {
	Data     []byte
	MIMEType string
}

// Client talks to one Protect console.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a client from cfg. When cfg.VerifySSL is false the console's
// certificate is not verified, which is the common case for self-signed
// consoles on a LAN.
func New(cfg *config.Config) *Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	if !cfg.VerifySSL {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // operator opt-in
	}
	return &Client{
		baseURL: baseURL(cfg.Host),
		apiKey:  cfg.APIKey,
		http: &http.Client{
			Transport: transport,
			Timeout:   cfg.Timeout,
		},
	}
}

// baseURL accepts a bare host ("10.0.0.1") or a URL with a scheme, the
// latter mainly so tests can point at an httptest server.
func baseURL(host string) string {
	host = strings.TrimRight(host, "/")
	if strings.Contains(host, "://") {
		return host + BasePath
	}
	return "https://" + host + BasePath
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string { return c.baseURL }

// Get fetches path.
func (c *Client) Get(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodGet, path, nil)
}

// Post sends body (may be nil) to path.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPost, path, body)
}

// Patch sends a partial update to path.
func (c *Client) Patch(ctx context.Context, path string, body any) (any, error) {
	return c.Do(ctx, http.MethodPatch, path, body)
}

// Delete removes the resource at path.
func (c *Client) Delete(ctx context.Context, path string) (any, error) {
	return c.Do(ctx, http.MethodDelete, path, nil)
}

// Do performs a JSON request. A nil body sends no payload. JSON responses are
// returned as json.RawMessage; anything else is returned as a string.
func (c *Client) Do(ctx context.Context, method, path string, body any) (any, error) {
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		r = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, r)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, data, err := c.send(req)
	if err != nil {
		return nil, err
	}
	return decode(resp.Header.Get("Content-Type"), data)
}

// GetBinary fetches path and returns the raw body, e.g. a JPEG snapshot.
func (c *Client) GetBinary(ctx context.Context, path string) (*Binary, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, data, err := c.send(req)
	if err != nil {
		return nil, err
	}

	mimeType := resp.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = DefaultMIMEType
	}
	return &Binary{Data: data, MIMEType: mimeType}, nil
}

// PostBinary uploads data verbatim with the given content type.
func (c *Client) PostBinary(ctx context.Context, path string, data []byte, contentType string) (any, error) {
	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, body, err := c.send(req)
	if err != nil {
		return nil, err
	}
	return decode(resp.Header.Get("Content-Type"), body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrRequest, method, path, err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	return req, nil
}

// send executes req and reads the whole body. Non-2xx statuses become a
// *StatusError carrying the response text.
func (c *Client) send(req *http.Request) (*http.Response, []byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s %s: %w", ErrRequest, req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: read response: %w", ErrRequest, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, nil, &StatusError{Code: resp.StatusCode, Body: string(data)}
	}
	return resp, data, nil
}

// decode keeps JSON as raw bytes so key order is preserved when the payload
// is pretty-printed for the client. Empty JSON bodies decode to nil.
func decode(contentType string, data []byte) (any, error) {
	if !strings.Contains(contentType, "application/json") {
		return string(data), nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON response", ErrRequest)
	}
	return json.RawMessage(data), nil
}
