package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultTimeoutSeconds = 60
	defaultUserAgent      = "macrodata/0.1"

	// leading bytes of a response body kept for diagnostics
	snippetLimit = 512
)

// TransportError reports a failed HTTP round trip: a connection failure or a
// non-2xx status. It carries the request URL and the leading bytes of the
// response body so the caller can diagnose the upstream without replaying the
// request.
type TransportError struct {
	URL    string
	Status string
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch: request failed url=%s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("fetch: request failed (%s) url=%s: %s", e.Status, e.URL, e.Body)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ParseError reports a 2xx response whose body could not be decoded as the
// expected JSON shape.
type ParseError struct {
	URL     string
	Snippet string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("fetch: unparseable response url=%s: %v: %s", e.URL, e.Err, e.Snippet)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Client is a thin GET helper shared by the adapters: one flat timeout per
// request, no retries. Retry and backoff policy belongs to the caller.
type Client struct {
	http      *http.Client
	userAgent string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout == 0 {
		timeout = defaultTimeoutSeconds * time.Second
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		http:      &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Get performs a single GET and returns the body. Non-2xx statuses and
// connection failures produce a *TransportError.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	uri := endpoint
	if len(params) > 0 {
		uri = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: uri, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: uri, Status: resp.Status, Err: err}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &TransportError{URL: uri, Status: resp.Status, Body: Snippet(body)}
	}

	return body, nil
}

// GetJSON performs a GET and decodes the body into dest. The raw body is
// returned alongside for diagnostics. Decode failures produce a *ParseError.
func (c *Client) GetJSON(ctx context.Context, endpoint string, params url.Values, dest any) ([]byte, error) {
	body, err := c.Get(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		uri := endpoint
		if len(params) > 0 {
			uri = endpoint + "?" + params.Encode()
		}
		return body, &ParseError{URL: uri, Snippet: Snippet(body), Err: err}
	}
	return body, nil
}

// Snippet trims a body to its leading bytes for error messages.
func Snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > snippetLimit {
		s = s[:snippetLimit]
	}
	return s
}
