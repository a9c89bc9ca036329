package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// HeaderAPIKey carries the API key on every authenticated request.
	HeaderAPIKey = "X-API-Key"

	// MIMEApplicationJSON is the content type of all request and response bodies.
	MIMEApplicationJSON = "application/json"

	defaultTimeout = 30 * time.Second
)

// Request describes a single HTTP call.
type Request struct {
	Method string
	URL    string
	Header http.Header
	Body   any // JSON encoded when not nil
}

// Response holds the response metadata of a round trip.
type Response struct {
	StatusCode int
	Header     http.Header
}

// StatusError is returned for responses outside the 2xx range.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	if len(e.Body) == 0 {
		return "unexpected response status " + e.Status
	}

	return fmt.Sprintf("unexpected response status %s: %s", e.Status, bytes.TrimSpace(e.Body))
}

// HTTP executes requests with a net/http client.
type HTTP struct {
	client  *http.Client
	metrics *metrics
}

// Option configures HTTP.
type Option func(*HTTP)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTP) {
		if c != nil {
			h.client = c
		}
	}
}

// WithRegisterer enables request metrics on the given registerer.
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(h *HTTP) {
		if reg != nil {
			h.metrics = newMetrics(reg)
		}
	}
}

// New creates an HTTP executor.
func New(opts ...Option) *HTTP {
	h := &HTTP{
		client: &http.Client{Timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// Do performs the request. A network failure returns a nil Response. A non-2xx
// status returns the Response, the body and a *StatusError.
func (h *HTTP) Do(ctx context.Context, r *Request) (*Response, []byte, error) {
	var body io.Reader

	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, r.URL, body)
	if err != nil {
		return nil, nil, err //nolint:wrapcheck
	}

	for k, values := range r.Header {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}

	start := time.Now()

	res, err := h.client.Do(req)
	if err != nil {
		h.metrics.observe(r.Method, "error", start)
		return nil, nil, err //nolint:wrapcheck
	}
	defer res.Body.Close()

	h.metrics.observe(r.Method, strconv.Itoa(res.StatusCode), start)

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	meta := &Response{StatusCode: res.StatusCode, Header: res.Header}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return meta, data, &StatusError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Body:       data,
		}
	}

	return meta, data, nil
}
