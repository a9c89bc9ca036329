package pdns

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/pdns-api/pdns/schema"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns/transport"
)

const (
	serversPath = "/servers"

	// exactly one server descriptor, each field present
	serversRule = "len=1,dive"
)

// Executor performs a single HTTP round trip. On failure it returns the response
// metadata when a response was received, so that the status can be inspected.
type Executor interface {
	Do(ctx context.Context, req *transport.Request) (*transport.Response, []byte, error)
}

// Validator checks decoded values against their shape. Failures should be
// reported as schema.Errors.
type Validator interface {
	Struct(v any) error
	Var(v any, tag string) error
}

// State is the connection state of a Client.
type State int

const (
	// Disconnected is the initial state and the state after a failed Connect.
	Disconnected State = iota
	// Connecting is held while the discovery request is in flight.
	Connecting
	// Connected is reached after a successful discovery.
	Connected
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Client owns the configuration and connection state. All HTTP traffic of Zones and
// Records passes through it.
type Client struct {
	Zones   *ZoneDirectory
	Records *RecordCatalog

	config    Config
	baseURL   string
	executor  Executor
	validator Validator
	log       zerolog.Logger

	connectMu sync.Mutex // serializes Connect

	mu               sync.RWMutex
	state            State
	zonesURLTemplate string
}

// New validates cfg and returns a disconnected Client.
func New(cfg *Config, opts ...Option) (*Client, error) {
	c := &Client{
		validator: schema.New(),
		log:       log.Logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if cfg == nil {
		return nil, fmt.Errorf("%w: configuration must be supplied", ErrConfigInvalid)
	}

	if err := c.validator.Struct(cfg); err != nil {
		return nil, invalid(ErrConfigInvalid, err)
	}

	if c.executor == nil {
		c.executor = transport.New()
	}

	c.config = *cfg
	c.state = Disconnected
	c.baseURL = fmt.Sprintf("%s://%s:%d", cfg.Protocol, cfg.Host, cfg.Port)
	c.Zones = &ZoneDirectory{client: c}
	c.Records = &RecordCatalog{client: c, zones: c.Zones}

	c.log.Debug().Str("base_url", c.baseURL).Msg("pdns client created")

	return c, nil
}

// BaseURL returns protocol://host:port.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// State returns the current connection state.
func (c *Client) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.state
}

// Connected reports whether Connect has succeeded.
func (c *Client) Connected() bool {
	return c.State() == Connected
}

// Connect discovers the zones URL template of the server. Any failure leaves the
// client Disconnected. Concurrent calls are serialized; each performs its own
// discovery and the last one wins.
func (c *Client) Connect(ctx context.Context) error {
	c.connectMu.Lock()
	defer c.connectMu.Unlock()

	c.mu.Lock()
	c.state = Connecting
	c.mu.Unlock()

	template, err := c.discover(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.state = Disconnected
		c.zonesURLTemplate = ""

		c.log.Debug().Err(err).Str("base_url", c.baseURL).Msg("connect failed")

		return err
	}

	c.state = Connected
	c.zonesURLTemplate = template

	c.log.Debug().Str("zones_url", template).Msg("connected")

	return nil
}

// discover fetches the server list through the unguarded request path, since the
// client is not Connected yet.
func (c *Client) discover(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+serversPath, nil)
	if err != nil {
		return "", err
	}

	var servers []Server
	if err = decode(body, &servers); err != nil {
		return "", err
	}

	if err = c.validator.Var(servers, serversRule); err != nil {
		return "", invalid(ErrInvalidServerResponse, err)
	}

	return *servers[0].ZonesURL, nil
}

// ResolveZonesURL returns the absolute zones URL template.
func (c *Client) ResolveZonesURL() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.state != Connected {
		return "", ErrNotConnected
	}

	return c.baseURL + c.zonesURLTemplate, nil
}

// Get issues an authenticated GET and returns the raw body.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrURLRequired
	}

	return c.authenticatedRequest(ctx, http.MethodGet, url, nil)
}

// Patch issues an authenticated PATCH with body encoded as JSON and returns the raw
// response body.
func (c *Client) Patch(ctx context.Context, url string, body any) ([]byte, error) {
	if url == "" {
		return nil, ErrURLRequired
	}

	if isEmpty(body) {
		return nil, ErrPatchRequired
	}

	return c.authenticatedRequest(ctx, http.MethodPatch, url, body)
}

// authenticatedRequest is the only path for requests issued on behalf of callers.
// The response body is not validated.
func (c *Client) authenticatedRequest(ctx context.Context, method, url string, body any) ([]byte, error) {
	if !c.Connected() {
		return nil, ErrNotConnected
	}

	return c.do(ctx, method, url, body)
}

func (c *Client) do(ctx context.Context, method, url string, body any) ([]byte, error) {
	req := &transport.Request{
		Method: method,
		URL:    url,
		Header: http.Header{},
		Body:   body,
	}

	req.Header.Set(transport.HeaderAPIKey, c.config.Key)
	req.Header.Set("Content-Type", transport.MIMEApplicationJSON)
	req.Header.Set("Accept", transport.MIMEApplicationJSON)

	c.log.Trace().Str("method", method).Str("url", url).Msg("request")

	res, data, err := c.executor.Do(ctx, req)
	if err != nil {
		if res != nil && res.StatusCode == http.StatusUnauthorized {
			return nil, ErrUnauthorized
		}

		return nil, err
	}

	return data, nil
}

// decode unmarshals a response body, reporting type mismatches as an invalid response.
func decode(body []byte, v any) error {
	if err := json.Unmarshal(body, v); err != nil {
		return invalid(ErrInvalidServerResponse, schema.FromJSON(err))
	}

	return nil
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	case reflect.Slice, reflect.Map, reflect.String:
		return rv.Len() == 0
	default:
		return false
	}
}
