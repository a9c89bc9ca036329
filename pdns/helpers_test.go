package pdns_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/pdns-api/pdns"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns/transport"
)

const (
	testBaseURL   = "http://abc:8080"
	testServers   = testBaseURL + "/servers"
	testZones     = testBaseURL + "/servers/localhost/zones"
	testZoneID    = "example.org."
	testZoneURL   = testZones + "/" + testZoneID
	validServers  = `[{"type":"Server","id":"localhost","url":"/servers/localhost","daemon_type":"authoritative","version":"3.4.7","config_url":"/servers/localhost/config{/config_setting}","zones_url":"/servers/localhost/zones{/zone}"}]`
	validZoneList = `[{"id":"example.org.","name":"example.org.","url":"/servers/localhost/zones/example.org.","kind":"Native","dnssec":false,"account":"","masters":[],"serial":2016010101,"notified_serial":0,"last_check":0}]`
	validRecord   = `{"name":"www.example.org.","type":"A","ttl":3600,"disabled":false,"content":"192.0.2.10"}`
	validZone     = `{"id":"example.org.","name":"example.org.","url":"/servers/localhost/zones/example.org.","kind":"Native","dnssec":false,"account":"","masters":[],"serial":2016010101,"notified_serial":0,"last_check":0,"soa_edit_api":"DEFAULT","records":[` + validRecord + `]}`
)

var errNetwork = errors.New("dial tcp: connection refused")

func testConfig() *pdns.Config {
	return &pdns.Config{
		Host:     "abc",
		Port:     8080,
		Protocol: "http",
		Key:      "abcd",
	}
}

type reply struct {
	status int
	body   string
	err    error
}

// fakeExecutor answers requests from a route table keyed by "METHOD URL" and records
// every request it sees.
type fakeExecutor struct {
	mu       sync.Mutex
	routes   map[string]reply
	requests []*transport.Request
	before   func(req *transport.Request)
}

func newFakeExecutor(routes map[string]reply) *fakeExecutor {
	return &fakeExecutor{routes: routes}
}

func (f *fakeExecutor) Do(_ context.Context, req *transport.Request) (*transport.Response, []byte, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	r, ok := f.routes[req.Method+" "+req.URL]
	before := f.before
	f.mu.Unlock()

	if before != nil {
		before(req)
	}

	if !ok {
		r = reply{status: http.StatusNotFound, err: &transport.StatusError{StatusCode: http.StatusNotFound, Status: "404 Not Found"}}
	}

	if r.err != nil && r.status == 0 {
		return nil, nil, r.err
	}

	status := r.status
	if status == 0 {
		status = http.StatusOK
	}

	return &transport.Response{StatusCode: status}, []byte(r.body), r.err
}

func (f *fakeExecutor) calls() []*transport.Request {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]*transport.Request(nil), f.requests...)
}

func newClient(t *testing.T, routes map[string]reply) (*pdns.Client, *fakeExecutor) {
	t.Helper()

	exec := newFakeExecutor(routes)

	c, err := pdns.New(testConfig(), pdns.WithExecutor(exec), pdns.WithLogger(zerolog.Nop()))
	require.NoError(t, err)

	return c, exec
}

func connectedClient(t *testing.T, routes map[string]reply) (*pdns.Client, *fakeExecutor) {
	t.Helper()

	if routes == nil {
		routes = map[string]reply{}
	}

	routes["GET "+testServers] = reply{body: validServers}

	c, exec := newClient(t, routes)
	require.NoError(t, c.Connect(context.Background()))

	return c, exec
}
