package fiber_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/GoPowerDNS-Admin/pdns-api/internal/logger/adapter/fiber"
)

type accessEntry struct {
	IP     string `json:"IP"`
	Status int    `json:"status"`
	URI    string `json:"URI"`
	Method string `json:"method"`
	APIKey bool   `json:"apiKey"`
	Error  string `json:"error"`
}

func TestNew(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		apiKey string
		want   *accessEntry
	}{
		{
			name:   "servers listing",
			method: fiber.MethodGet,
			target: "/api/v1/servers",
			apiKey: "secret",
			want:   &accessEntry{Status: 200, URI: "/api/v1/servers", Method: fiber.MethodGet, APIKey: true},
		},
		{
			name:   "query string kept",
			method: fiber.MethodGet,
			target: "/api/v1/servers?rrsets=false",
			want:   &accessEntry{Status: 200, URI: "/api/v1/servers?rrsets=false", Method: fiber.MethodGet},
		},
		{
			name:   "unnormalized path",
			method: fiber.MethodGet,
			target: "/api//v1/unknown",
			want: &accessEntry{
				Status: 404, URI: "/api/v1/unknown", Method: fiber.MethodGet,
				Error: "Cannot GET /api//v1/unknown",
			},
		},
		{
			name:   "handler error",
			method: fiber.MethodPatch,
			target: "/api/v1/fail",
			want:   &accessEntry{Status: 500, URI: "/api/v1/fail", Method: fiber.MethodPatch, Error: "boom"},
		},
		{
			name:   "skipped path",
			method: fiber.MethodGet,
			target: "/metrics",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			app := fiber.New()
			app.Use(adapter.New(adapter.Config{Output: &buf, SkipPaths: []string{"/metrics"}}))
			app.Get("/api/v1/servers", func(c *fiber.Ctx) error { return c.SendString("[]") })
			app.Get("/metrics", func(c *fiber.Ctx) error { return c.SendString("") })
			app.Patch("/api/v1/fail", func(*fiber.Ctx) error { return errors.New("boom") }) //nolint:err113

			req := httptest.NewRequest(tt.method, tt.target, nil)
			if tt.apiKey != "" {
				req.Header.Set("X-API-Key", tt.apiKey)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())

			if tt.want == nil {
				assert.Empty(t, buf.String())
				return
			}

			var got accessEntry
			require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

			assert.Equal(t, tt.want.Status, got.Status)
			assert.Equal(t, tt.want.URI, got.URI)
			assert.Equal(t, tt.want.Method, got.Method)
			assert.Equal(t, tt.want.APIKey, got.APIKey)
			assert.Equal(t, tt.want.Error, got.Error)
			assert.NotEmpty(t, got.IP)
		})
	}
}

func TestNewNext(t *testing.T) {
	var buf bytes.Buffer

	app := fiber.New()
	app.Use(adapter.New(adapter.Config{
		Output: &buf,
		Next:   func(*fiber.Ctx) bool { return true },
	}))
	app.Get("/", func(c *fiber.Ctx) error { return c.SendString("ok") })

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/", nil))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Empty(t, buf.String())
}
