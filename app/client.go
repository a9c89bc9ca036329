package app

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/GoPowerDNS-Admin/pdns-api/pdns"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns/transport"
)

// connect builds a client from the API section and connects it.
func (rt *runtime) connect(ctx context.Context) (*pdns.Client, error) {
	api := rt.cfg.API

	client, err := pdns.New(
		&pdns.Config{
			Host:     api.Host,
			Port:     api.Port,
			Protocol: api.Protocol,
			Key:      api.Key,
		},
		pdns.WithExecutor(transport.New(
			transport.WithHTTPClient(&http.Client{Timeout: api.Timeout}),
			transport.WithRegisterer(prometheus.DefaultRegisterer),
		)),
		pdns.WithLogger(log.Logger),
	)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if err = client.Connect(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to connect to %s", client.BaseURL())
	}

	return client, nil
}

func (rt *runtime) writeJSON(v any) error {
	enc := json.NewEncoder(rt.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v) //nolint:wrapcheck
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}

	return *p
}
