// Package daemon wires storage and the mock API server together.
package daemon

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/apikey"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/db"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web"
)

// ErrConfigNil is returned by New without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the mock API daemon.
type Daemon struct {
	cfg        *config.Config
	db         *gorm.DB
	webService *web.Service
}

// Start serves the mock API on Mock.Listen until SIGINT or SIGTERM.
func (d *Daemon) Start() error {
	log.Info().
		Str("listen", d.cfg.Mock.Listen).
		Str("server_id", d.cfg.Mock.ServerID).
		Bool("api_key", d.cfg.Mock.Key != "").
		Msg("starting mock PowerDNS API")

	return d.webService.Run(d.cfg.Mock.Listen)
}

// Service returns the underlying mock API service.
func (d *Daemon) Service() *web.Service {
	return d.webService
}

// DB returns the storage handle.
func (d *Daemon) DB() *gorm.DB {
	return d.db
}

// New opens and migrates the database, seeds it if configured and builds
// the mock API service. Outside of dev mode a missing Mock.Key is generated.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	if cfg.Mock.Key == "" && !cfg.DevMode {
		key, err := apikey.New()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate api key")
		}

		cfg.Mock.Key = key

		log.Warn().Str("api_key", key).Msg("Mock.Key is empty, generated a random api key")
	}

	gdb, err := db.Open(cfg.Mock.DB, cfg.DevMode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open mock database")
	}

	if cfg.Mock.Seed {
		if err = seed(gdb); err != nil {
			return nil, errors.Wrap(err, "failed to seed mock database")
		}
	}

	return &Daemon{
		cfg:        cfg,
		db:         gdb,
		webService: web.New(cfg, gdb),
	}, nil
}
