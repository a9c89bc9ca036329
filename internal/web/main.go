// Package web implements a fake PowerDNS HTTP API backed by gorm.
package web

import (
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
	fiberlogger "github.com/GoPowerDNS-Admin/pdns-api/internal/logger/adapter/fiber"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler/server"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler/zone"
)

const (
	// MetricsPath exposes the Prometheus registry.
	MetricsPath = "/metrics"

	// CheckAlivePath answers 503 during graceful shutdown.
	CheckAlivePath = "/checkalive"

	// shutdownTimeout bounds waiting for open connections.
	shutdownTimeout = 10 * time.Second
)

// Service represents the mock API service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start listens on addr and blocks until the server stops.
func (s *Service) Start(addr string) error {
	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Serve serves on an already bound listener and blocks until the server stops.
func (s *Service) Serve(ln net.Listener) error {
	if err := s.App.Listener(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	return nil
}

// Run starts listening on addr and shuts down gracefully on SIGINT or SIGTERM.
func (s *Service) Run(addr string) error {
	listenErr := make(chan error, 1)

	go func() {
		listenErr <- s.Start(addr)
	}()

	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	defer signal.Stop(irqSig)

	select {
	case err := <-listenErr:
		return err
	case sig := <-irqSig:
		log.Info().Msgf("shutdown request (signal: %v)", sig)
	}

	return s.Shutdown()
}

// Shutdown marks the service as not alive, waits Mock.ShutDownTime seconds
// unless fast shutdown is enabled and stops the http server.
func (s *Service) Shutdown() error {
	s.alive.Store(false)

	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 on %s for %d seconds",
			CheckAlivePath,
			s.cfg.Mock.ShutDownTime,
		)

		time.Sleep(time.Duration(s.cfg.Mock.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	if err := s.App.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Msg("http server was stopped ... good bye...")

	return nil
}

// Alive reports whether the service accepts traffic.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates the mock API with the given configuration.
// DevMode skips the graceful shutdown delay.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			AppName:               "pdns-api mock",
			CaseSensitive:         true,
			Immutable:             true,
			UnescapePath:          true,
			DisableStartupMessage: true,
		},
	)

	service := &Service{
		App:          app,
		cfg:          cfg,
		db:           db,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:    cfg.Log,
		SkipPaths: []string{MetricsPath, CheckAlivePath},
	}))
	app.Use(APIKeyMiddleware(cfg.Mock.Key, MetricsPath, CheckAlivePath))

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))
	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.Alive() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})

	for _, h := range []handler.Service{new(server.Service), new(zone.Service)} {
		h.Init(app, cfg, db)
	}

	return service
}
