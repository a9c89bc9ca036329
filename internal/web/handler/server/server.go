// Package server serves the server descriptor endpoints of the mock API.
package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns"
)

const daemonType = "authoritative"

// Service is the server descriptor handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Init registers GET /servers and GET /servers/:server.
func (s *Service) Init(app fiber.Router, cfg *config.Config, _ *gorm.DB) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(handler.ServersPath, s.List)
	app.Get(handler.ServerPath, handler.RequireServer(cfg.Mock.ServerID), s.Get)
}

// List answers with the single configured server.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON([]pdns.Server{Descriptor(s.cfg.Mock)})
}

// Get answers with the configured server.
func (s *Service) Get(c *fiber.Ctx) error {
	return c.JSON(Descriptor(s.cfg.Mock))
}

// Descriptor builds the server object advertised by the mock.
func Descriptor(m config.Mock) pdns.Server {
	url := handler.ServersPath + "/" + m.ServerID

	return pdns.Server{
		Type:       pdns.String("Server"),
		ID:         pdns.String(m.ServerID),
		URL:        pdns.String(url),
		DaemonType: pdns.String(daemonType),
		Version:    pdns.String(m.Version),
		ConfigURL:  pdns.String(url + "/config{/config_setting}"),
		ZonesURL:   pdns.String(url + "/zones{/zone}"),
	}
}
