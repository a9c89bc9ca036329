package handler

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
)

// Service is the interface for an API handler service.
type Service interface {
	Init(app fiber.Router, cfg *config.Config, db *gorm.DB)
}
