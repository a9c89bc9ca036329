// Package zone serves the zone endpoints of the mock API backed by gorm.
package zone

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/config"
	zonectrl "github.com/GoPowerDNS-Admin/pdns-api/internal/db/controller/zone"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/db/models"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler"
)

const (
	changeTypeReplace = "REPLACE"
	changeTypeDelete  = "DELETE"

	defaultTTL = 3600
)

// RecordPayload is one record of a patched RRset.
type RecordPayload struct {
	Content  string  `json:"content"  validate:"required"`
	Disabled bool    `json:"disabled"`
	TTL      *uint32 `json:"ttl"`
	SetPTR   bool    `json:"set-ptr"`
}

// RRsetPayload is an RRset as accepted by PATCH.
type RRsetPayload struct {
	Name       string          `json:"name"       validate:"required"`
	Type       string          `json:"type"       validate:"required"`
	ChangeType string          `json:"changetype" validate:"required,oneof=REPLACE DELETE"`
	TTL        *uint32         `json:"ttl"`
	Records    []RecordPayload `json:"records"    validate:"dive"`
}

// PatchPayload is the PowerDNS style body {"rrsets": [...]}.
type PatchPayload struct {
	RRsets []RRsetPayload `json:"rrsets" validate:"required,min=1,dive"`
}

// Service is the zone handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Init registers the zone routes.
func (s *Service) Init(app fiber.Router, cfg *config.Config, db *gorm.DB) {
	if app == nil || cfg == nil || db == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	server := handler.RequireServer(cfg.Mock.ServerID)

	app.Get(handler.ZonesPath, server, s.List)
	app.Get(handler.ZonePath, server, s.Get)
	app.Patch(handler.ZonePath, server, s.Patch)
}

// List answers with every zone, without records.
func (s *Service) List(c *fiber.Ctx) error {
	zones, err := zonectrl.List(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list zones")
		return handler.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	out := make([]any, 0, len(zones))
	for i := range zones {
		out = append(out, summary(s.cfg.Mock.ServerID, &zones[i]))
	}

	return c.JSON(out)
}

// Get answers with a single zone and its records.
func (s *Service) Get(c *fiber.Ctx) error {
	id := c.Params("zone")

	zone, err := zonectrl.Get(s.db, id)
	if err != nil {
		return s.storageError(c, id, err)
	}

	return c.JSON(detail(s.cfg.Mock.ServerID, zone))
}

// Patch applies RRset changes. Accepts a PowerDNS {"rrsets": [...]} body or a
// bare RRset object.
func (s *Service) Patch(c *fiber.Ctx) error {
	id := c.Params("zone")

	payload, err := decodePatch(c.Body())
	if err != nil {
		return handler.Error(c, fiber.StatusBadRequest, err.Error())
	}

	if err = s.validate.Struct(payload); err != nil {
		return handler.Error(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	for i := range payload.RRsets {
		if msg := checkName(payload.RRsets[i].Name, id); msg != "" {
			return handler.Error(c, fiber.StatusUnprocessableEntity, msg)
		}
	}

	// all rrsets are applied or none
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, rrset := range payload.RRsets {
			if err := apply(tx, id, rrset); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return s.storageError(c, id, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func apply(tx *gorm.DB, id string, rrset RRsetPayload) error {
	name, rrType := rrset.Name, strings.ToUpper(rrset.Type)

	var (
		err     error
		records []models.Record
	)

	switch rrset.ChangeType {
	case changeTypeReplace:
		records = toModels(rrset)
		err = zonectrl.ReplaceRRset(tx, id, name, rrType, records)
	case changeTypeDelete:
		err = zonectrl.DeleteRRset(tx, id, name, rrType)
	}

	if err != nil {
		return err
	}

	log.Debug().
		Str("zone", id).
		Str("name", name).
		Str("type", rrType).
		Str("changetype", rrset.ChangeType).
		Int("records", len(records)).
		Msg("rrset patched")

	return nil
}

func (s *Service) storageError(c *fiber.Ctx, id string, err error) error {
	if errors.Is(err, zonectrl.ErrZoneNotFound) || errors.Is(err, zonectrl.ErrZoneIDEmpty) {
		return handler.Error(c, fiber.StatusNotFound, "Could not find domain '"+id+"'")
	}

	log.Error().Err(err).Str("zone", id).Msg("zone storage failed")

	return handler.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
}

func decodePatch(body []byte) (*PatchPayload, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, err //nolint:wrapcheck
	}

	payload := new(PatchPayload)

	if _, ok := fields["rrsets"]; ok {
		if err := json.Unmarshal(body, payload); err != nil {
			return nil, err //nolint:wrapcheck
		}

		return payload, nil
	}

	var rrset RRsetPayload
	if err := json.Unmarshal(body, &rrset); err != nil {
		return nil, err //nolint:wrapcheck
	}

	payload.RRsets = []RRsetPayload{rrset}

	return payload, nil
}

// checkName returns the PowerDNS error message for a name outside of zone.
func checkName(name, zone string) string {
	if !strings.HasSuffix(name, ".") {
		return "RRset " + name + " IN: Name is not canonical"
	}

	if !strings.EqualFold(name, zone) && !strings.HasSuffix(strings.ToLower(name), "."+strings.ToLower(zone)) {
		return "RRset " + name + " IN: Name is out of zone"
	}

	return ""
}

func toModels(rrset RRsetPayload) []models.Record {
	ttl := uint32(defaultTTL)
	if rrset.TTL != nil {
		ttl = *rrset.TTL
	}

	out := make([]models.Record, 0, len(rrset.Records))

	for _, r := range rrset.Records {
		rec := models.Record{
			TTL:      ttl,
			Disabled: r.Disabled,
			Content:  r.Content,
			SetPTR:   r.SetPTR,
		}

		if r.TTL != nil {
			rec.TTL = *r.TTL
		}

		out = append(out, rec)
	}

	return out
}
