package daemon

import (
	"gorm.io/gorm"

	zonectrl "github.com/GoPowerDNS-Admin/pdns-api/internal/db/controller/zone"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/db/models"
)

// SeedZone is created on an empty database.
const SeedZone = "example.org."

func seed(db *gorm.DB) error {
	count, err := zonectrl.Count(db)
	if err != nil {
		return err //nolint:wrapcheck
	}

	if count > 0 {
		return nil
	}

	return zonectrl.Create(db, &models.Zone{ //nolint:wrapcheck
		ID:         SeedZone,
		Name:       SeedZone,
		Kind:       "Native",
		Masters:    []string{},
		Serial:     1,
		SOAEditAPI: "DEFAULT",
		Records: []models.Record{
			{Name: SeedZone, Type: "SOA", TTL: 3600, Content: "ns1.example.org. hostmaster.example.org. 1 10800 3600 604800 3600"},
			{Name: SeedZone, Type: "NS", TTL: 3600, Content: "ns1.example.org."},
			{Name: SeedZone, Type: "NS", TTL: 3600, Content: "ns2.example.org."},
			{Name: SeedZone, Type: "MX", TTL: 3600, Content: "10 mail.example.org."},
			{Name: SeedZone, Type: "TXT", TTL: 3600, Content: `"v=spf1 mx -all"`},
			{Name: "www." + SeedZone, Type: "A", TTL: 300, Content: "192.0.2.10"},
			{Name: "mail." + SeedZone, Type: "A", TTL: 300, Content: "192.0.2.25"},
		},
	})
}
