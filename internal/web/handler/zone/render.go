package zone

import (
	"github.com/GoPowerDNS-Admin/pdns-api/internal/db/models"
	"github.com/GoPowerDNS-Admin/pdns-api/internal/web/handler"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns"
)

func zoneURL(serverID, zoneID string) string {
	return handler.ServersPath + "/" + serverID + "/zones/" + zoneID
}

func masters(z *models.Zone) []string {
	if z.Masters == nil {
		return []string{}
	}

	return z.Masters
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return pdns.String(s)
}

func summary(serverID string, z *models.Zone) pdns.ZoneSummary {
	return pdns.ZoneSummary{
		ID:             pdns.String(z.ID),
		Name:           pdns.String(z.Name),
		URL:            pdns.String(zoneURL(serverID, z.ID)),
		Kind:           pdns.String(z.Kind),
		DNSSEC:         pdns.Bool(z.DNSSEC),
		Account:        pdns.String(z.Account),
		Masters:        masters(z),
		Serial:         pdns.Int64(z.Serial),
		NotifiedSerial: pdns.Int64(z.NotifiedSerial),
		LastCheck:      pdns.Int64(0),
		SOAEditAPI:     optional(z.SOAEditAPI),
		SOAEdit:        optional(z.SOAEdit),
	}
}

func detail(serverID string, z *models.Zone) pdns.Zone {
	records := make([]pdns.Record, 0, len(z.Records))

	for _, r := range z.Records {
		rec := pdns.Record{
			Name:     pdns.String(r.Name),
			Type:     pdns.String(r.Type),
			TTL:      pdns.Uint32(r.TTL),
			Disabled: pdns.Bool(r.Disabled),
			Content:  pdns.String(r.Content),
		}

		if r.SetPTR {
			rec.SetPTR = pdns.Bool(true)
		}

		records = append(records, rec)
	}

	s := summary(serverID, z)

	return pdns.Zone{
		ID:             s.ID,
		Name:           s.Name,
		URL:            s.URL,
		Kind:           s.Kind,
		DNSSEC:         s.DNSSEC,
		Account:        s.Account,
		Masters:        s.Masters,
		Serial:         s.Serial,
		NotifiedSerial: s.NotifiedSerial,
		LastCheck:      s.LastCheck,
		Records:        records,
		SOAEditAPI:     s.SOAEditAPI,
		SOAEdit:        s.SOAEdit,
	}
}
