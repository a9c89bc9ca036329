package pdns

import (
	"context"
	"encoding/json"
	"strings"
)

const (
	// zonePlaceholder marks the optional zone segment in the zones URL template.
	zonePlaceholder = "{/zone}"

	collectionRule = "required,dive"
)

// ZoneDirectory lists, fetches and patches zones. Zones are never cached.
type ZoneDirectory struct {
	client *Client
}

// List returns all zones of the server, without their records.
func (z *ZoneDirectory) List(ctx context.Context) ([]ZoneSummary, error) {
	url, err := z.url("")
	if err != nil {
		return nil, err
	}

	body, err := z.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var zones []ZoneSummary
	if err = decode(body, &zones); err != nil {
		return nil, err
	}

	if err = z.client.validator.Var(zones, collectionRule); err != nil {
		return nil, invalid(ErrInvalidServerResponse, err)
	}

	return zones, nil
}

// Fetch returns a single zone including its records.
func (z *ZoneDirectory) Fetch(ctx context.Context, zoneID string) (*Zone, error) {
	if zoneID == "" {
		return nil, ErrZoneRequired
	}

	url, err := z.url(zoneID)
	if err != nil {
		return nil, err
	}

	body, err := z.client.Get(ctx, url)
	if err != nil {
		return nil, err
	}

	var zone Zone
	if err = decode(body, &zone); err != nil {
		return nil, err
	}

	if err = z.client.validator.Struct(&zone); err != nil {
		return nil, invalid(ErrInvalidServerResponse, err)
	}

	return &zone, nil
}

// PatchRRset submits rrset to the zone and returns the server's answer as is.
func (z *ZoneDirectory) PatchRRset(ctx context.Context, zoneID string, rrset *RRset) (json.RawMessage, error) {
	if zoneID == "" {
		return nil, ErrZoneRequired
	}

	if rrset == nil {
		return nil, ErrRRsetRequired
	}

	if err := z.client.validator.Struct(rrset); err != nil {
		return nil, invalid(ErrInvalidRRset, err)
	}

	url, err := z.url(zoneID)
	if err != nil {
		return nil, err
	}

	z.client.log.Debug().
		Str("zone", zoneID).
		Str("name", *rrset.Name).
		Str("type", *rrset.Type).
		Str("changetype", *rrset.ChangeType).
		Int("records", len(rrset.Records)).
		Msg("patch rrset")

	body, err := z.client.Patch(ctx, url, rrset)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

// url expands the zones URL template. An empty zoneID yields the collection URL;
// otherwise the placeholder becomes "/" + zoneID, without any escaping.
func (z *ZoneDirectory) url(zoneID string) (string, error) {
	template, err := z.client.ResolveZonesURL()
	if err != nil {
		return "", err
	}

	segment := ""
	if zoneID != "" {
		segment = "/" + zoneID
	}

	return strings.Replace(template, zonePlaceholder, segment, 1), nil
}
