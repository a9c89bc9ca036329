package pdns

import (
	"context"
	"encoding/json"
)

// RecordCatalog presents the records of a zone as a resource of their own.
type RecordCatalog struct {
	client *Client
	zones  *ZoneDirectory
}

// List fetches the zone and returns its records.
func (r *RecordCatalog) List(ctx context.Context, zoneID string) ([]Record, error) {
	zone, err := r.zones.Fetch(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	return zone.Records, nil
}

// Add submits record as a REPLACE RRset of its name and type. Every record of the
// zone sharing that name and type is replaced by this single record.
func (r *RecordCatalog) Add(ctx context.Context, zoneID string, record *Record) (json.RawMessage, error) {
	if zoneID == "" {
		return nil, ErrZoneRequired
	}

	if record == nil {
		return nil, ErrRecordRequired
	}

	if err := r.client.validator.Struct(record); err != nil {
		return nil, invalid(ErrInvalidRecord, err)
	}

	rrset := &RRset{
		Name:       record.Name,
		Type:       record.Type,
		ChangeType: String(ChangeTypeReplace),
		Records:    []Record{*record},
	}

	return r.zones.PatchRRset(ctx, zoneID, rrset)
}
