package pdns

import (
	powerdns "github.com/joeig/go-powerdns/v3"
)

// ChangeTypeReplace replaces every record sharing the RRset's name and type.
const ChangeTypeReplace = string(powerdns.ChangeTypeReplace)

// Config holds the connection settings. It is immutable once passed to New.
type Config struct {
	Host     string `json:"host"     validate:"required,min=3"`
	Port     int    `json:"port"     validate:"required,min=1,max=65535"`
	Protocol string `json:"protocol" validate:"required,oneof=http https"`
	Key      string `json:"key"      validate:"required,min=1"`
}

// Server is the descriptor returned by the discovery endpoint.
// Only ZonesURL is retained by the client.
type Server struct {
	Type       *string `json:"type"        validate:"required"`
	ID         *string `json:"id"          validate:"required"`
	URL        *string `json:"url"         validate:"required"`
	DaemonType *string `json:"daemon_type" validate:"required"`
	Version    *string `json:"version"     validate:"required"`
	ConfigURL  *string `json:"config_url"  validate:"required"`
	ZonesURL   *string `json:"zones_url"   validate:"required"`
}

// ZoneSummary is a zone as returned by the zone collection endpoint.
type ZoneSummary struct {
	ID             *string  `json:"id"              validate:"required"`
	Name           *string  `json:"name"            validate:"required"`
	URL            *string  `json:"url"             validate:"required"`
	Kind           *string  `json:"kind"            validate:"required"`
	DNSSEC         *bool    `json:"dnssec"          validate:"required"`
	Account        *string  `json:"account"         validate:"required"`
	Masters        []string `json:"masters"         validate:"required"`
	Serial         *int64   `json:"serial"          validate:"required"`
	NotifiedSerial *int64   `json:"notified_serial" validate:"required"`
	LastCheck      *int64   `json:"last_check"      validate:"required"`
	SOAEditAPI     *string  `json:"soa_edit_api,omitempty"`
	SOAEdit        *string  `json:"soa_edit,omitempty"`
}

// Zone is a single zone including its records.
type Zone struct {
	ID             *string  `json:"id"              validate:"required"`
	Name           *string  `json:"name"            validate:"required"`
	URL            *string  `json:"url"             validate:"required"`
	Kind           *string  `json:"kind"            validate:"required"`
	DNSSEC         *bool    `json:"dnssec"          validate:"required"`
	Account        *string  `json:"account"         validate:"required"`
	Masters        []string `json:"masters"         validate:"required"`
	Serial         *int64   `json:"serial"          validate:"required"`
	NotifiedSerial *int64   `json:"notified_serial" validate:"required"`
	LastCheck      *int64   `json:"last_check"      validate:"required"`
	Records        []Record `json:"records"         validate:"required,dive"`
	SOAEditAPI     *string  `json:"soa_edit_api,omitempty"`
	SOAEdit        *string  `json:"soa_edit,omitempty"`
}

// Record is a single resource record.
type Record struct {
	Name     *string `json:"name"     validate:"required"`
	Type     *string `json:"type"     validate:"required"`
	TTL      *uint32 `json:"ttl"      validate:"required"`
	Disabled *bool   `json:"disabled" validate:"required"`
	Content  *string `json:"content"  validate:"required"`
	SetPTR   *bool   `json:"set-ptr,omitempty"`
}

// RRset is a write-only set of records submitted as one patch.
type RRset struct {
	Name       *string  `json:"name"       validate:"required"`
	Type       *string  `json:"type"       validate:"required"`
	ChangeType *string  `json:"changetype" validate:"required"`
	Records    []Record `json:"records"    validate:"required"`
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }

// Uint32 returns a pointer to u.
func Uint32(u uint32) *uint32 { return &u }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }
