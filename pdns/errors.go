package pdns

import (
	"errors"
	"fmt"
)

var (
	// ErrConfigInvalid is returned by New when the configuration is missing or malformed.
	ErrConfigInvalid = errors.New("configuration failed validation")

	// ErrNotConnected is returned by operations issued before a successful Connect.
	ErrNotConnected = errors.New("not connected")

	// ErrURLRequired is returned when a request is issued without a URL.
	ErrURLRequired = errors.New("url must be supplied")

	// ErrPatchRequired is returned when a patch is issued without a body.
	ErrPatchRequired = errors.New("patch must be supplied")

	// ErrZoneRequired is returned when a zone operation is issued without a zone id.
	ErrZoneRequired = errors.New("zone must be supplied")

	// ErrRecordRequired is returned when a record is added without a record.
	ErrRecordRequired = errors.New("record must be supplied")

	// ErrRRsetRequired is returned when a patch is issued without an RRset.
	ErrRRsetRequired = errors.New("rrset must be supplied")

	// ErrInvalidRecord is returned when a supplied record fails shape validation.
	ErrInvalidRecord = errors.New("specified record is invalid")

	// ErrInvalidRRset is returned when a supplied RRset fails shape validation.
	ErrInvalidRRset = errors.New("specified rrset is invalid")

	// ErrInvalidServerResponse is returned when the server answers with an unexpected shape.
	ErrInvalidServerResponse = errors.New("API returned invalid results")

	// ErrUnauthorized is returned when the server rejects the API key.
	ErrUnauthorized = errors.New("unauthorised")
)

// invalid joins a sentinel with the diagnostic produced by the validator, so that
// both errors.Is(err, kind) and errors.As(err, &schema.Errors{}) hold.
func invalid(kind, diagnostic error) error {
	return fmt.Errorf("%w: \n\n%w", kind, diagnostic)
}
