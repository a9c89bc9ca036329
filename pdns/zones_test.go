package pdns_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoPowerDNS-Admin/pdns-api/pdns"
	"github.com/GoPowerDNS-Admin/pdns-api/pdns/schema"
)

func TestZonesList(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		wantLen int
		wantErr error
	}{
		{name: "valid list", body: validZoneList, wantLen: 1},
		{name: "empty list", body: `[]`, wantLen: 0},
		{name: "null", body: `null`, wantErr: pdns.ErrInvalidServerResponse},
		{name: "object instead of array", body: `{}`, wantErr: pdns.ErrInvalidServerResponse},
		{
			name:    "missing masters",
			body:    `[{"id":"a.","name":"a.","url":"/a","kind":"Native","dnssec":false,"account":"","serial":1,"notified_serial":0,"last_check":0}]`,
			wantErr: pdns.ErrInvalidServerResponse,
		},
		{
			name:    "dnssec is not boolean",
			body:    `[{"id":"a.","name":"a.","url":"/a","kind":"Native","dnssec":"no","account":"","masters":[],"serial":1,"notified_serial":0,"last_check":0}]`,
			wantErr: pdns.ErrInvalidServerResponse,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, exec := connectedClient(t, map[string]reply{"GET " + testZones: {body: tc.body}})

			zones, err := c.Zones.List(context.Background())

			calls := exec.calls()
			require.Len(t, calls, 2)
			assert.Equal(t, testZones, calls[1].URL)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, zones)

				return
			}

			require.NoError(t, err)
			assert.Len(t, zones, tc.wantLen)
		})
	}
}

func TestZonesListDiagnosticNamesField(t *testing.T) {
	c, _ := connectedClient(t, map[string]reply{
		"GET " + testZones: {body: `[{"id":"a.","name":"a.","url":"/a","kind":"Native","dnssec":false,"account":"","masters":[],"notified_serial":0,"last_check":0}]`},
	})

	_, err := c.Zones.List(context.Background())

	var errs schema.Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, []string{"@[0].serial"}, errs.Paths())
}

func TestZonesFetch(t *testing.T) {
	c, exec := connectedClient(t, map[string]reply{"GET " + testZoneURL: {body: validZone}})

	zone, err := c.Zones.Fetch(context.Background(), testZoneID)
	require.NoError(t, err)

	require.NotNil(t, zone.Name)
	assert.Equal(t, testZoneID, *zone.Name)
	assert.Equal(t, "DEFAULT", *zone.SOAEditAPI)
	assert.Nil(t, zone.SOAEdit)
	assert.Len(t, zone.Records, 1)

	calls := exec.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodGet, calls[1].Method)
	assert.Equal(t, testZoneURL, calls[1].URL)
}

func TestZonesFetchInvalid(t *testing.T) {
	const header = `{"id":"example.org.","name":"example.org.","url":"/z","kind":"Native","dnssec":false,"account":"","masters":[],"serial":1,"notified_serial":0,"last_check":0`

	testCases := []struct {
		name     string
		body     string
		wantPath string
	}{
		{name: "summary without records", body: validZoneList[1 : len(validZoneList)-1], wantPath: "@.records"},
		{
			name:     "record without ttl",
			body:     header + `,"records":[{"name":"www.example.org.","type":"A","disabled":false,"content":"192.0.2.1"}]}`,
			wantPath: "@.records[0].ttl",
		},
		{
			name:     "second record without content",
			body:     header + `,"records":[` + validRecord + `,{"name":"www.example.org.","type":"A","ttl":3600,"disabled":false}]}`,
			wantPath: "@.records[1].content",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := connectedClient(t, map[string]reply{"GET " + testZoneURL: {body: tc.body}})

			zone, err := c.Zones.Fetch(context.Background(), testZoneID)
			require.ErrorIs(t, err, pdns.ErrInvalidServerResponse)
			assert.Nil(t, zone)

			var errs schema.Errors
			require.ErrorAs(t, err, &errs)
			assert.Equal(t, []string{tc.wantPath}, errs.Paths())
		})
	}
}

func TestZonesRequireZoneBeforeAnyCall(t *testing.T) {
	ctx := context.Background()

	// not connected on purpose: the zone check comes first
	c, exec := newClient(t, nil)

	_, err := c.Zones.Fetch(ctx, "")
	require.ErrorIs(t, err, pdns.ErrZoneRequired)

	_, err = c.Zones.PatchRRset(ctx, "", &pdns.RRset{})
	require.ErrorIs(t, err, pdns.ErrZoneRequired)

	_, err = c.Zones.PatchRRset(ctx, testZoneID, nil)
	require.ErrorIs(t, err, pdns.ErrRRsetRequired)

	_, err = c.Zones.PatchRRset(ctx, testZoneID, &pdns.RRset{Name: pdns.String("www.example.org.")})
	require.ErrorIs(t, err, pdns.ErrInvalidRRset)

	assert.Empty(t, exec.calls())
}

func TestZonesNotConnected(t *testing.T) {
	ctx := context.Background()
	c, exec := newClient(t, nil)

	_, err := c.Zones.List(ctx)
	require.ErrorIs(t, err, pdns.ErrNotConnected)

	_, err = c.Zones.Fetch(ctx, testZoneID)
	require.ErrorIs(t, err, pdns.ErrNotConnected)

	_, err = c.Zones.PatchRRset(ctx, testZoneID, &pdns.RRset{
		Name:       pdns.String("www.example.org."),
		Type:       pdns.String("A"),
		ChangeType: pdns.String(pdns.ChangeTypeReplace),
		Records:    []pdns.Record{},
	})
	require.ErrorIs(t, err, pdns.ErrNotConnected)

	assert.Empty(t, exec.calls())
}

func TestZonesPatchRRset(t *testing.T) {
	c, exec := connectedClient(t, map[string]reply{
		"PATCH " + testZoneURL: {status: http.StatusOK, body: `{"anything":"goes"}`},
	})

	rrset := &pdns.RRset{
		Name:       pdns.String("www.example.org."),
		Type:       pdns.String("A"),
		ChangeType: pdns.String(pdns.ChangeTypeReplace),
		Records:    []pdns.Record{},
	}

	res, err := c.Zones.PatchRRset(context.Background(), testZoneID, rrset)
	require.NoError(t, err)
	assert.JSONEq(t, `{"anything":"goes"}`, string(res))

	calls := exec.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, http.MethodPatch, calls[1].Method)
	assert.Equal(t, testZoneURL, calls[1].URL)

	body, err := json.Marshal(calls[1].Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"www.example.org.","type":"A","changetype":"REPLACE","records":[]}`, string(body))
}

func TestZoneIDIsNotEscaped(t *testing.T) {
	const odd = "odd zone/with slash"

	c, exec := connectedClient(t, map[string]reply{
		"GET " + testZones + "/" + odd: {body: validZone},
	})

	_, err := c.Zones.Fetch(context.Background(), odd)
	require.NoError(t, err)
	assert.Equal(t, testZones+"/"+odd, exec.calls()[1].URL)
}
