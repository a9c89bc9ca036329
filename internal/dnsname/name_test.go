package dnsname_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/dnsname"
)

func TestCanonical(t *testing.T) {
	tests := []struct{ in, want string }{
		{"example.org", "example.org."},
		{"example.org.", "example.org."},
		{"  example.org ", "example.org."},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, dnsname.Canonical(tt.in))
		})
	}
}

func TestQualify(t *testing.T) {
	tests := []struct {
		name, record, zone, want string
	}{
		{"apex at", "@", "example.org.", "example.org."},
		{"apex empty", "", "example.org", "example.org."},
		{"relative", "www", "example.org.", "www.example.org."},
		{"relative multi label", "a.b", "example.org", "a.b.example.org."},
		{"already canonical", "www.example.org.", "example.org.", "www.example.org."},
		{"fqdn without dot", "www.example.org", "example.org.", "www.example.org."},
		{"zone without dot", "example.org", "example.org.", "example.org."},
		{"case insensitive suffix", "WWW.Example.ORG", "example.org.", "WWW.Example.ORG."},
		{"foreign canonical kept", "www.example.com.", "example.org.", "www.example.com."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dnsname.Qualify(tt.record, tt.zone))
		})
	}
}

func TestRelative(t *testing.T) {
	tests := []struct {
		name, full, zone, want string
	}{
		{"apex", "example.org.", "example.org.", "@"},
		{"apex without dot", "example.org", "example.org.", "@"},
		{"child", "www.example.org.", "example.org.", "www"},
		{"deep child", "a.b.example.org.", "example.org.", "a.b"},
		{"child without dot", "www.example.org", "example.org.", "www"},
		{"foreign", "www.example.com.", "example.org.", "www.example.com."},
		{"suffix but not label", "badexample.org.", "example.org.", "badexample.org."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dnsname.Relative(tt.full, tt.zone))
		})
	}
}

func TestIsReverse(t *testing.T) {
	assert.True(t, dnsname.IsReverse("2.0.192.in-addr.arpa."))
	assert.True(t, dnsname.IsReverse("8.b.d.0.1.0.0.2.ip6.arpa"))
	assert.True(t, dnsname.IsReverse("2.0.192.IN-ADDR.ARPA."))
	assert.False(t, dnsname.IsReverse("example.org."))
}
