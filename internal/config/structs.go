package config

import (
	"time"

	"github.com/GoPowerDNS-Admin/pdns-api/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode bool // enable dev mode for development
	Log     logger.Log
	API     API
	Mock    Mock
}

// API holds the connection settings of the PowerDNS HTTP API used by the CLI.
type API struct {
	Host     string        // host name or address without scheme
	Port     int           // TCP port
	Protocol string        // http or https
	Key      string        // value of the X-API-Key header
	Timeout  time.Duration // per request timeout
}

// Mock implements the settings of the embedded fake PowerDNS API server.
type Mock struct {
	Listen       string // listen address, e.g. 127.0.0.1:8081
	ServerID     string // id reported by /servers and used in zones_url
	Version      string // version reported by /servers
	Key          string // accepted X-API-Key, empty disables the check
	Seed         bool   // create example.org. on an empty database
	ShutDownTime int    // seconds to wait for in-flight requests on shutdown
	DB           DB
}
