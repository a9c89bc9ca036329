// Package main provides the pdns-api command line tool. It talks to the
// PowerDNS HTTP API through the pdns client library to list zones, list
// records and replace RRsets, and it can run a fake PowerDNS API backed by
// gorm for local development and tests.
package main
