// Package transport performs single JSON HTTP round trips for the pdns client.
// It never retries; timeouts belong to the caller's context and http.Client.
package transport
