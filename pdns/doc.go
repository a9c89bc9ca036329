// Package pdns is a client for the DNS server management HTTP API.
//
// A Client is built from a validated Config, connects by discovering the server's
// zones URL template and then exposes the Zones and Records resources:
//
//	c, err := pdns.New(&pdns.Config{Host: "localhost", Port: 8081, Protocol: "http", Key: "secret"})
//	if err != nil {
//		return err
//	}
//
//	if err := c.Connect(ctx); err != nil {
//		return err
//	}
//
//	records, err := c.Records.List(ctx, "example.org.")
//
// The HTTP round trip and the shape validation are injectable through
// WithExecutor and WithValidator. Every operation issues exactly one request; nothing
// is cached or retried.
package pdns
