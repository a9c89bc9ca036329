package pdns

import "github.com/rs/zerolog"

// Option configures a Client.
type Option func(*Client)

// WithExecutor replaces the default net/http executor.
func WithExecutor(e Executor) Option {
	return func(c *Client) {
		if e != nil {
			c.executor = e
		}
	}
}

// WithValidator replaces the default shape validator.
func WithValidator(v Validator) Option {
	return func(c *Client) {
		if v != nil {
			c.validator = v
		}
	}
}

// WithLogger sets the logger used for debug and trace output.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}
