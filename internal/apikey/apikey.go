// Package apikey generates random API keys for the mock server.
package apikey

import (
	"crypto/rand"

	"github.com/pkg/errors"
)

// Len yields about 190 bits of entropy with Chars.
const Len = 32

// Chars are the characters a generated key consists of.
const Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// ErrCharset is returned for charsets that are too short or too long.
var ErrCharset = errors.New("charset must hold between 2 and 256 characters")

// New returns a random key of Len characters from Chars.
func New() (string, error) {
	return Generate(Len, Chars)
}

// Generate returns a random string of length characters drawn uniformly from chars.
func Generate(length int, chars string) (string, error) {
	clen := len(chars)
	if clen < 2 || clen > 256 { //nolint:mnd
		return "", ErrCharset
	}

	// Bytes above limit are rejected to avoid modulo bias.
	limit := 255 - (256 % clen) //nolint:mnd

	out := make([]byte, 0, length)
	buf := make([]byte, length+length/2)

	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", errors.Wrap(err, "failed to read random bytes")
		}

		for _, b := range buf {
			if int(b) > limit {
				continue
			}

			out = append(out, chars[int(b)%clen])
			if len(out) == length {
				break
			}
		}
	}

	return string(out), nil
}
